package services

import (
	"encoding/json"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"

	log "github.com/sirupsen/logrus"
)

// EventPublisher publishes domain events to a message broker. A nil publisher
// disables event publication.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles order submission and history.
type OrderService struct {
	orderRepo repositories.OrderRepository
	userRepo  repositories.UserRepository
	cartRepo  repositories.CartRepository
	publisher EventPublisher
	clearCart bool // empty the cart after a successful submission
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, userRepo repositories.UserRepository, cartRepo repositories.CartRepository, publisher EventPublisher, clearCart bool) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		cartRepo:  cartRepo,
		publisher: publisher,
		clearCart: clearCart,
	}
}

// Submit snapshots the user's current cart into a new immutable order and
// persists it. The snapshot copies item names and prices, so later catalog
// changes never affect a placed order. When configured, the cart is emptied
// after the order is stored.
func (s *OrderService) Submit(username string) (*models.UserOrder, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	cart, err := s.cartRepo.GetByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	order := models.SnapshotCart(user, cart)
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order for user %s: %w", username, err)
	}

	if s.clearCart {
		cart.Entries = nil
		cart.RecomputeTotal()
		if err := s.cartRepo.Update(cart); err != nil {
			// The order is already placed; report the stale cart but do not fail the submission.
			log.WithError(err).Warnf("order %s placed but cart for user %s was not cleared", order.ID, username)
		}
	}

	s.publishSubmitted(order)

	return order, nil
}

// History returns all orders placed by the user, oldest state preserved
// verbatim. A user with no orders gets an empty list.
func (s *OrderService) History(username string) ([]models.UserOrder, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.GetByUserID(user.ID)
}

// publishSubmitted emits an order.submitted event. Publish failures are
// logged and swallowed: the order is already durable.
func (s *OrderService) publishSubmitted(order *models.UserOrder) {
	if s.publisher == nil {
		return
	}
	event := map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"total":   order.Total,
		"items":   len(order.Items),
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Error("failed to marshal order event")
		return
	}
	if err := s.publisher.Publish("order", "order.submitted", body); err != nil {
		log.WithError(err).Warnf("failed to publish order.submitted for order %s", order.ID)
	}
}
