package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"kitchary/internal/domain"
)

var (
	ErrNoItemsSelected = errors.New("at least one item must be selected")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrOrderNotFound   = errors.New("order not found")
	ErrPaymentNotFound = errors.New("payment not found")
)

type OrderService struct {
	orders    OrderRepository
	payments  PaymentRepository
	menu      MenuRepository
	publisher EventPublisher
}

func NewOrderService(orders OrderRepository, payments PaymentRepository, menu MenuRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orders:    orders,
		payments:  payments,
		menu:      menu,
		publisher: publisher,
	}
}

// PlaceOrder turns a menu-item-id -> quantity mapping into a persisted order
// with a pending payment for the full total. Zero quantities and ids that are
// not on the menu are dropped; a submission that leaves no items persists
// nothing and fails with ErrNoItemsSelected.
func (s *OrderService) PlaceOrder(ctx context.Context, userID int, quantities map[int]int) (*domain.Order, error) {
	for _, qty := range quantities {
		if qty < 0 {
			return nil, ErrInvalidQuantity
		}
	}

	menuItems, err := s.menu.ListMenuItems()
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	var items []domain.OrderItem
	var total float64
	for _, item := range menuItems {
		qty := quantities[item.ID]
		if qty <= 0 {
			continue
		}
		items = append(items, domain.OrderItem{
			MenuItemID:   item.ID,
			MenuItemName: item.Name,
			Quantity:     qty,
			Price:        item.Price,
		})
		total += item.Price * float64(qty)
	}

	if len(items) == 0 || total == 0 {
		return nil, ErrNoItemsSelected
	}

	order, payment, err := s.orders.CreateOrder(userID, total, items)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publish(ctx, domain.OrderEvent{
		Type:      domain.EventOrderPlaced,
		OrderID:   order.ID,
		UserID:    userID,
		Amount:    payment.Amount,
		Timestamp: time.Now(),
	})

	return order, nil
}

func (s *OrderService) ListOrders(userID int) ([]domain.Order, error) {
	return s.orders.ListUserOrders(userID)
}

func (s *OrderService) GetOrder(userID, orderID int) (*domain.Order, error) {
	order, err := s.orders.GetUserOrder(userID, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return order, nil
}

// PaymentForOrder returns the order together with its payment, if one exists.
// A missing payment is not an error here; CompletePayment repairs it.
func (s *OrderService) PaymentForOrder(userID, orderID int) (*domain.Order, *domain.Payment, error) {
	order, err := s.GetOrder(userID, orderID)
	if err != nil {
		return nil, nil, err
	}

	payment, err := s.payments.GetPaymentByOrder(orderID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return order, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load payment: %w", err)
	}
	return order, payment, nil
}

// CompletePayment moves the order's payment to Completed for the full order
// total. If no payment row exists it is created directly Completed, so the
// operation is an idempotent upsert: the post-condition is always exactly one
// Completed payment carrying order.TotalAmount.
func (s *OrderService) CompletePayment(ctx context.Context, userID, orderID int) (*domain.Payment, error) {
	order, err := s.GetOrder(userID, orderID)
	if err != nil {
		return nil, err
	}

	var payment *domain.Payment
	existing, err := s.payments.GetPaymentByOrder(orderID, userID)
	switch {
	case err == nil:
		payment, err = s.payments.MarkPaymentCompleted(existing.ID, order.TotalAmount)
		if err != nil {
			return nil, fmt.Errorf("failed to complete payment: %w", err)
		}
	case errors.Is(err, sql.ErrNoRows):
		payment, err = s.payments.InsertCompletedPayment(orderID, userID, order.TotalAmount)
		if err != nil {
			return nil, fmt.Errorf("failed to create payment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up payment: %w", err)
	}

	s.publish(ctx, domain.OrderEvent{
		Type:      domain.EventPaymentCompleted,
		OrderID:   orderID,
		UserID:    userID,
		Amount:    payment.Amount,
		Timestamp: time.Now(),
	})

	return payment, nil
}

func (s *OrderService) GetPayment(userID, paymentID int) (*domain.Payment, error) {
	payment, err := s.payments.GetUserPayment(userID, paymentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}
	return payment, nil
}

func (s *OrderService) ListPayments(userID int) ([]domain.Payment, error) {
	return s.payments.ListUserPayments(userID)
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		log.Printf("Warning: failed to publish %s event for order %d: %v", event.Type, event.OrderID, err)
	}
}
