package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"harborview/internal/domain"
	"harborview/internal/store"
)

// DeliveryEstimate is the fixed guest-facing estimate shown after placement.
// It is a placeholder, not computed from kitchen load.
const DeliveryEstimate = "25-35 minutes"

// OrderService owns the order ledger: placement, service requests, the status
// state machine, and filtered queries. The ledger is most-recent-first; new
// orders are prepended.
type OrderService struct {
	Store *store.Store
	Notes *NotificationService
}

func NewOrderService(st *store.Store, notes *NotificationService) *OrderService {
	return &OrderService{Store: st, Notes: notes}
}

func (s *OrderService) loadLedger() ([]domain.Order, error) {
	orders := []domain.Order{}
	if _, err := s.Store.Get(store.KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Place snapshots the guest's cart into a new pending food order with a
// frozen total, prepends it to the ledger and clears the cart. An empty cart
// is a validation failure and leaves the ledger untouched.
func (s *OrderService) Place(sessionID string) (string, string, error) {
	var orderID string
	err := s.Store.Update(func() error {
		lines := []domain.CartLine{}
		if _, err := s.Store.Get(store.CartKey(sessionID), &lines); err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}
		total := 0.0
		for _, l := range lines {
			total += l.Price * float64(l.Quantity)
		}
		order := domain.Order{
			ID:        "ORD-" + uuid.NewString(),
			Kind:      domain.KindFood,
			Status:    domain.StatusPending,
			Timestamp: time.Now().UTC(),
			Items:     lines,
			Total:     total,
		}
		orders, err := s.loadLedger()
		if err != nil {
			return err
		}
		orders = append([]domain.Order{order}, orders...)
		if err := s.Store.Put(store.KeyOrders, orders); err != nil {
			return err
		}
		orderID = order.ID
		return s.Store.Put(store.CartKey(sessionID), []domain.CartLine{})
	})
	if err != nil {
		return "", "", err
	}
	s.Notes.Add("New Order", fmt.Sprintf("Food order %s placed", orderID), "info")
	return orderID, DeliveryEstimate, nil
}

// RequestService creates a pending service order for one of the fixed service
// kinds.
func (s *OrderService) RequestService(kind domain.ServiceKind) (string, error) {
	name, ok := domain.ServiceNames[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownService, kind)
	}
	order := domain.Order{
		ID:        "SRV-" + uuid.NewString(),
		Kind:      domain.KindService,
		Status:    domain.StatusPending,
		Timestamp: time.Now().UTC(),
		Service:   kind,
		Name:      name,
	}
	err := s.Store.Update(func() error {
		orders, err := s.loadLedger()
		if err != nil {
			return err
		}
		orders = append([]domain.Order{order}, orders...)
		return s.Store.Put(store.KeyOrders, orders)
	})
	if err != nil {
		return "", err
	}
	s.Notes.Add("Service Request", fmt.Sprintf("%s requested", name), "info")
	return order.ID, nil
}

// UpdateStatus advances an order through its per-kind state machine. Unknown
// ids are reported, illegal jumps rejected; re-applying the current status is
// accepted and changes nothing.
func (s *OrderService) UpdateStatus(orderID string, to domain.Status) error {
	changed := false
	err := s.Store.Update(func() error {
		orders, err := s.loadLedger()
		if err != nil {
			return err
		}
		for i := range orders {
			if orders[i].ID != orderID {
				continue
			}
			if orders[i].Status == to {
				return nil
			}
			if !domain.CanTransition(orders[i].Kind, orders[i].Status, to) {
				return fmt.Errorf("%w: %s %s -> %s", ErrIllegalTransition, orders[i].Kind, orders[i].Status, to)
			}
			orders[i].Status = to
			changed = true
			return s.Store.Put(store.KeyOrders, orders)
		}
		return fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	})
	if err != nil {
		return err
	}
	if changed {
		s.Notes.Add("Order Updated", fmt.Sprintf("Order %s status changed to %s", orderID, to), "info")
	}
	return nil
}

// Filter returns orders matching the status and kind filters, preserving
// ledger order. "all" (or empty) disables a constraint.
func (s *OrderService) Filter(status, kind string) ([]domain.Order, error) {
	orders, err := s.loadLedger()
	if err != nil {
		return nil, err
	}
	if (status == "" || status == "all") && (kind == "" || kind == "all") {
		return orders, nil
	}
	out := []domain.Order{}
	for _, o := range orders {
		if status != "" && status != "all" && string(o.Status) != status {
			continue
		}
		if kind != "" && kind != "all" && string(o.Kind) != kind {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// Get looks up one order.
func (s *OrderService) Get(orderID string) (domain.Order, error) {
	orders, err := s.loadLedger()
	if err != nil {
		return domain.Order{}, err
	}
	for _, o := range orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return domain.Order{}, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
}
