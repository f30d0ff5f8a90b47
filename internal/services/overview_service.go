package services

import (
	"harborview/internal/domain"
	"harborview/internal/store"
)

// OverviewService derives the staff dashboard: headline counters plus the
// short lists the overview tab shows. Everything is recomputed from the
// ledgers on each call.
type OverviewService struct {
	Store  *store.Store
	Orders *OrderService
	Inv    *InventoryService
}

func NewOverviewService(st *store.Store, orders *OrderService, inv *InventoryService) *OverviewService {
	return &OverviewService{Store: st, Orders: orders, Inv: inv}
}

type Stats struct {
	PendingOrders   int
	OccupiedRooms   int
	LowStockItems   int
	ServiceRequests int
}

type Overview struct {
	Stats           Stats
	RecentOrders    []domain.Order
	Rooms           []domain.Room
	LowStockAlerts  []domain.InventoryItem
	ServiceRequests []domain.Order
}

const overviewListLimit = 5

func (s *OverviewService) Rooms() ([]domain.Room, error) {
	rooms := []domain.Room{}
	if _, err := s.Store.Get(store.KeyRooms, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *OverviewService) Guests() ([]domain.Guest, error) {
	guests := []domain.Guest{}
	if _, err := s.Store.Get(store.KeyGuests, &guests); err != nil {
		return nil, err
	}
	return guests, nil
}

func (s *OverviewService) Build() (Overview, error) {
	var ov Overview

	orders, err := s.Orders.Filter("all", "all")
	if err != nil {
		return ov, err
	}
	for _, o := range orders {
		if o.Status != domain.StatusPending {
			continue
		}
		switch o.Kind {
		case domain.KindFood:
			ov.Stats.PendingOrders++
		case domain.KindService:
			ov.Stats.ServiceRequests++
			if len(ov.ServiceRequests) < overviewListLimit {
				ov.ServiceRequests = append(ov.ServiceRequests, o)
			}
		}
	}
	if len(orders) > overviewListLimit {
		ov.RecentOrders = orders[:overviewListLimit]
	} else {
		ov.RecentOrders = orders
	}

	rooms, err := s.Rooms()
	if err != nil {
		return ov, err
	}
	ov.Rooms = rooms
	for _, r := range rooms {
		if r.Status == domain.RoomOccupied {
			ov.Stats.OccupiedRooms++
		}
	}

	low, err := s.Inv.LowStock()
	if err != nil {
		return ov, err
	}
	ov.Stats.LowStockItems = len(low)
	if len(low) > overviewListLimit {
		low = low[:overviewListLimit]
	}
	ov.LowStockAlerts = low

	return ov, nil
}
