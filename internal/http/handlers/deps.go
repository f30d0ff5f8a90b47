package handlers

import (
	"harborview/internal/services"
	"harborview/internal/store"
)

type Deps struct {
	MenuHandler  *MenuHandler
	CartHandler  *CartHandler
	OrderHandler *OrderHandler
	StaffHandler *StaffHandler
	AuthHandler  *AuthHandler
}

func NewDeps(st *store.Store) *Deps {
	notes := services.NewNotificationService(st)
	cartSvc := services.NewCartService(st)
	orderSvc := services.NewOrderService(st, notes)
	invSvc := services.NewInventoryService(st, notes)
	overviewSvc := services.NewOverviewService(st, orderSvc, invSvc)
	authSvc := services.NewAuthService(st)

	return &Deps{
		MenuHandler:  &MenuHandler{Cart: cartSvc},
		CartHandler:  &CartHandler{Cart: cartSvc},
		OrderHandler: &OrderHandler{Cart: cartSvc, Orders: orderSvc},
		StaffHandler: &StaffHandler{
			Orders:   orderSvc,
			Inv:      invSvc,
			Notes:    notes,
			Overview: overviewSvc,
		},
		AuthHandler: &AuthHandler{Auth: authSvc},
	}
}
