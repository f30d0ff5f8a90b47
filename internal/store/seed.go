package store

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"harborview/internal/domain"
)

// seedIfEmpty writes baseline data for keys that have never been stored.
// Safe to run on every start; existing keys are left alone.
func (s *Store) seedIfEmpty() error {
	seeds := []struct {
		key   string
		value func() (any, error)
	}{
		{KeyInventory, func() (any, error) { return defaultInventory(), nil }},
		{KeyRooms, func() (any, error) { return defaultRooms(), nil }},
		{KeyGuests, func() (any, error) { return []domain.Guest{}, nil }},
		{KeyUsers, func() (any, error) { return defaultUsers() }},
	}
	for _, sd := range seeds {
		var probe any
		ok, err := s.Get(sd.key, &probe)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		v, err := sd.value()
		if err != nil {
			return err
		}
		log.Printf("[seed] %s", sd.key)
		if err := s.Put(sd.key, v); err != nil {
			return err
		}
	}
	return nil
}

func defaultInventory() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: "INV1", Name: "Ground Beef", Category: "food", CurrentStock: 25, MinStock: 20, MaxStock: 100, Unit: "kg"},
		{ID: "INV2", Name: "Lettuce", Category: "food", CurrentStock: 8, MinStock: 10, MaxStock: 50, Unit: "kg"},
		{ID: "INV3", Name: "Orange Juice", Category: "beverage", CurrentStock: 15, MinStock: 20, MaxStock: 100, Unit: "liters"},
	}
}

func defaultRooms() []domain.Room {
	return []domain.Room{
		{Number: "101", Status: domain.RoomOccupied, Type: "standard"},
		{Number: "102", Status: domain.RoomVacant, Type: "standard"},
		{Number: "103", Status: domain.RoomCleaning, Type: "deluxe"},
		{Number: "201", Status: domain.RoomOccupied, Type: "deluxe"},
		{Number: "202", Status: domain.RoomMaintenance, Type: "standard"},
		{Number: "203", Status: domain.RoomVacant, Type: "suite"},
	}
}

func defaultUsers() (any, error) {
	mk := func(username, department, raw string) (domain.User, error) {
		h, err := bcrypt.GenerateFromPassword([]byte(raw), 12)
		if err != nil {
			return domain.User{}, err
		}
		return domain.User{Username: username, Hash: string(h), Department: department}, nil
	}
	specs := []struct{ username, department, raw string }{
		{"frontdesk", "front-desk", "Fr0ntDesk!"},
		{"kitchen", "kitchen", "K1tchen!!"},
		{"admin", "management", "Adm1nPass!"},
	}
	users := make([]domain.User, 0, len(specs))
	for _, sp := range specs {
		u, err := mk(sp.username, sp.department, sp.raw)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
