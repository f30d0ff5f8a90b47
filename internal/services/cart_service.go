package services

import (
	"harborview/internal/domain"
	"harborview/internal/store"
)

// CartService owns the per-guest working set of menu selections. Every
// mutation persists the whole cart before returning.
type CartService struct {
	Store *store.Store
}

func NewCartService(st *store.Store) *CartService { return &CartService{Store: st} }

func (s *CartService) load(sessionID string) ([]domain.CartLine, error) {
	lines := []domain.CartLine{}
	if _, err := s.Store.Get(store.CartKey(sessionID), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Add merges the incoming line into the cart: an existing line with the same
// id gains its quantity, otherwise the line is appended. Returns the updated
// total item count.
func (s *CartService) Add(sessionID string, line domain.CartLine) (int, error) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	count := 0
	err := s.Store.Update(func() error {
		lines, err := s.load(sessionID)
		if err != nil {
			return err
		}
		merged := false
		for i := range lines {
			if lines[i].ID == line.ID {
				lines[i].Quantity += line.Quantity
				merged = true
				break
			}
		}
		if !merged {
			lines = append(lines, line)
		}
		for _, l := range lines {
			count += l.Quantity
		}
		return s.Store.Put(store.CartKey(sessionID), lines)
	})
	return count, err
}

// Remove deletes the line entirely regardless of quantity. Absent ids are a
// no-op, not an error.
func (s *CartService) Remove(sessionID string, itemID int) error {
	return s.Store.Update(func() error {
		lines, err := s.load(sessionID)
		if err != nil {
			return err
		}
		kept := lines[:0]
		for _, l := range lines {
			if l.ID != itemID {
				kept = append(kept, l)
			}
		}
		return s.Store.Put(store.CartKey(sessionID), kept)
	})
}

// ChangeQuantity adds delta to a line's quantity; a result of zero or less
// removes the line. Absent ids are a no-op.
func (s *CartService) ChangeQuantity(sessionID string, itemID, delta int) error {
	return s.Store.Update(func() error {
		lines, err := s.load(sessionID)
		if err != nil {
			return err
		}
		for i := range lines {
			if lines[i].ID != itemID {
				continue
			}
			lines[i].Quantity += delta
			if lines[i].Quantity <= 0 {
				lines = append(lines[:i], lines[i+1:]...)
			}
			return s.Store.Put(store.CartKey(sessionID), lines)
		}
		return nil
	})
}

// Clear empties the cart.
func (s *CartService) Clear(sessionID string) error {
	return s.Store.Update(func() error {
		return s.Store.Put(store.CartKey(sessionID), []domain.CartLine{})
	})
}

type CartView struct {
	Lines []domain.CartLine
	Total float64
	Count int
}

// View returns the cart lines with the derived total and item count. The
// total is never stored.
func (s *CartService) View(sessionID string) (CartView, error) {
	lines, err := s.load(sessionID)
	if err != nil {
		return CartView{}, err
	}
	cv := CartView{Lines: lines}
	for _, l := range lines {
		cv.Total += l.Price * float64(l.Quantity)
		cv.Count += l.Quantity
	}
	return cv, nil
}
