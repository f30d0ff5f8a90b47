package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"harborview/internal/domain"
	"harborview/internal/store"
)

// NotificationService owns the staff-facing alert log. New entries are
// prepended unread; only the read flag ever mutates, and the log is cleared
// in bulk by explicit staff action.
type NotificationService struct {
	Store *store.Store
}

func NewNotificationService(st *store.Store) *NotificationService {
	return &NotificationService{Store: st}
}

func (s *NotificationService) loadLog() ([]domain.Notification, error) {
	log := []domain.Notification{}
	if _, err := s.Store.Get(store.KeyNotifications, &log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *NotificationService) Add(title, message, kind string) {
	n := domain.Notification{
		ID:        "NTF-" + uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      kind,
		Timestamp: time.Now().UTC(),
	}
	// Alerts are best-effort side effects of ledger mutations; a failed write
	// must not fail the mutation that triggered it.
	_ = s.Store.Update(func() error {
		log, err := s.loadLog()
		if err != nil {
			return err
		}
		log = append([]domain.Notification{n}, log...)
		return s.Store.Put(store.KeyNotifications, log)
	})
}

func (s *NotificationService) MarkRead(id string) error {
	return s.Store.Update(func() error {
		log, err := s.loadLog()
		if err != nil {
			return err
		}
		for i := range log {
			if log[i].ID == id {
				log[i].Read = true
				return s.Store.Put(store.KeyNotifications, log)
			}
		}
		return fmt.Errorf("%w: notification %s", ErrNotFound, id)
	})
}

func (s *NotificationService) Clear() error {
	return s.Store.Update(func() error {
		return s.Store.Put(store.KeyNotifications, []domain.Notification{})
	})
}

func (s *NotificationService) List() ([]domain.Notification, error) {
	return s.loadLog()
}

// UnreadCount is derived on demand, never stored.
func (s *NotificationService) UnreadCount() (int, error) {
	log, err := s.loadLog()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range log {
		if !e.Read {
			n++
		}
	}
	return n, nil
}
