package services

import (
	"golang.org/x/crypto/bcrypt"

	"harborview/internal/domain"
	"harborview/internal/store"
)

// AuthService checks staff credentials against the seeded user list and binds
// the sid cookie to a department session in the store.
type AuthService struct {
	Store *store.Store
}

func NewAuthService(st *store.Store) *AuthService { return &AuthService{Store: st} }

func (s *AuthService) loadSessions() (map[string]domain.Session, error) {
	sessions := map[string]domain.Session{}
	if _, err := s.Store.Get(store.KeySessions, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *AuthService) Login(sid, username, password string) (*domain.User, error) {
	users := []domain.User{}
	if _, err := s.Store.Get(store.KeyUsers, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(users[i].Hash), []byte(password)) != nil {
			return nil, ErrBadCreds
		}
		u := users[i]
		err := s.Store.Update(func() error {
			sessions, err := s.loadSessions()
			if err != nil {
				return err
			}
			sessions[sid] = domain.Session{Username: u.Username, Department: u.Department}
			return s.Store.Put(store.KeySessions, sessions)
		})
		if err != nil {
			return nil, err
		}
		return &u, nil
	}
	return nil, ErrBadCreds
}

func (s *AuthService) Logout(sid string) error {
	return s.Store.Update(func() error {
		sessions, err := s.loadSessions()
		if err != nil {
			return err
		}
		delete(sessions, sid)
		return s.Store.Put(store.KeySessions, sessions)
	})
}

// CurrentSession returns the staff session bound to sid, or nil when the sid
// is anonymous.
func (s *AuthService) CurrentSession(sid string) (*domain.Session, error) {
	sessions, err := s.loadSessions()
	if err != nil {
		return nil, err
	}
	if sess, ok := sessions[sid]; ok {
		return &sess, nil
	}
	return nil, nil
}
