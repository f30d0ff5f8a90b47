package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store keys. Each key holds one whole JSON document; there are no partial
// updates and no cross-key transactions.
const (
	KeyOrders         = "orders"
	KeyInventory      = "inventory"
	KeyRooms          = "rooms"
	KeyGuests         = "guests"
	KeyNotifications  = "notifications"
	KeyStockHistory   = "stockHistory"
	KeyPurchaseOrders = "purchaseOrders"
	KeyUsers          = "users"
	KeySessions       = "sessions"
)

// CartKey scopes a guest cart to its session.
func CartKey(sessionID string) string { return "cart:" + sessionID }

// Store is a durable string-to-JSON mapping backed by a single sqlite table.
// Mutators run their read-modify-write cycle inside Update, which serializes
// them behind one writer lock; a whole-key Put is the unit of write.
type Store struct {
	db *sqlx.DB
	mu sync.Mutex
}

func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection: keeps :memory: stores on a single database and matches
	// the single-writer model.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	s := &Store{db: db}
	if err := s.seedIfEmpty(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func ensureSchema(db *sqlx.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS store(
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at TEXT
);`)
	return err
}

// Get unmarshals the value at key into dest. The second return is false when
// the key is absent; dest is left untouched in that case.
func (s *Store) Get(key string, dest any) (bool, error) {
	var raw string
	err := s.db.Get(&raw, `SELECT value FROM store WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("store: decode %q: %w", key, err)
	}
	return true, nil
}

// Put marshals v and overwrites the whole value at key.
func (s *Store) Put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", key, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO store(key, value, updated_at) VALUES(?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(raw), time.Now().UTC().Format(time.RFC3339))
	return err
}

// Delete removes a key; absent keys are not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM store WHERE key = ?`, key)
	return err
}

// Update serializes a read-modify-write cycle against the store. Get and Put
// called inside fn observe and produce whole-key states; concurrent cycles
// never interleave.
func (s *Store) Update(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}
