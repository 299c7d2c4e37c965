package repositories

import (
	"database/sql"
	"fmt"
)

// Well-known store keys. planKeyPrefix is completed with a username.
const (
	logsKey       = "logs"
	usersKey      = "users"
	activeUserKey = "activeUser"
	planKeyPrefix = "plan_"
)

// Store is the durable key-value capability every repository is built on.
type Store interface {
	// Get returns the value for key and whether the key was present.
	Get(key string) (string, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(key, value string) error
	// Remove deletes key; removing an absent key is not an error.
	Remove(key string) error
}

// KVStore implements [Store] on the kv_store SQLite table.
type KVStore struct {
	db *sql.DB
}

// NewKVStore creates a new [KVStore] with the given database connection.
func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// Get retrieves the value stored under key.
func (s *KVStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv_store WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts value under key.
func (s *KVStore) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv_store (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Remove deletes key from the store.
func (s *KVStore) Remove(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv_store WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}
