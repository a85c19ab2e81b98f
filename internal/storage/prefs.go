package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/ringflip/internal/ledger"
)

// ErrNoValue is returned by Get when a key has never been written.
var ErrNoValue = errors.New("storage: no value")

var _ ledger.Prefs = (*Store)(nil)

// Get reads a raw preference value.
func (s *Store) Get(key string) (string, error) {
	var v string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoValue
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read pref %q: %w", key, err)
	}
	return v, nil
}

// Set writes a raw preference value, replacing any previous one.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write pref %q: %w", key, err)
	}
	return nil
}

// String implements ledger.Prefs.
func (s *Store) String(key string) (string, bool, error) {
	v, err := s.Get(key)
	if errors.Is(err, ErrNoValue) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Int implements ledger.Prefs.
func (s *Store) Int(key string) (int, bool, error) {
	v, found, err := s.String(key)
	if err != nil || !found {
		return 0, found, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, true, fmt.Errorf("storage: pref %q is not an integer: %w", key, err)
	}
	return n, true, nil
}

// SetString implements ledger.Prefs.
func (s *Store) SetString(key, v string) error {
	return s.Set(key, v)
}

// SetInt implements ledger.Prefs.
func (s *Store) SetInt(key string, v int) error {
	return s.Set(key, strconv.Itoa(v))
}

// DeletePrefs removes every preference whose key starts with prefix.
func (s *Store) DeletePrefs(prefix string) error {
	_, err := s.db.Exec("DELETE FROM prefs WHERE substr(key, 1, ?) = ?", len(prefix), prefix)
	if err != nil {
		return fmt.Errorf("storage: cannot delete prefs %q: %w", prefix, err)
	}
	return nil
}
