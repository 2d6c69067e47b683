package account

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"platewise/internal/grocery"
	"platewise/internal/planner"
	"platewise/internal/session"
)

// Record is the whole of a user's session-scoped state. It is stored under
// the user id and always overwritten wholesale, never patched in place.
type Record struct {
	User      session.User  `json:"user"`
	Plan      *planner.Grid `json:"plan"`
	Groceries grocery.List  `json:"groceries"`
}

// NewRecord seeds the state a user gets on first login: an empty plan and
// the sample grocery list.
func NewRecord(user session.User) *Record {
	return &Record{
		User:      user,
		Plan:      planner.NewGrid(),
		Groceries: grocery.Sample(),
	}
}

// Store defines persistence for account records.
type Store interface {
	Get(ctx context.Context, userID string) (*Record, error)
	Save(ctx context.Context, record *Record) error
	Delete(ctx context.Context, userID string) error
}

// PostgresStore implements Store on PostgreSQL.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore connects to the database and creates the accounts table
// if it does not exist.
func NewPostgresStore(dataSourceName string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS accounts (
		user_id TEXT PRIMARY KEY,
		record JSONB NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create accounts table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Get retrieves a record by user id, returning nil when none exists.
func (s *PostgresStore) Get(ctx context.Context, userID string) (*Record, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, "SELECT record FROM accounts WHERE user_id = $1", userID).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No account yet
		}
		return nil, fmt.Errorf("failed to get account record: %w", err)
	}

	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account record: %w", err)
	}
	return &record, nil
}

// Save writes the whole record, replacing any previous version.
func (s *PostgresStore) Save(ctx context.Context, record *Record) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal account record: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO accounts (user_id, record) VALUES ($1, $2) ON CONFLICT (user_id) DO UPDATE SET record = $2",
		record.User.ID,
		raw,
	)
	if err != nil {
		return fmt.Errorf("failed to save account record: %w", err)
	}
	return nil
}

// Delete removes a record wholesale, as happens on logout.
func (s *PostgresStore) Delete(ctx context.Context, userID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM accounts WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("failed to delete account record: %w", err)
	}
	return nil
}

// MemoryStore implements Store in memory. It backs tests and runs without a
// configured database.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string][]byte{}}
}

func (s *MemoryStore) Get(ctx context.Context, userID string) (*Record, error) {
	s.mu.RLock()
	raw, ok := s.records[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account record: %w", err)
	}
	return &record, nil
}

func (s *MemoryStore) Save(ctx context.Context, record *Record) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal account record: %w", err)
	}
	s.mu.Lock()
	s.records[record.User.ID] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	delete(s.records, userID)
	s.mu.Unlock()
	return nil
}
