package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/gourava/gourava/pkg/types"
)

// dbFileName is the SQLite database file created inside the data directory.
const dbFileName = "gourava.db"

// Store is the embedded SQLite store. A Store is constructed once with
// NewStore, opened with Open, shared by reference, and released with Close.
// All operations return explicit errors; a closed store answers every
// operation with types.ErrStoreClosed.
type Store struct {
	mu     sync.RWMutex
	open   bool
	config types.Config
	db     *sql.DB
	log    *zap.Logger
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithLogger sets the logger used for advisory events (seeding progress,
// skipped import records). The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// NewStore creates a new Store. The store is not usable until Open is called.
func NewStore(opts ...Option) *Store {
	s := &Store{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open validates the config, creates the data directory if needed, opens the
// database file, switches the journal to WAL, and runs the idempotent schema
// DDL. Returns types.ErrAlreadyOpen if the store is already open.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database %s: %w", dbPath, err)
	}

	// WAL keeps readers live during a writer's transaction, which is the
	// store's only concurrency safeguard.
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		db.Close()
		return fmt.Errorf("enable WAL: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("create schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("create indexes: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.open = true

	s.log.Info("store opened", zap.String("path", dbPath))
	return nil
}

// Close releases the database connection. Close is idempotent; after Close
// all operations return types.ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}

	s.open = false
	s.log.Info("store closed")
	return nil
}

// conn returns the live database handle, or types.ErrStoreClosed.
func (s *Store) conn() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}
