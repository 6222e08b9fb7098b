// Package store persists positions in a file-backed SQLite database.
//
// The store holds no open connection between calls: each operation opens the
// database, does its work, and closes it, so a scheduled run never leaves a
// file handle or lock behind regardless of how it exits.
package store

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"jobsweep/errors"
	"jobsweep/logger"
	"jobsweep/usajobs"
)

const createTableSQL = `CREATE TABLE IF NOT EXISTS POSITION (
	TITLE_ID               VARCHAR(255) PRIMARY KEY,
	TITLE                  VARCHAR(255) NOT NULL,
	ORGANISATION_NAME      VARCHAR(255) NOT NULL,
	REMUNERATION_MIN       REAL,
	REMUNERATION_MAX       REAL,
	REMUNERATION_RATE      VARCHAR(255),
	WHO_MAY_APPLY          VARCHAR(255),
	APPLICATION_CLOSE_DATE TIMESTAMP NOT NULL
)`

const upsertSQL = `INSERT INTO POSITION (
	TITLE_ID,
	TITLE,
	ORGANISATION_NAME,
	REMUNERATION_MIN,
	REMUNERATION_MAX,
	REMUNERATION_RATE,
	WHO_MAY_APPLY,
	APPLICATION_CLOSE_DATE
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(TITLE_ID) DO UPDATE SET
	TITLE = excluded.TITLE,
	ORGANISATION_NAME = excluded.ORGANISATION_NAME,
	REMUNERATION_MIN = excluded.REMUNERATION_MIN,
	REMUNERATION_MAX = excluded.REMUNERATION_MAX,
	REMUNERATION_RATE = excluded.REMUNERATION_RATE,
	WHO_MAY_APPLY = excluded.WHO_MAY_APPLY,
	APPLICATION_CLOSE_DATE = excluded.APPLICATION_CLOSE_DATE`

// Store is a single-table position store keyed by TITLE_ID
type Store struct {
	path   string
	logger *zap.SugaredLogger
}

// New creates a store backed by the SQLite database at path.
// The database file is created on first use.
func New(path string) *Store {
	return &Store{
		path:   path,
		logger: logger.ComponentLogger("store"),
	}
}

// Path returns the database file location
func (s *Store) Path() string {
	return s.path
}

// open opens the database with the standard pragmas. Callers must close it.
func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, errors.WrapStorage(err, "open database "+s.path)
	}

	// WAL mode allows report reads while a load is mid-transaction
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, errors.WrapStorage(err, "enable WAL mode")
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, errors.WrapStorage(err, "set busy timeout")
	}

	return db, nil
}

// EnsureSchema creates the POSITION table if absent. Idempotent and safe to
// call at the start of every run; never touches existing rows.
func (s *Store) EnsureSchema() error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	return ensureSchema(db)
}

func ensureSchema(db *sql.DB) error {
	if _, err := db.Exec(createTableSQL); err != nil {
		return errors.WrapStorage(err, "create POSITION table")
	}
	return nil
}

// Upsert inserts or fully replaces one row per position, all inside a single
// transaction committed once at the end. A failure rolls the whole batch back.
func (s *Store) Upsert(positions []usajobs.Position) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := upsertAll(db, positions); err != nil {
		return err
	}

	s.logger.Infow("Positions upserted",
		"count", len(positions),
		"path", s.path,
	)
	return nil
}

func upsertAll(db *sql.DB, positions []usajobs.Position) error {
	tx, err := db.Begin()
	if err != nil {
		return errors.WrapStorage(err, "begin upsert transaction")
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(upsertSQL)
	if err != nil {
		return errors.WrapStorage(err, "prepare upsert")
	}
	defer stmt.Close()

	for _, p := range positions {
		if _, err := stmt.Exec(
			p.PositionID,
			p.Title,
			p.OrganizationName,
			p.RemunerationMin,
			p.RemunerationMax,
			p.RemunerationRate,
			p.WhoMayApply,
			p.ApplicationCloseDate,
		); err != nil {
			return errors.WrapStorage(err, "upsert position "+p.PositionID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.WrapStorage(err, "commit upsert transaction")
	}
	return nil
}
