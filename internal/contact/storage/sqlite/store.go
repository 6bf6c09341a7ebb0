// Package sqlite provides SQLite-backed persistence for contact submissions.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rjreducation/vsdcentre/internal/contact/storage"
	"github.com/rjreducation/vsdcentre/internal/contact/storage/sqlite/migrations"
	"github.com/rjreducation/vsdcentre/internal/platform/id"
	sqlitemigrate "github.com/rjreducation/vsdcentre/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for contact submissions.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a contact SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateContactSubmission assigns an identifier and persists one record.
func (s *Store) CreateContactSubmission(ctx context.Context, input storage.NewSubmissionInput) (storage.Submission, error) {
	if s == nil || s.sqlDB == nil {
		return storage.Submission{}, fmt.Errorf("storage is not configured")
	}

	submissionID, err := id.NewID()
	if err != nil {
		return storage.Submission{}, fmt.Errorf("assign submission id: %w", err)
	}
	createdAt := time.Now().UTC()

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO contact_submissions (id, name, email, phone, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		submissionID,
		input.Name,
		input.Email,
		input.Phone,
		input.Message,
		createdAt.UnixMilli(),
	)
	if err != nil {
		return storage.Submission{}, fmt.Errorf("insert contact submission: %w", err)
	}

	return storage.Submission{
		ID:        submissionID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		CreatedAt: createdAt,
	}, nil
}

// ListContactSubmissions returns all persisted submissions, newest first.
func (s *Store) ListContactSubmissions(ctx context.Context) ([]storage.Submission, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, email, phone, message, created_at
		 FROM contact_submissions
		 ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	submissions := make([]storage.Submission, 0)
	for rows.Next() {
		var record storage.Submission
		var createdAt int64
		if err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.Email,
			&record.Phone,
			&record.Message,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		record.CreatedAt = time.UnixMilli(createdAt).UTC()
		submissions = append(submissions, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact submissions: %w", err)
	}
	return submissions, nil
}
