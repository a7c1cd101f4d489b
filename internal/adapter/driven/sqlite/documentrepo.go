package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ericfisherdev/sapdash/internal/domain/model"
	"github.com/ericfisherdev/sapdash/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.DocumentStore = (*DocumentRepo)(nil)

// DocumentRepo is the SQLite implementation of the DocumentStore port interface.
type DocumentRepo struct {
	db *DB
}

// NewDocumentRepo creates a new DocumentRepo backed by the given DB.
func NewDocumentRepo(db *DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// ListAll returns all documents ordered by creation date descending.
func (r *DocumentRepo) ListAll(ctx context.Context) ([]model.Document, error) {
	const query = `SELECT id, title, type, created_by, created_date, status, size_bytes
		FROM documents ORDER BY created_date DESC, id`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var documents []model.Document
	for rows.Next() {
		document, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		documents = append(documents, document)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	return documents, nil
}

// GetByID returns a single document, or (nil, nil) if no row exists.
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*model.Document, error) {
	const query = `SELECT id, title, type, created_by, created_date, status, size_bytes
		FROM documents WHERE id = ?`

	row := r.db.Reader.QueryRowContext(ctx, query, id)
	document, err := scanDocument(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &document, nil
}

// scanDocument reads one document row via the given scan function.
func scanDocument(scan func(dest ...any) error) (model.Document, error) {
	var document model.Document
	var createdDate string

	if err := scan(
		&document.ID,
		&document.Title,
		&document.Type,
		&document.CreatedBy,
		&createdDate,
		&document.Status,
		&document.SizeBytes,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Document{}, err
		}
		return model.Document{}, fmt.Errorf("scan document: %w", err)
	}

	parsed, err := parseTime(createdDate)
	if err != nil {
		return model.Document{}, fmt.Errorf("parse created_date: %w", err)
	}
	document.CreatedDate = parsed

	return document, nil
}
