package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mc-creative-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// documentRepo stores schemaless records in a single documents table, one row
// per record keyed by collection name.
//
// Expected schema:
//
//	CREATE TABLE documents (
//	    id         UUID PRIMARY KEY,
//	    collection TEXT NOT NULL,
//	    data       JSONB NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type documentRepo struct {
	db *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) domain.DocumentStore {
	return &documentRepo{db: db}
}

func (r *documentRepo) CreateDocument(ctx context.Context, collection string, record map[string]any) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}

	id := uuid.NewString()
	query := `INSERT INTO documents (id, collection, data, created_at)
              VALUES ($1, $2, $3, $4)`
	_, err = r.db.Exec(ctx, query, id, collection, data, time.Now().UTC())
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *documentRepo) ListCollections(ctx context.Context, limit int) ([]string, error) {
	query := `SELECT DISTINCT collection FROM documents ORDER BY collection LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		collections = append(collections, name)
	}
	return collections, rows.Err()
}
