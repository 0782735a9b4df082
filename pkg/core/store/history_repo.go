package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"sme_valuation/pkg/core/valuation"
	"sme_valuation/pkg/models"
)

// HistoryLimit caps how many saved valuations are retained per install.
const HistoryLimit = 20

// SavedValuation is one history entry: the inputs plus the full result, so a
// past valuation can be reopened or compared without recomputing.
type SavedValuation struct {
	ID        string                    `json:"id"`
	Label     string                    `json:"label"`
	Inputs    models.CompanyProfile     `json:"inputs"`
	Result    valuation.ValuationResult `json:"result"`
	CreatedAt time.Time                 `json:"created_at"`
}

// HistoryRepo stores SavedValuation records as JSONB rows.
//
// Schema assumption (managed outside this package):
//
//	CREATE TABLE IF NOT EXISTS valuation_history (
//	  id UUID PRIMARY KEY,
//	  label TEXT,
//	  record JSONB NOT NULL,
//	  created_at TIMESTAMPTZ NOT NULL
//	);
type HistoryRepo struct{}

func NewHistoryRepo() *HistoryRepo {
	return &HistoryRepo{}
}

// Save inserts a new history entry and trims the table to HistoryLimit,
// dropping the oldest rows first. Returns the new entry with its id set.
func (r *HistoryRepo) Save(ctx context.Context, label string, p *models.CompanyProfile, res *valuation.ValuationResult) (*SavedValuation, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	entry := SavedValuation{
		ID:        uuid.NewString(),
		Label:     label,
		Inputs:    *p,
		Result:    *res,
		CreatedAt: time.Now().UTC(),
	}

	record, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal history entry: %w", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO valuation_history (id, label, record, created_at) VALUES ($1, $2, $3, $4)`,
		entry.ID, entry.Label, record, entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save valuation: %w", err)
	}

	_, err = pool.Exec(ctx, `
		DELETE FROM valuation_history
		WHERE id NOT IN (
			SELECT id FROM valuation_history ORDER BY created_at DESC LIMIT $1
		)`, HistoryLimit)
	if err != nil {
		fmt.Printf("[WARNING] Failed to trim valuation history: %v\n", err)
	}

	return &entry, nil
}

// List returns saved valuations newest first.
func (r *HistoryRepo) List(ctx context.Context) ([]SavedValuation, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	rows, err := pool.Query(ctx,
		`SELECT record FROM valuation_history ORDER BY created_at DESC LIMIT $1`, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list valuations: %w", err)
	}
	defer rows.Close()

	entries := make([]SavedValuation, 0)
	for rows.Next() {
		var record []byte
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("failed to scan valuation row: %w", err)
		}
		var entry SavedValuation
		if err := json.Unmarshal(record, &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal valuation record: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Get returns a single saved valuation by id.
func (r *HistoryRepo) Get(ctx context.Context, id string) (*SavedValuation, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var record []byte
	err := pool.QueryRow(ctx,
		`SELECT record FROM valuation_history WHERE id = $1`, id).Scan(&record)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no valuation found with id %s", id)
		}
		return nil, fmt.Errorf("failed to load valuation: %w", err)
	}

	var entry SavedValuation
	if err := json.Unmarshal(record, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal valuation record: %w", err)
	}
	return &entry, nil
}

// Delete removes a saved valuation by id.
func (r *HistoryRepo) Delete(ctx context.Context, id string) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	tag, err := pool.Exec(ctx, `DELETE FROM valuation_history WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete valuation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no valuation found with id %s", id)
	}
	return nil
}
