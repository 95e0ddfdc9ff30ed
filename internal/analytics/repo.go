// Package analytics stores best-effort telemetry events. Nothing in here may
// ever fail a user-facing operation.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Record inserts one event. The event id is assigned here so callers can't
// replay rows.
func (r *Repo) Record(ctx context.Context, eventType string, eventData map[string]any) error {
	if eventData == nil {
		eventData = map[string]any{}
	}
	data, err := json.Marshal(eventData)
	if err != nil {
		return fmt.Errorf("marshal event data: %w", err)
	}

	const q = `
insert into analytics_events (id, event_type, event_data)
values ($1, $2, $3);
`
	if _, err := r.db.Exec(ctx, q, uuid.New().String(), eventType, data); err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}
