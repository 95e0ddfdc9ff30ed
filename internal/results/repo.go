// Package results persists quiz outcomes under shareable identifiers.
package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talohastudios/die-project-finder/internal/quiz/domain"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Save inserts a brand-new record and returns its identifier. Every call
// produces a new row, even for a repeated email; the identifier is only
// returned once the insert has committed. ID collisions surface as unique
// violations and are retried with a fresh identifier.
func (r *Repo) Save(ctx context.Context, res *domain.SavedResult) (string, error) {
	answers, err := json.Marshal(res.QuizAnswers)
	if err != nil {
		return "", fmt.Errorf("marshal quiz answers: %w", err)
	}
	matches, err := json.Marshal(res.MatchedProjects)
	if err != nil {
		return "", fmt.Errorf("marshal matched projects: %w", err)
	}
	crafter, err := json.Marshal(res.CrafterType)
	if err != nil {
		return "", fmt.Errorf("marshal crafter type: %w", err)
	}

	var firstName *string
	if res.FirstName != "" {
		firstName = &res.FirstName
	}

	for i := 0; i < 5; i++ {
		uniqueID, err := NewResultID()
		if err != nil {
			return "", err
		}

		const q = `
insert into saved_results (unique_id, email, first_name, quiz_answers, matched_projects, crafter_type)
values ($1, $2, $3, $4, $5, $6)
returning unique_id, created_at;
`
		err = r.db.QueryRow(ctx, q, uniqueID, res.Email, firstName, answers, matches, crafter).
			Scan(&res.UniqueID, &res.CreatedAt)
		if err == nil {
			return res.UniqueID, nil
		}

		// unique violation on unique_id → retry with a new one
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return "", fmt.Errorf("insert saved result: %w", err)
	}

	return "", fmt.Errorf("failed to generate unique result id")
}

// GetByUniqueID fetches a saved result. Unknown or malformed identifiers
// yield domain.ErrResultNotFound.
func (r *Repo) GetByUniqueID(ctx context.Context, uniqueID string) (*domain.SavedResult, error) {
	const q = `
select unique_id, email, first_name, quiz_answers, matched_projects, crafter_type, created_at
from saved_results
where unique_id = $1;
`
	var (
		res       domain.SavedResult
		firstName *string
		answers   []byte
		matches   []byte
		crafter   []byte
	)
	err := r.db.QueryRow(ctx, q, uniqueID).
		Scan(&res.UniqueID, &res.Email, &firstName, &answers, &matches, &crafter, &res.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrResultNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select saved result: %w", err)
	}

	if firstName != nil {
		res.FirstName = *firstName
	}
	if err := json.Unmarshal(answers, &res.QuizAnswers); err != nil {
		return nil, fmt.Errorf("unmarshal quiz answers: %w", err)
	}
	if err := json.Unmarshal(matches, &res.MatchedProjects); err != nil {
		return nil, fmt.Errorf("unmarshal matched projects: %w", err)
	}
	if err := json.Unmarshal(crafter, &res.CrafterType); err != nil {
		return nil, fmt.Errorf("unmarshal crafter type: %w", err)
	}

	return &res, nil
}
