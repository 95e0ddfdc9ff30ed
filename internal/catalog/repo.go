// Package catalog reads the project and die collections that the quiz
// matches against. The catalog is read-only from this service's point of
// view; all filtering happens in the match package.
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talohastudios/die-project-finder/internal/quiz/domain"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// ListProjects returns the full catalog in stable id order. Legacy rows that
// carry a scalar category instead of the categories array are normalized
// into sets here, before anything downstream sees them.
func (r *Repo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	const q = `
select id, title, category, categories, time_estimate, skill_level,
       machines_required, is_stash_buster,
       coalesce(image_url, ''), coalesce(accuquilt_pattern_url, ''), coalesce(notion_instructions_url, '')
from projects
order by id;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 32)
	for rows.Next() {
		var (
			p            domain.Project
			legacy       *string
			categories   []string
			timeEstimate *string
			skillLevel   *string
			machines     []string
		)
		err := rows.Scan(&p.ID, &p.Title, &legacy, &categories, &timeEstimate, &skillLevel,
			&machines, &p.IsStashBuster, &p.ImageURL, &p.PatternURL, &p.InstructionsURL)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.Categories = NormalizeCategories(legacy, categories)
		p.MachinesRequired = NormalizeMachines(machines)
		if timeEstimate != nil {
			p.TimeEstimate = *timeEstimate
		}
		if skillLevel != nil {
			p.SkillLevel = *skillLevel
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListDies returns the AccuQuilt die list backing the selector, ordered by
// name the way the selector displays it.
func (r *Repo) ListDies(ctx context.Context) ([]domain.Die, error) {
	const q = `
select id, name, code
from accuquilt_dies
order by name;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query dies: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Die, 0, 64)
	for rows.Next() {
		var d domain.Die
		if err := rows.Scan(&d.ID, &d.Name, &d.Code); err != nil {
			return nil, fmt.Errorf("scan die: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
