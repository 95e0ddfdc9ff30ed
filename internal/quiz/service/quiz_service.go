// Package service orchestrates the quiz flow: validate answers, filter the
// catalog, classify the persona, persist the result and kick off the
// best-effort mailing-list subscription.
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/talohastudios/die-project-finder/internal/notify"
	"github.com/talohastudios/die-project-finder/internal/quiz/domain"
	"github.com/talohastudios/die-project-finder/internal/quiz/match"
	"github.com/talohastudios/die-project-finder/internal/quiz/persona"
)

// CatalogSource yields the full project catalog.
type CatalogSource interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// ResultStore persists and retrieves saved results.
type ResultStore interface {
	Save(ctx context.Context, res *domain.SavedResult) (string, error)
	GetByUniqueID(ctx context.Context, uniqueID string) (*domain.SavedResult, error)
}

// Subscriber is the outbound mailing-list collaborator.
type Subscriber interface {
	Subscribe(ctx context.Context, email, firstName string, tags []string) error
}

type QuizService struct {
	catalog    CatalogSource
	store      ResultStore
	subscriber Subscriber
	publicHost string
	log        *zap.Logger
}

func NewQuizService(catalog CatalogSource, store ResultStore, subscriber Subscriber, publicHost string, log *zap.Logger) *QuizService {
	return &QuizService{
		catalog:    catalog,
		store:      store,
		subscriber: subscriber,
		publicHost: publicHost,
		log:        log,
	}
}

// MatchResult is the outcome of running the quiz without saving.
type MatchResult struct {
	Projects    []domain.Project   `json:"projects"`
	CrafterType domain.CrafterType `json:"crafter_type"`
}

// Match filters the catalog against the answers and classifies the persona.
// A catalog read failure surfaces as ErrCatalogUnavailable so callers can
// tell "no matches" from "catalog down".
func (s *QuizService) Match(ctx context.Context, answers domain.QuizAnswers) (*MatchResult, error) {
	projects, err := s.catalog.ListProjects(ctx)
	if err != nil {
		s.log.Error("catalog read failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	return &MatchResult{
		Projects:    match.Filter(projects, answers),
		CrafterType: persona.Classify(answers.Normalized().Mood),
	}, nil
}

// SaveRequest is one result-save submission.
type SaveRequest struct {
	Email     string
	FirstName string
	Answers   domain.QuizAnswers
}

// SaveOutcome reports the primary result of a save plus the side-channel
// status of the subscription attempt.
type SaveOutcome struct {
	UniqueID   string `json:"unique_id"`
	ResultsURL string `json:"results_url"`
	Subscribed bool   `json:"subscribed"`
}

// SaveResults runs the match, persists the tuple under a fresh identifier
// and then tries to subscribe the email. Subscription failure never fails
// the save; it is reported through Subscribed only.
func (s *QuizService) SaveResults(ctx context.Context, req SaveRequest) (*SaveOutcome, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidEmail
	}

	matched, err := s.Match(ctx, req.Answers)
	if err != nil {
		return nil, err
	}

	res := &domain.SavedResult{
		Email:           email,
		FirstName:       strings.TrimSpace(req.FirstName),
		QuizAnswers:     req.Answers.Normalized(),
		MatchedProjects: matched.Projects,
		CrafterType:     matched.CrafterType,
	}

	uniqueID, err := s.store.Save(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("save results: %w", err)
	}

	outcome := &SaveOutcome{
		UniqueID:   uniqueID,
		ResultsURL: fmt.Sprintf("https://%s/results/%s", s.publicHost, uniqueID),
	}

	if err := s.subscriber.Subscribe(ctx, email, res.FirstName, notify.TagsFor(matched.CrafterType)); err != nil {
		s.log.Warn("mailing-list subscription failed",
			zap.String("unique_id", uniqueID), zap.Error(err))
	} else {
		outcome.Subscribed = true
	}

	return outcome, nil
}

// GetResult fetches a previously saved result by its shareable identifier.
func (s *QuizService) GetResult(ctx context.Context, uniqueID string) (*domain.SavedResult, error) {
	uniqueID = strings.TrimSpace(uniqueID)
	if uniqueID == "" {
		return nil, domain.ErrResultNotFound
	}
	return s.store.GetByUniqueID(ctx, uniqueID)
}
