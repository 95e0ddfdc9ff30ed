package http

import (
	"github.com/talohastudios/die-project-finder/internal/quiz/domain"
	"github.com/talohastudios/die-project-finder/internal/quiz/service"
)

// Handler bundles the dependencies for quiz HTTP endpoints.
type Handler struct {
	svc *service.QuizService
}

func New(svc *service.QuizService) *Handler {
	return &Handler{svc: svc}
}

type matchReq struct {
	Answers domain.QuizAnswers `json:"answers"`
}

type saveReq struct {
	Email     string             `json:"email"`
	FirstName string             `json:"first_name"`
	Answers   domain.QuizAnswers `json:"answers"`
}
