// Package match implements the project filtering engine. A project is
// included only when it passes every applicable rule; rules whose answer is
// empty (or fully unmapped) impose no constraint.
package match

import (
	"strings"

	"github.com/talohastudios/die-project-finder/internal/quiz/domain"
	"github.com/talohastudios/die-project-finder/internal/quiz/vocab"
)

// SurpriseCode disables category filtering when present in ProjectTypes.
const SurpriseCode = "surprise"

// Time-estimate tokens the mood rule matches against. The catalog's
// time_estimate strings are free text ("4-6 hrs"); matching is substring
// containment, not numeric comparison.
const (
	tokenShort  = "4-6"
	tokenMedium = "8-12"
	tokenLong   = "16-20"
)

// Filter applies the quiz answers against the catalog and returns the matched
// subset, preserving catalog order. The catalog slice is never modified.
func Filter(catalog []domain.Project, answers domain.QuizAnswers) []domain.Project {
	a := answers.Normalized()

	categories := categoryConstraint(a.ProjectTypes)
	machines := machineConstraint(a.Machines)

	out := make([]domain.Project, 0, len(catalog))
	for _, p := range catalog {
		if !matchesCategory(p, categories) {
			continue
		}
		if a.Mood == domain.MoodStashBuster && !p.IsStashBuster {
			continue
		}
		if !matchesTime(p, a.Mood) {
			continue
		}
		if !matchesMachines(p, machines) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// categoryConstraint returns the mapped category set, or nil when the rule is
// skipped: no selection, the "surprise" sentinel, or every code unmapped.
func categoryConstraint(projectTypes []string) map[string]bool {
	if len(projectTypes) == 0 {
		return nil
	}
	for _, t := range projectTypes {
		if t == SurpriseCode {
			return nil
		}
	}
	mapped := vocab.Categories(projectTypes)
	if len(mapped) == 0 {
		return nil
	}
	return toSet(mapped)
}

// machineConstraint returns the set of catalog machine names the user owns,
// or nil when machine filtering is skipped (nothing selected or nothing
// mapped).
func machineConstraint(machines []string) map[string]bool {
	if len(machines) == 0 {
		return nil
	}
	mapped := vocab.Machines(machines)
	if len(mapped) == 0 {
		return nil
	}
	return toSet(mapped)
}

func matchesCategory(p domain.Project, want map[string]bool) bool {
	if want == nil {
		return true
	}
	for _, c := range p.Categories {
		if want[c] {
			return true
		}
	}
	return false
}

func matchesTime(p domain.Project, mood domain.Mood) bool {
	switch mood {
	case domain.MoodQuick:
		return strings.Contains(p.TimeEstimate, tokenShort)
	case domain.MoodTakeTime:
		return strings.Contains(p.TimeEstimate, tokenMedium) ||
			strings.Contains(p.TimeEstimate, tokenLong)
	default:
		return true
	}
}

// matchesMachines requires the owned set to cover every machine the project
// needs. A project with no required machines always passes.
func matchesMachines(p domain.Project, owned map[string]bool) bool {
	if owned == nil {
		return true
	}
	for _, req := range p.MachinesRequired {
		if !owned[req] {
			return false
		}
	}
	return true
}

func toSet(items []string) map[string]bool {
	s := make(map[string]bool, len(items))
	for _, it := range items {
		s[it] = true
	}
	return s
}
