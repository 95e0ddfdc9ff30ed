package domain

import (
	"strings"
	"time"
)

// Mood is the single-choice "crafting mood" answer from the quiz.
type Mood string

const (
	MoodStashBuster Mood = "stash-buster"
	MoodQuick       Mood = "quick"
	MoodTakeTime    Mood = "take-time"
	MoodUnset       Mood = ""
)

// QuizAnswers holds one quiz submission. ProjectTypes and Machines carry the
// short quiz answer codes, not catalog vocabulary; mapping happens in the
// filtering engine. SelectedDieID is read into the model but not used for
// matching yet.
type QuizAnswers struct {
	ProjectTypes  []string `json:"project_types"`
	Mood          Mood     `json:"mood"`
	Machines      []string `json:"machines"`
	SelectedDieID *int64   `json:"selected_die_id,omitempty"`
}

// Normalized returns a copy with answer codes trimmed, lowercased and
// de-duplicated. The receiver is not modified.
func (a QuizAnswers) Normalized() QuizAnswers {
	out := QuizAnswers{
		ProjectTypes:  normalizeCodes(a.ProjectTypes),
		Mood:          Mood(strings.ToLower(strings.TrimSpace(string(a.Mood)))),
		Machines:      normalizeCodes(a.Machines),
		SelectedDieID: a.SelectedDieID,
	}
	return out
}

func normalizeCodes(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Project is a point-in-time snapshot of one catalog entry. Categories and
// MachinesRequired are always sets; the catalog repo normalizes legacy
// scalar category rows before they reach this type.
type Project struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	Categories       []string `json:"categories"`
	TimeEstimate     string   `json:"time_estimate"`
	SkillLevel       string   `json:"skill_level"`
	MachinesRequired []string `json:"machines_required"`
	IsStashBuster    bool     `json:"is_stash_buster"`
	ImageURL         string   `json:"image_url,omitempty"`
	PatternURL       string   `json:"accuquilt_pattern_url,omitempty"`
	InstructionsURL  string   `json:"notion_instructions_url,omitempty"`
}

// CrafterType is the persona shown alongside the matches. It is derived from
// the mood answer and never stored independently of a saved result.
type CrafterType struct {
	Title       string `json:"title"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// SavedResult is the persisted aggregate behind a shareable results URL.
// Records are created once per submission and never mutated.
type SavedResult struct {
	UniqueID        string      `json:"unique_id"`
	Email           string      `json:"email"`
	FirstName       string      `json:"first_name,omitempty"`
	QuizAnswers     QuizAnswers `json:"quiz_answers"`
	MatchedProjects []Project   `json:"matched_projects"`
	CrafterType     CrafterType `json:"crafter_type"`
	CreatedAt       time.Time   `json:"created_at"`
}

// Die is one AccuQuilt die from the selector list.
type Die struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
