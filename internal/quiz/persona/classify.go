// Package persona derives the crafter archetype shown with the quiz results.
package persona

import "github.com/talohastudios/die-project-finder/internal/quiz/domain"

var (
	stashBuster = domain.CrafterType{
		Title: "Stash Buster Extraordinaire",
		Emoji: "♻️",
		Description: "You're a resourceful crafter who loves using what you already have! " +
			"Your fabric stash doesn't stand a chance against your creativity.",
	}
	quickWin = domain.CrafterType{
		Title: "Quick Win Queen",
		Emoji: "⚡",
		Description: "You love the satisfaction of finishing projects fast! " +
			"Quick, beautiful, and rewarding - that's your crafting style.",
	}
	patient = domain.CrafterType{
		Title: "Patient Perfectionist",
		Emoji: "🎨",
		Description: "You appreciate the journey as much as the destination. " +
			"Your projects are labors of love worth every stitch!",
	}
	creativeMaker = domain.CrafterType{
		Title: "Creative Maker",
		Emoji: "✨",
		Description: "You're ready to create something special! " +
			"Your AccuQuilt dies are about to make magic.",
	}
)

// Classify maps a mood to its crafter type. Unknown or unset moods fall back
// to the Creative Maker default; no other answer field is consulted. The
// check order (stash-buster, quick, take-time, default) is fixed.
func Classify(mood domain.Mood) domain.CrafterType {
	switch mood {
	case domain.MoodStashBuster:
		return stashBuster
	case domain.MoodQuick:
		return quickWin
	case domain.MoodTakeTime:
		return patient
	default:
		return creativeMaker
	}
}
