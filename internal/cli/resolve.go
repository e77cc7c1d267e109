package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/pedrobarros/ironlog/internal/domain"
)

// resolveWorkoutID maps user input to a stored workout id. Exact canonical
// match wins; otherwise a unique id prefix or a unique case-insensitive name
// match is accepted.
func resolveWorkoutID(ctx context.Context, app *App, input string) (string, error) {
	input = domain.CanonicalID(input)
	if input == "" {
		return "", fmt.Errorf("workout ID is required")
	}

	workouts, err := app.Workouts.List(ctx)
	if err != nil {
		return "", err
	}

	for _, w := range workouts {
		if domain.CanonicalID(w.ID) == input {
			return w.ID, nil
		}
	}

	var matches []string
	for _, w := range workouts {
		if strings.HasPrefix(domain.CanonicalID(w.ID), input) {
			matches = append(matches, w.ID)
		}
	}
	if len(matches) == 0 {
		for _, w := range workouts {
			if strings.EqualFold(w.Name, input) {
				matches = append(matches, w.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("workout not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("workout ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
