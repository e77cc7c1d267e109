// Package tui implements the interactive session checklist.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pedrobarros/ironlog/internal/cli/formatter"
	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/service"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Complete key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle exercise")),
	Complete: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "toggle workout done")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// SessionModel drives the exercise checklist for one workout.
type SessionModel struct {
	progress service.ProgressService

	workout   domain.Workout
	rec       domain.ProgressRecord
	completed bool
	cursor    int
	err       error
}

// NewSessionModel loads current progress for the workout and builds the model.
func NewSessionModel(ctx context.Context, progress service.ProgressService, workout domain.Workout) (SessionModel, error) {
	rec, err := progress.Progress(ctx, workout.ID)
	if err != nil {
		return SessionModel{}, err
	}
	completedSet, err := progress.CompletedSet(ctx)
	if err != nil {
		return SessionModel{}, err
	}

	return SessionModel{
		progress:  progress,
		workout:   workout,
		rec:       rec,
		completed: completedSet[domain.CanonicalID(workout.ID)],
	}, nil
}

func (m SessionModel) Init() tea.Cmd {
	return nil
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.workout.Exercises)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, keys.Toggle):
		if len(m.workout.Exercises) == 0 {
			break
		}
		index := m.workout.Exercises[m.cursor].Index
		rec, err := m.progress.ToggleExercise(context.Background(), m.workout.ID, index, !m.rec.ExerciseCompletion[index])
		if err != nil {
			m.err = err
			break
		}
		m.rec = *rec
		m.err = nil

	case key.Matches(keyMsg, keys.Complete):
		if err := m.progress.SetWorkoutCompleted(context.Background(), m.workout.ID, !m.completed); err != nil {
			m.err = err
			break
		}
		m.completed = !m.completed
		m.err = nil
	}

	return m, nil
}

func (m SessionModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header(m.workout.Name) + "\n")
	b.WriteString(formatter.CompletionPill(m.completed) + "  ")
	b.WriteString(formatter.RenderProgress(float64(m.rec.OverallProgress)/100, 20) + "\n\n")

	if len(m.workout.Exercises) == 0 {
		b.WriteString(formatter.Dim("This workout has no exercises.") + "\n")
	}
	for i, ex := range m.workout.Exercises {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("> ")
		}
		mark := formatter.StyleDim.Render("○")
		name := formatter.StyleFg.Render(ex.Name)
		if m.rec.ExerciseCompletion[ex.Index] {
			mark = formatter.StyleGreen.Render("✔")
			name = formatter.StyleDim.Render(ex.Name)
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", cursor, mark, name,
			formatter.Dim(fmt.Sprintf("%dx%d", ex.Sets, ex.Reps))))
	}

	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n" + formatter.Dim("space toggle · c workout done · q quit") + "\n")
	return b.String()
}
