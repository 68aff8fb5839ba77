package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jordanhale/taskdeck/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5FAFAF"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#666666"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87AF87"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AF5F5F"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	overdueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))
)

// categoryStyle renders category names in their assigned hex color, the
// same palette the API reports to web clients.
func categoryStyle(c models.TaskCategory) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color()))
}

func statusStyle(s models.TaskStatus) lipgloss.Style {
	switch s {
	case models.StatusCompleted:
		return successStyle
	case models.StatusCancelled:
		return subtleStyle
	case models.StatusInProgress:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	default:
		return lipgloss.NewStyle()
	}
}

// priorityPips renders priority as filled and empty dots, e.g. "●●●○○".
func priorityPips(p int) string {
	if p < models.MinPriority {
		p = models.MinPriority
	}
	if p > models.MaxPriority {
		p = models.MaxPriority
	}
	return strings.Repeat("●", p) + strings.Repeat("○", models.MaxPriority-p)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
