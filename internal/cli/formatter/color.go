package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/syllabus/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusPill returns a colored indicator for a course status.
func StatusPill(status domain.CourseStatus) string {
	switch status {
	case domain.StatusPlanned:
		return StyleBlue.Render("○ Planned")
	case domain.StatusRegistered:
		return StyleYellow.Render("◐ Registered")
	case domain.StatusActive:
		return StyleGreen.Render("● Active")
	case domain.StatusFinished:
		return StyleDim.Render("✔ Finished")
	default:
		return StyleDim.Render(string(status))
	}
}

// KindBadge returns a colored label for a task kind.
func KindBadge(kind domain.TaskKind) string {
	switch kind {
	case domain.TaskExam:
		return StylePurple.Render("Exam")
	default:
		return StyleBlue.Render("Assignment")
	}
}

// CategoryBadge returns the display label of a catalog category, dimmed for
// electives and emphasized for requirements.
func CategoryBadge(cat domain.Category) string {
	label, ok := domain.CategoryLabels[cat]
	if !ok {
		label = string(cat)
	}
	switch cat {
	case domain.CategoryRequiredMath, domain.CategoryRequiredCS:
		return StyleYellow.Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// DueStyled renders a due date with urgency coloring relative to today.
func DueStyled(due, today domain.Date) string {
	text := due.Format("2006-01-02")
	switch {
	case due.Before(today):
		return StyleRed.Render(text)
	case due.DaysFrom(today) <= domain.UrgentWindowDays:
		return StyleRed.Render(text)
	case due.DaysFrom(today) <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
