package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/syllabus/internal/cli/formatter"
)

func syllabusHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = t.Focused.Title.Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(formatter.ColorGreen)
	t.Focused.Description = t.Focused.Description.Foreground(formatter.ColorDim)
	return t
}

// confirmRemoval asks for confirmation before a destructive operation.
func confirmRemoval(what string) (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Remove %s?", what)).
				Description("This cannot be undone.").
				Value(&confirmed),
		),
	).WithTheme(syllabusHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// promptSemester collects semester and year when they were not passed as
// flags.
func promptSemester(semester, year *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Semester").
				Options(
					huh.NewOption("A (fall)", "A"),
					huh.NewOption("B (spring)", "B"),
					huh.NewOption("C (summer)", "C"),
				).
				Value(semester),
			huh.NewInput().
				Title("Year").
				Placeholder("2026").
				Value(year),
		),
	).WithTheme(syllabusHuhTheme()).WithShowHelp(false)
	return form.Run()
}
