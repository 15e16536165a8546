package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/syllabus/internal/domain"
)

// FormatPlan renders the study plan as a table.
func FormatPlan(plan domain.Plan) string {
	headers := []string{"ID", "CODE", "NAME", "CREDITS", "STATUS", "SEMESTER", "GRADE"}
	rows := make([][]string, 0, len(plan))
	for _, c := range plan {
		grade := Dim("--")
		if c.Grade != nil && *c.Grade != "" {
			grade = StyleGreen.Render(*c.Grade)
		}
		semester := strings.TrimSpace(c.Semester + " " + c.Year)
		if semester == "" {
			semester = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(c.ID),
			StyleFg.Render(c.Code),
			Bold(c.Name),
			fmt.Sprintf("%d", c.Credits),
			StatusPill(c.Status),
			StyleFg.Render(semester),
			grade,
		})
	}
	return RenderTable(headers, rows)
}

// FormatCourse renders a single planned course in detail.
func FormatCourse(c *domain.PlannedCourse, tasks domain.TaskList, today domain.Date) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", StyleFg.Render(c.Code), Bold(c.Name)))
	b.WriteString(fmt.Sprintf("%s  %d credits", StatusPill(c.Status), c.Credits))
	if c.Semester != "" || c.Year != "" {
		b.WriteString(Dim(fmt.Sprintf("  %s %s", c.Semester, c.Year)))
	}
	b.WriteString("\n")
	if c.Grade != nil && *c.Grade != "" {
		b.WriteString(fmt.Sprintf("Grade: %s\n", StyleGreen.Render(*c.Grade)))
	}
	if c.Comments != "" {
		b.WriteString(Dim(c.Comments) + "\n")
	}
	if len(tasks) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatTasks(tasks, today))
	}
	return b.String()
}

// FormatTasks renders a task list as a table.
func FormatTasks(tasks domain.TaskList, today domain.Date) string {
	headers := []string{"ID", "COURSE", "TITLE", "DUE", "KIND", "DONE"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		done := Dim("--")
		if t.Done {
			done = StyleGreen.Render("✔")
		}
		title := StyleFg.Render(t.Title)
		if t.FileName != "" {
			title += Dim(" 📎" + t.FileName)
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			StyleFg.Render(t.CourseCode),
			title,
			DueStyled(t.Due, today),
			KindBadge(t.Kind),
			done,
		})
	}
	return RenderTable(headers, rows)
}

// FormatCatalog renders catalog entries as a table.
func FormatCatalog(catalog domain.Catalog) string {
	headers := []string{"CODE", "NAME", "CREDITS", "CATEGORY"}
	rows := make([][]string, 0, len(catalog))
	for _, e := range catalog {
		rows = append(rows, []string{
			StyleFg.Render(e.Code),
			Bold(e.Name),
			fmt.Sprintf("%d", e.Credits),
			CategoryBadge(e.Category),
		})
	}
	return RenderTable(headers, rows)
}

// FormatNotes renders the personal to-do list.
func FormatNotes(notes domain.NoteList) string {
	if len(notes) == 0 {
		return Dim("No notes.") + "\n"
	}
	var b strings.Builder
	for _, n := range notes {
		mark := StyleBlue.Render("○")
		text := StyleFg.Render(n.Text)
		if n.Done {
			mark = StyleGreen.Render("✔")
			text = Dim(n.Text)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", mark, Dim(fmt.Sprintf("%d", n.ID)), text))
	}
	return b.String()
}
