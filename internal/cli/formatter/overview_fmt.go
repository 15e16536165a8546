package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/syllabus/internal/domain"
)

// OverviewData carries everything the progress dashboard renders.
type OverviewData struct {
	Plan    domain.Plan
	Tasks   domain.TaskList
	Today   domain.Date
	UID     string
	IsLocal bool
}

// FormatOverview renders the academic progress dashboard: credit totals per
// status, the active course load and the nearest deadlines.
func FormatOverview(data OverviewData) string {
	var b strings.Builder

	finished := data.Plan.CreditsWithStatus(domain.StatusFinished)
	active := data.Plan.CreditsWithStatus(domain.StatusActive)
	registered := data.Plan.CreditsWithStatus(domain.StatusRegistered)
	planned := data.Plan.CreditsWithStatus(domain.StatusPlanned)

	b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
		StyleDim.Render(fmt.Sprintf("%d planned", planned)),
		StyleYellow.Render(fmt.Sprintf("%d registered", registered)),
		StyleGreen.Render(fmt.Sprintf("%d active", active)),
		Bold(fmt.Sprintf("%d credits earned", finished)),
	))

	counts := make(map[domain.CourseStatus]int)
	for _, c := range data.Plan {
		counts[c.Status]++
	}
	b.WriteString(Dim(fmt.Sprintf("%d courses in plan, %d finished\n",
		len(data.Plan), counts[domain.StatusFinished])))

	urgent := data.Tasks.Urgent(data.Today)
	if len(urgent) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render(fmt.Sprintf("%d deadline(s) within %d days", len(urgent), domain.UrgentWindowDays)))
		b.WriteString("\n")
		b.WriteString(FormatTasks(urgent, data.Today))
	} else if upcoming := data.Tasks.Upcoming(data.Today); len(upcoming) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("next deadlines"))
		b.WriteString("\n")
		limit := upcoming
		if len(limit) > 5 {
			limit = limit[:5]
		}
		b.WriteString(FormatTasks(limit, data.Today))
	}

	mode := StyleGreen.Render("● synced")
	if data.IsLocal {
		mode = StyleYellow.Render("○ this device only")
	}
	b.WriteString("\n" + Dim(data.UID) + "  " + mode + "\n")

	return RenderBox("Progress", b.String())
}

// FormatNotifications renders unread urgent-deadline alerts.
func FormatNotifications(tasks domain.TaskList, today domain.Date) string {
	if len(tasks) == 0 {
		return Dim("No unread deadline alerts.") + "\n"
	}
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(fmt.Sprintf("%s %s %s due %s %s\n",
			StyleRed.Render("!"),
			TruncID(t.ID),
			Bold(t.Title),
			DueStyled(t.Due, today),
			Dim("("+t.CourseCode+")"),
		))
	}
	return b.String()
}
