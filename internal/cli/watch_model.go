package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/syllabus/internal/cli/formatter"
)

type watchTab int

const (
	tabPlan watchTab = iota
	tabTasks
	tabNotes
)

// refreshMsg drives the periodic re-render from the shared state snapshot.
type refreshMsg time.Time

const watchRefreshInterval = 500 * time.Millisecond

// watchModel is the bubbletea model for the live view. It renders straight
// from the in-memory state, so remote updates folded in by the mirror show
// up on the next tick.
type watchModel struct {
	app  *App
	spin spinner.Model

	tab      watchTab
	width    int
	wasLive  bool
	demoted  bool
	quitting bool
}

func newWatchModel(app *App) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	_, live := app.Resolver.Current()
	return watchModel{
		app:     app,
		spin:    sp,
		wasLive: live,
	}
}

func watchTick() tea.Cmd {
	return tea.Tick(watchRefreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, watchTick())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.tab = (m.tab + 1) % 3
			return m, nil
		case "1":
			m.tab = tabPlan
			return m, nil
		case "2":
			m.tab = tabTasks
			return m, nil
		case "3":
			m.tab = tabNotes
			return m, nil
		}
		return m, nil

	case refreshMsg:
		_, live := m.app.Resolver.Current()
		if m.wasLive && !live {
			m.demoted = true
		}
		m.wasLive = live
		return m, watchTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	today := m.app.today()
	switch m.tab {
	case tabPlan:
		plan := m.app.State.Courses()
		if len(plan) == 0 {
			b.WriteString(formatter.Dim("No courses in the plan.") + "\n")
		} else {
			b.WriteString(formatter.FormatPlan(plan))
		}
	case tabTasks:
		tasks := m.app.State.Tasks().Upcoming(today)
		if len(tasks) == 0 {
			b.WriteString(formatter.Dim("No upcoming tasks.") + "\n")
		} else {
			b.WriteString(formatter.FormatTasks(tasks, today))
		}
	case tabNotes:
		b.WriteString(formatter.FormatNotes(m.app.State.Notes()))
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("tab: switch view  1: plan  2: tasks  3: notes  q: quit"))
	return b.String()
}

func (m watchModel) headerView() string {
	id, live := m.app.Resolver.Current()

	var mode string
	if live {
		mode = m.spin.View() + formatter.StyleGreen.Render("synced")
	} else {
		mode = formatter.StyleYellow.Render("○ this device only")
	}

	tabs := []string{"plan", "tasks", "notes"}
	for i, name := range tabs {
		if watchTab(i) == m.tab {
			tabs[i] = formatter.Bold(name)
		} else {
			tabs[i] = formatter.Dim(name)
		}
	}

	header := fmt.Sprintf("%s  %s  %s", formatter.Header("syllabus"), formatter.Dim(id.UID), mode)
	header += "\n" + strings.Join(tabs, formatter.Dim(" · "))

	if m.demoted {
		header += "\n" + formatter.StyleRed.Render(
			"Connection to the remote store failed. Your data is now saved on this device only.")
	}
	return header
}
