// Package cli wires the cobra command tree over the sync coordinator and
// the in-memory state.
package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/syllabus/internal/cli/formatter"
	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/identity"
	"github.com/alexanderramin/syllabus/internal/state"
	"github.com/alexanderramin/syllabus/internal/sync"
)

// App holds everything the CLI commands operate on. Commands read from
// State and mutate through Coord; Session handles sign-in and sign-out.
type App struct {
	Coord    *sync.Coordinator
	State    *state.Store
	Session  *sync.Session
	Resolver *identity.Resolver

	// IsInteractive reports whether stdin is a terminal, which gates the
	// huh prompts.
	IsInteractive func() bool

	// Now is the clock used for deadline math. Overridable in tests.
	Now func() time.Time
}

func (a *App) today() domain.Date {
	if a.Now != nil {
		return domain.DateOf(a.Now())
	}
	return domain.DateOf(time.Now())
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// syncing shows the cosmetic remote-activity indicator on w while fn runs,
// when the session is live and stdin is a terminal. The indicator is not a
// completion signal.
func (a *App) syncing(w io.Writer, fn func() error) error {
	_, live := a.Resolver.Current()
	if !live || !a.interactive() {
		return fn()
	}
	stop := formatter.ShowSpinner(w, "syncing")
	defer stop()
	return fn()
}

// NewRootCmd creates the top-level "syllabus" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "syllabus",
		Short:         "Academic progress tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCourseCmd(app),
		newTaskCmd(app),
		newNoteCmd(app),
		newCatalogCmd(app),
		newStatusCmd(app),
		newNotifyCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWatchCmd(app),
	)

	return root
}
