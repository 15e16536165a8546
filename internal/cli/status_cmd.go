package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/syllabus/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the academic progress dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, live := app.Resolver.Current()
			data := formatter.OverviewData{
				Plan:    app.State.Courses(),
				Tasks:   app.State.Tasks(),
				Today:   app.today(),
				UID:     id.UID,
				IsLocal: id.IsLocal || !live,
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatOverview(data))
			return nil
		},
	}
}
