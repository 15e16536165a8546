package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/syllabus/internal/cli/formatter"
	"github.com/alexanderramin/syllabus/internal/domain"
)

// unreadUrgent returns the open tasks inside the urgent window whose alert
// has not been acknowledged yet.
func unreadUrgent(app *App) domain.TaskList {
	read := app.State.ReadIDs()
	var out domain.TaskList
	for _, t := range app.State.Tasks().Urgent(app.today()) {
		if !read[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

func newNotifyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Show unread deadline alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNotifications(unreadUrgent(app), app.today()))
			return nil
		},
	}

	cmd.AddCommand(newNotifyReadCmd(app))

	return cmd
}

func newNotifyReadCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "read [ID]",
		Short: "Acknowledge deadline alerts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if all {
				for _, t := range unreadUrgent(app) {
					if err := app.Coord.MarkNotificationRead(ctx, t.ID); err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Acknowledged all alerts.")
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("task ID or --all is required")
			}
			task, err := resolveTask(app.State.Tasks(), args[0])
			if err != nil {
				return err
			}
			if err := app.Coord.MarkNotificationRead(ctx, task.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Acknowledged alert for %q.\n", task.Title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Acknowledge every unread alert")

	return cmd
}
