package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/syllabus/internal/cli/formatter"
)

func parseNoteID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note ID %q", s)
	}
	return id, nil
}

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage the personal to-do list",
	}

	cmd.AddCommand(
		newNoteAddCmd(app),
		newNoteListCmd(app),
		newNoteDoneCmd(app),
		newNoteEditCmd(app),
		newNoteRemoveCmd(app),
	)

	return cmd
}

func newNoteAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add TEXT...",
		Short: "Add a to-do item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if err := app.syncing(cmd.ErrOrStderr(), func() error {
				return app.Coord.AddNote(context.Background(), text)
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added note.\n")
			return nil
		},
	}
}

func newNoteListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List to-do items",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNotes(app.State.Notes()))
			return nil
		},
	}
}

func newNoteDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Toggle a to-do item's done flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}
			if err := app.Coord.ToggleNote(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Toggled note %d.\n", id)
			return nil
		},
	}
}

func newNoteEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit ID TEXT...",
		Short: "Replace a to-do item's text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")
			if err := app.Coord.EditNote(context.Background(), id, text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated note %d.\n", id)
			return nil
		},
	}
}

func newNoteRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a to-do item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}
			if err := app.Coord.RemoveNote(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed note %d.\n", id)
			return nil
		},
	}
}
