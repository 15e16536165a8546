package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/syllabus/internal/cli/formatter"
)

func newLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in to the remote store",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := func() {}
			if app.interactive() {
				stop = formatter.ShowSpinner(cmd.ErrOrStderr(), "signing in")
			}
			err := app.Session.SignIn(context.Background())
			stop()
			if err != nil {
				return fmt.Errorf("signing in: %w", err)
			}
			id, live := app.Resolver.Current()
			if id.IsLocal || !live {
				fmt.Fprintln(cmd.OutOrStdout(), "No remote store configured; data stays on this device.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s.\n", id.UID)
			return nil
		},
	}
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and switch to this device's data",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Session.SignOut(context.Background())
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out; using this device's data.")
			return nil
		},
	}
}
