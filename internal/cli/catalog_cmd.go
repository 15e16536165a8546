package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/syllabus/internal/cli/formatter"
	"github.com/alexanderramin/syllabus/internal/domain"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse and edit the course catalog",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogAddCmd(app),
		newCatalogRemoveCmd(app),
	)

	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list [QUERY]",
		Short: "List catalog courses, optionally filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := app.State.Catalog()
			if len(args) == 1 {
				catalog = catalog.Search(args[0])
			}
			if category != "" {
				if !domain.ValidCategories[category] {
					return fmt.Errorf("unknown category %q", category)
				}
				catalog = catalog.FilterCategory(domain.Category(category))
			}

			if len(catalog) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching courses.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog(catalog))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")

	return cmd
}

func newCatalogAddCmd(app *App) *cobra.Command {
	var code, name, category string
	var credits int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a course definition to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := domain.CatalogEntry{
				Code:     code,
				Name:     name,
				Credits:  credits,
				Category: domain.Category(category),
			}
			added, err := app.Coord.AddCatalogEntry(context.Background(), entry)
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintf(cmd.OutOrStdout(), "Course %s is already in the catalog.\n", code)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q to the catalog.\n", code, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Course code")
	cmd.Flags().StringVar(&name, "name", "", "Course name")
	cmd.Flags().IntVar(&credits, "credits", 0, "Credit weight")
	cmd.Flags().StringVar(&category, "category", string(domain.CategoryElective), "Category")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("credits")

	return cmd
}

func newCatalogRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove CODE",
		Short: "Remove a course definition from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to remove %s without --yes", code)
				}
				confirmed, err := confirmRemoval("catalog entry " + code)
				if err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}
			if err := app.Coord.RemoveCatalogEntry(context.Background(), code); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from the catalog.\n", code)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
