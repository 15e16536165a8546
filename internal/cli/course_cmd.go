package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/syllabus/internal/cli/formatter"
	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/sync"
)

// semesterFlags registers the --semester/--year pair shared by the course
// commands.
func semesterFlags(fs *pflag.FlagSet, semester, year *string) {
	fs.StringVar(semester, "semester", "", "Semester (A|B|C)")
	fs.StringVar(year, "year", "", "Academic year, e.g. 2026")
}

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage the study plan",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseShowCmd(app),
		newCourseStatusCmd(app),
		newCourseUpdateCmd(app),
		newCourseRemoveCmd(app),
	)

	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var semester, year string

	cmd := &cobra.Command{
		Use:   "add CODE",
		Short: "Add a catalog course to the study plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			if entry := app.State.Catalog().FindByCode(code); entry == nil {
				return fmt.Errorf("course %q is not in the catalog", code)
			}

			if semester == "" && year == "" && app.interactive() {
				if err := promptSemester(&semester, &year); err != nil {
					return err
				}
			}

			added, err := app.Coord.AddCourseToPlan(context.Background(), code, semester, year)
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintf(cmd.OutOrStdout(), "Course %s is already in the plan.\n", code)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to the plan.\n", code)
			return nil
		},
	}

	semesterFlags(cmd.Flags(), &semester, &year)

	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List planned courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := app.State.Courses()
			if len(plan) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No courses in the plan.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(plan))
			return nil
		},
	}
}

func newCourseShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a planned course and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			course, err := resolveCourse(app.State.Courses(), args[0])
			if err != nil {
				return err
			}
			tasks := app.State.Tasks().ForCourse(course.Code)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourse(course, tasks, app.today()))
			return nil
		},
	}
}

func newCourseStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Change a course's progress status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			course, err := resolveCourse(app.State.Courses(), args[0])
			if err != nil {
				return err
			}
			status, err := domain.ValidateStatus(args[1])
			if err != nil {
				return err
			}
			if err := app.syncing(cmd.ErrOrStderr(), func() error {
				return app.Coord.UpdateCourseStatus(context.Background(), course.ID, status)
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s.\n", course.Code, domain.StatusLabels[status])
			return nil
		},
	}
}

func newCourseUpdateCmd(app *App) *cobra.Command {
	var semester, year, comments, grade string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a planned course's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			course, err := resolveCourse(app.State.Courses(), args[0])
			if err != nil {
				return err
			}

			var upd sync.CourseUpdate
			if cmd.Flags().Changed("semester") {
				upd.Semester = &semester
			}
			if cmd.Flags().Changed("year") {
				upd.Year = &year
			}
			if cmd.Flags().Changed("comments") {
				upd.Comments = &comments
			}
			if cmd.Flags().Changed("grade") {
				upd.Grade = &grade
			}

			if err := app.Coord.UpdateCourseDetails(context.Background(), course.ID, upd); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s.\n", course.Code)
			return nil
		},
	}

	semesterFlags(cmd.Flags(), &semester, &year)
	cmd.Flags().StringVar(&comments, "comments", "", "Free-form comments")
	cmd.Flags().StringVar(&grade, "grade", "", "Final grade")

	return cmd
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a course and all its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			course, err := resolveCourse(app.State.Courses(), args[0])
			if err != nil {
				return err
			}

			taskCount := len(app.State.Tasks().ForCourse(course.Code))
			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to remove %s without --yes", course.Code)
				}
				what := fmt.Sprintf("%s and %d task(s)", course.Code, taskCount)
				confirmed, err := confirmRemoval(what)
				if err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}

			if err := app.syncing(cmd.ErrOrStderr(), func() error {
				return app.Coord.RemoveCourse(context.Background(), course.ID)
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s and %d task(s).\n", course.Code, taskCount)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
