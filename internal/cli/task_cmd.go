package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/syllabus/internal/cli/formatter"
	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/sync"
)

func parseTaskKind(s string) (domain.TaskKind, error) {
	if !domain.ValidTaskKinds[s] {
		return "", fmt.Errorf("unknown task kind %q (want assignment or exam)", s)
	}
	return domain.TaskKind(s), nil
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage course tasks and deadlines",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskUpdateCmd(app),
		newTaskAttachCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var course, title, due, kindStr string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a planned course",
		RunE: func(cmd *cobra.Command, args []string) error {
			planned, err := resolveCourse(app.State.Courses(), course)
			if err != nil {
				return err
			}
			dueDate, err := domain.ParseDate(due)
			if err != nil {
				return err
			}
			kind, err := parseTaskKind(kindStr)
			if err != nil {
				return err
			}

			task, err := app.Coord.AddTask(context.Background(), planned.Code, title, dueDate, kind)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q due %s.\n", kindStr, task.Title, task.Due)
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "Course code or plan ID")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&kindStr, "kind", "assignment", "Task kind (assignment|exam)")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var course string
	var upcoming, urgent bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := app.State.Tasks()
			if course != "" {
				planned, err := resolveCourse(app.State.Courses(), course)
				if err != nil {
					return err
				}
				tasks = tasks.ForCourse(planned.Code)
			}
			switch {
			case urgent:
				tasks = tasks.Urgent(app.today())
			case upcoming:
				tasks = tasks.Upcoming(app.today())
			}

			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasks(tasks, app.today()))
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "Only tasks for this course")
	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "Only open tasks due today or later")
	cmd.Flags().BoolVar(&urgent, "urgent", false, "Only open tasks due within the urgent window")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Toggle a task's done flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(app.State.Tasks(), args[0])
			if err != nil {
				return err
			}
			if err := app.syncing(cmd.ErrOrStderr(), func() error {
				return app.Coord.ToggleTask(context.Background(), task.ID)
			}); err != nil {
				return err
			}
			if got := app.State.Tasks().FindByID(task.ID); got != nil && got.Done {
				fmt.Fprintf(cmd.OutOrStdout(), "Marked %q done.\n", task.Title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Reopened %q.\n", task.Title)
			}
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var title, due, kindStr string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(app.State.Tasks(), args[0])
			if err != nil {
				return err
			}

			var upd sync.TaskUpdate
			if cmd.Flags().Changed("title") {
				upd.Title = &title
			}
			if cmd.Flags().Changed("due") {
				dueDate, err := domain.ParseDate(due)
				if err != nil {
					return err
				}
				upd.Due = &dueDate
			}
			if cmd.Flags().Changed("kind") {
				kind, err := parseTaskKind(kindStr)
				if err != nil {
					return err
				}
				upd.Kind = &kind
			}

			if err := app.Coord.UpdateTask(context.Background(), task.ID, upd); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s.\n", task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&kindStr, "kind", "", "Task kind (assignment|exam)")

	return cmd
}

func newTaskAttachCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "attach ID FILENAME",
		Short: "Record an attachment name on a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(app.State.Tasks(), args[0])
			if err != nil {
				return err
			}
			if err := app.Coord.AttachFile(context.Background(), task.ID, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Attached %q to %q.\n", args[1], task.Title)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(app.State.Tasks(), args[0])
			if err != nil {
				return err
			}

			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to remove %q without --yes", task.Title)
				}
				confirmed, err := confirmRemoval(fmt.Sprintf("task %q", task.Title))
				if err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}

			if err := app.Coord.RemoveTask(context.Background(), task.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %q.\n", task.Title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
