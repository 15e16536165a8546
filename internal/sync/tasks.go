package sync

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/store"
)

// AddTask attaches a new task to the given course code and returns it.
func (c *Coordinator) AddTask(ctx context.Context, courseCode, title string, due domain.Date, kind domain.TaskKind) (*domain.Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, remote, err := c.mode()
	if err != nil {
		return nil, err
	}

	task := domain.Task{
		CourseCode: courseCode,
		Title:      title,
		Due:        due,
		Kind:       kind,
	}

	if remote == nil {
		task.ID = nextLocalID()
		tasks := append(c.st.Tasks(), task)
		c.writeLocal(id.UID, store.ColTasks, tasks)
		return &task, nil
	}

	task.ID = uuid.New().String()
	if err := remote.PutDoc(ctx, id.UID, store.ColTasks, task.ID, &task); err != nil {
		tasks := append(c.st.Tasks(), task)
		c.demote(err, map[string]any{store.ColTasks: tasks})
	}
	return &task, nil
}

// TaskUpdate carries optional edits to a task. Nil fields are left
// unchanged.
type TaskUpdate struct {
	Title *string
	Due   *domain.Date
	Kind  *domain.TaskKind
}

// UpdateTask applies the non-nil fields of upd to the task with the given ID.
func (c *Coordinator) UpdateTask(ctx context.Context, taskID string, upd TaskUpdate) error {
	return c.updateTask(ctx, taskID, func(t *domain.Task) {
		if upd.Title != nil {
			t.Title = *upd.Title
		}
		if upd.Due != nil {
			t.Due = *upd.Due
		}
		if upd.Kind != nil {
			t.Kind = *upd.Kind
		}
	})
}

// ToggleTask flips the done flag of the task with the given ID.
func (c *Coordinator) ToggleTask(ctx context.Context, taskID string) error {
	return c.updateTask(ctx, taskID, func(t *domain.Task) {
		t.Done = !t.Done
	})
}

// AttachFile records an attachment name on the task with the given ID.
func (c *Coordinator) AttachFile(ctx context.Context, taskID, fileName string) error {
	return c.updateTask(ctx, taskID, func(t *domain.Task) {
		t.FileName = fileName
	})
}

func (c *Coordinator) updateTask(ctx context.Context, taskID string, mutate func(*domain.Task)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, remote, err := c.mode()
	if err != nil {
		return err
	}

	tasks := c.st.Tasks()
	task := tasks.FindByID(taskID)
	if task == nil {
		return fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}
	mutate(task)

	if remote == nil {
		c.writeLocal(id.UID, store.ColTasks, tasks)
		return nil
	}

	if err := remote.PutDoc(ctx, id.UID, store.ColTasks, task.ID, task); err != nil {
		c.demote(err, map[string]any{store.ColTasks: tasks})
	}
	return nil
}

// RemoveTask deletes the task with the given ID.
func (c *Coordinator) RemoveTask(ctx context.Context, taskID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, remote, err := c.mode()
	if err != nil {
		return err
	}

	tasks := c.st.Tasks()
	if tasks.FindByID(taskID) == nil {
		return fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}
	kept := make(domain.TaskList, 0, len(tasks)-1)
	for _, t := range tasks {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}

	if remote == nil {
		c.writeLocal(id.UID, store.ColTasks, kept)
		return nil
	}

	if err := remote.DeleteDoc(ctx, id.UID, store.ColTasks, taskID); err != nil {
		c.demote(err, map[string]any{store.ColTasks: kept})
	}
	return nil
}
