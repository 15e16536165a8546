package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/syllabus/internal/domain"
)

// resolveCourse resolves user input to a planned course: exact document ID,
// exact course code, then unique ID prefix.
func resolveCourse(plan domain.Plan, input string) (*domain.PlannedCourse, error) {
	if input == "" {
		return nil, fmt.Errorf("course ID or code is required")
	}

	if c := plan.FindByID(input); c != nil {
		return c, nil
	}
	if c := plan.FindByCode(input); c != nil {
		return c, nil
	}

	var matches []*domain.PlannedCourse
	for i := range plan {
		if strings.HasPrefix(plan[i].ID, input) {
			matches = append(matches, &plan[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("course not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("course ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTask resolves user input to a task: exact ID, then unique prefix.
func resolveTask(tasks domain.TaskList, input string) (*domain.Task, error) {
	if input == "" {
		return nil, fmt.Errorf("task ID is required")
	}

	if t := tasks.FindByID(input); t != nil {
		return t, nil
	}

	var matches []*domain.Task
	for i := range tasks {
		if strings.HasPrefix(tasks[i].ID, input) {
			matches = append(matches, &tasks[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
