package domain

import (
	"sort"
)

// UrgentWindowDays is how far ahead a task's due date may be for the task to
// count as urgent.
const UrgentWindowDays = 3

// Task is a dated deliverable or exam attached to a planned course.
// CourseCode references PlannedCourse.Code by convention; there is no
// enforced foreign key.
type Task struct {
	ID         string   `json:"id"`
	CourseCode string   `json:"courseId"`
	Title      string   `json:"title"`
	Due        Date     `json:"date"`
	Kind       TaskKind `json:"type"`
	Done       bool     `json:"done"`
	FileName   string   `json:"fileName"`
}

// IsUpcoming reports whether the task is open and due today or later.
func (t *Task) IsUpcoming(today Date) bool {
	return !t.Done && !t.Due.Before(today)
}

// IsUrgent reports whether the task is open and due within the urgent window.
func (t *Task) IsUrgent(today Date) bool {
	if t.Done || t.Due.Before(today) {
		return false
	}
	return t.Due.DaysFrom(today) <= UrgentWindowDays
}

// TaskList is the list of tasks for one identity.
type TaskList []Task

// FindByID returns the task with the given ID, or nil.
func (l TaskList) FindByID(id string) *Task {
	for i := range l {
		if l[i].ID == id {
			return &l[i]
		}
	}
	return nil
}

// ForCourse returns the tasks attached to the given course code.
func (l TaskList) ForCourse(code string) TaskList {
	var out TaskList
	for _, t := range l {
		if t.CourseCode == code {
			out = append(out, t)
		}
	}
	return out
}

// WithoutCourse returns the tasks NOT attached to the given course code.
// Used by the local cascade when a course is removed.
func (l TaskList) WithoutCourse(code string) TaskList {
	out := make(TaskList, 0, len(l))
	for _, t := range l {
		if t.CourseCode != code {
			out = append(out, t)
		}
	}
	return out
}

// Upcoming returns open tasks due today or later, soonest first.
func (l TaskList) Upcoming(today Date) TaskList {
	var out TaskList
	for _, t := range l {
		if t.IsUpcoming(today) {
			out = append(out, t)
		}
	}
	out.sortByDue()
	return out
}

// Urgent returns open tasks due within the urgent window, soonest first.
func (l TaskList) Urgent(today Date) TaskList {
	var out TaskList
	for _, t := range l {
		if t.IsUrgent(today) {
			out = append(out, t)
		}
	}
	out.sortByDue()
	return out
}

func (l TaskList) sortByDue() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Due.Before(l[j].Due)
	})
}
