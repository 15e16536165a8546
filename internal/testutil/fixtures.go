package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/syllabus/internal/domain"
)

var testCodeCounter atomic.Int64

// NextCourseCode returns a unique course code for tests.
func NextCourseCode() string {
	return fmt.Sprintf("%05d", 90000+testCodeCounter.Add(1))
}

// CatalogEntry options
type CatalogEntryOption func(*domain.CatalogEntry)

func WithCredits(c int) CatalogEntryOption {
	return func(e *domain.CatalogEntry) {
		e.Credits = c
	}
}

func WithCategory(cat domain.Category) CatalogEntryOption {
	return func(e *domain.CatalogEntry) {
		e.Category = cat
	}
}

func NewTestCatalogEntry(name string, opts ...CatalogEntryOption) domain.CatalogEntry {
	e := domain.CatalogEntry{
		Code:     NextCourseCode(),
		Name:     name,
		Credits:  4,
		Category: domain.CategoryElective,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// PlannedCourse options
type CourseOption func(*domain.PlannedCourse)

func WithStatus(s domain.CourseStatus) CourseOption {
	return func(c *domain.PlannedCourse) {
		c.Status = s
	}
}

func WithGrade(g string) CourseOption {
	return func(c *domain.PlannedCourse) {
		c.Grade = &g
	}
}

func WithSemester(semester, year string) CourseOption {
	return func(c *domain.PlannedCourse) {
		c.Semester = semester
		c.Year = year
	}
}

func WithCourseCredits(credits int) CourseOption {
	return func(c *domain.PlannedCourse) {
		c.Credits = credits
	}
}

func NewTestCourse(name string, opts ...CourseOption) domain.PlannedCourse {
	c := domain.PlannedCourse{
		ID:       uuid.New().String(),
		Code:     NextCourseCode(),
		Name:     name,
		Credits:  4,
		Status:   domain.StatusPlanned,
		Semester: "A",
		Year:     "2026",
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Task options
type TaskOption func(*domain.Task)

func WithDue(d domain.Date) TaskOption {
	return func(t *domain.Task) {
		t.Due = d
	}
}

func WithDueIn(days int) TaskOption {
	return func(t *domain.Task) {
		t.Due = domain.DateOf(time.Now().AddDate(0, 0, days))
	}
}

func WithKind(k domain.TaskKind) TaskOption {
	return func(t *domain.Task) {
		t.Kind = k
	}
}

func WithDone() TaskOption {
	return func(t *domain.Task) {
		t.Done = true
	}
}

func NewTestTask(courseCode, title string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:         uuid.New().String(),
		CourseCode: courseCode,
		Title:      title,
		Due:        domain.DateOf(time.Now().AddDate(0, 0, 14)),
		Kind:       domain.TaskAssignment,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
