// Package state holds the in-memory collections. All writes flow through a
// single reducer keyed by collection name, so snapshot ordering and
// last-write-wins semantics are enforced in one place instead of scattered
// across subscription callbacks.
package state

import (
	"sync"

	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/store"
)

// Event is one full-collection replacement. Exactly one of the value fields
// is meaningful, selected by Collection. Gen ties the event to the identity
// binding it was produced under; stale events are dropped.
type Event struct {
	Gen        uint64
	Collection string

	Courses domain.Plan
	Tasks   domain.TaskList
	Notes   domain.NoteList
	ReadIDs []string
	Catalog domain.Catalog
}

// Store is the mutex-guarded snapshot of all collections. Only the sync
// coordinator and the live state mirror write to it.
type Store struct {
	mu  sync.RWMutex
	gen uint64

	courses domain.Plan
	tasks   domain.TaskList
	notes   domain.NoteList
	readIDs map[string]bool
	catalog domain.Catalog
}

// New creates an empty store at generation zero.
func New() *Store {
	return &Store{readIDs: make(map[string]bool)}
}

// Generation returns the current binding generation.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// Rebind starts a new binding generation and clears every collection, so
// state from a previous identity cannot bleed into the new one. Returns the
// new generation for tagging events.
func (s *Store) Rebind() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.courses = nil
	s.tasks = nil
	s.notes = nil
	s.readIDs = make(map[string]bool)
	s.catalog = nil
	return s.gen
}

// Apply is the reducer. It replaces the event's collection with the event's
// contents. Events from a stale generation are dropped and reported false.
func (s *Store) Apply(e Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.Gen != s.gen {
		return false
	}
	switch e.Collection {
	case store.ColCourses:
		s.courses = e.Courses
	case store.ColTasks:
		s.tasks = e.Tasks
	case store.ColNotes:
		s.notes = e.Notes
	case store.ColReadNotif:
		ids := make(map[string]bool, len(e.ReadIDs))
		for _, id := range e.ReadIDs {
			ids[id] = true
		}
		s.readIDs = ids
	case store.ColCatalog:
		s.catalog = e.Catalog
	}
	return true
}

// Courses returns a copy of the planned courses.
func (s *Store) Courses() domain.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(domain.Plan, len(s.courses))
	copy(out, s.courses)
	return out
}

// Tasks returns a copy of the task list.
func (s *Store) Tasks() domain.TaskList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(domain.TaskList, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Notes returns a copy of the personal to-do list.
func (s *Store) Notes() domain.NoteList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(domain.NoteList, len(s.notes))
	copy(out, s.notes)
	return out
}

// ReadIDs returns a copy of the acknowledged task-ID set.
func (s *Store) ReadIDs() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool, len(s.readIDs))
	for id := range s.readIDs {
		out[id] = true
	}
	return out
}

// ReadIDList returns the acknowledged task IDs as a slice.
func (s *Store) ReadIDList() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.readIDs))
	for id := range s.readIDs {
		out = append(out, id)
	}
	return out
}

// Catalog returns a copy of the catalog.
func (s *Store) Catalog() domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(domain.Catalog, len(s.catalog))
	copy(out, s.catalog)
	return out
}
