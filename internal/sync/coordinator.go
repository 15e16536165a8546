// Package sync routes every domain mutation to the backend chosen by the
// current session mode and keeps in-memory state, local storage and the
// remote store mutually consistent. Remote failures demote the whole session
// to local mode for the rest of the process lifetime.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	gosync "sync"

	"github.com/google/uuid"

	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/identity"
	"github.com/alexanderramin/syllabus/internal/state"
	"github.com/alexanderramin/syllabus/internal/store"
)

// ErrNoIdentity means no identity has been resolved yet; every mutation is
// rejected until the resolver has produced one.
var ErrNoIdentity = errors.New("no identity bound")

// ErrNotFound means the referenced record does not exist in the current
// snapshot.
var ErrNotFound = errors.New("not found")

// WarnFunc receives the single user-visible connectivity warning emitted
// when the session is demoted to local mode.
type WarnFunc func(msg string)

// Coordinator performs every domain mutation. It recomputes the session
// mode per operation, never caching it across calls.
type Coordinator struct {
	resolver *identity.Resolver
	local    *store.Local
	st       *state.Store
	logger   *slog.Logger
	warn     WarnFunc

	mu gosync.Mutex // serializes mutations

	// demoteMu serializes the two demotion entry points so a failed write
	// and a failed subscription cannot interleave their demotion sequences.
	demoteMu gosync.Mutex

	remoteMu gosync.RWMutex
	remote   store.Remote
}

// NewCoordinator wires a coordinator. remote starts unset; the session
// attaches it once a live remote binding exists.
func NewCoordinator(resolver *identity.Resolver, local *store.Local, st *state.Store, warn WarnFunc, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	if warn == nil {
		warn = func(string) {}
	}
	return &Coordinator{
		resolver: resolver,
		local:    local,
		st:       st,
		logger:   logger,
		warn:     warn,
	}
}

func (c *Coordinator) setRemote(r store.Remote) {
	c.remoteMu.Lock()
	c.remote = r
	c.remoteMu.Unlock()
}

func (c *Coordinator) getRemote() store.Remote {
	c.remoteMu.RLock()
	defer c.remoteMu.RUnlock()
	return c.remote
}

// mode derives the session mode for one operation. Remote mode requires an
// authenticated identity, liveness and a bound remote adapter; anything
// else is local.
func (c *Coordinator) mode() (identity.Identity, store.Remote, error) {
	id, live := c.resolver.Current()
	if id.UID == "" {
		return id, nil, ErrNoIdentity
	}
	if id.IsLocal || !live {
		return id, nil, nil
	}
	remote := c.getRemote()
	return id, remote, nil
}

// AddCourseToPlan adds the catalog entry with the given code to the study
// plan. Returns false without writing when the code is already planned.
func (c *Coordinator) AddCourseToPlan(ctx context.Context, code, semester, year string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, remote, err := c.mode()
	if err != nil {
		return false, err
	}

	if c.st.Courses().ContainsCode(code) {
		return false, nil
	}
	entry := c.st.Catalog().FindByCode(code)
	if entry == nil {
		return false, fmt.Errorf("course %s: %w in catalog", code, ErrNotFound)
	}

	course := domain.PlannedFromCatalog(*entry, semester, year)

	if remote == nil {
		course.ID = nextLocalID()
		plan := append(c.st.Courses(), *course)
		c.writeLocal(id.UID, store.ColCourses, plan)
		return true, nil
	}

	course.ID = uuid.New().String()
	if err := remote.PutDoc(ctx, id.UID, store.ColCourses, course.ID, course); err != nil {
		plan := append(c.st.Courses(), *course)
		c.demote(err, map[string]any{store.ColCourses: plan})
		return true, nil
	}
	// In-memory update arrives through the courses watcher.
	return true, nil
}

// UpdateCourseStatus sets the status of the planned course with the given
// document ID, leaving every other field unchanged.
func (c *Coordinator) UpdateCourseStatus(ctx context.Context, courseID string, status domain.CourseStatus) error {
	return c.updateCourse(ctx, courseID, func(course *domain.PlannedCourse) {
		course.Status = status
	})
}

// CourseUpdate carries optional edits to a planned course's detail fields.
// Nil fields are left unchanged.
type CourseUpdate struct {
	Semester *string
	Year     *string
	Comments *string
	Grade    *string
}

// UpdateCourseDetails applies the non-nil fields of upd.
func (c *Coordinator) UpdateCourseDetails(ctx context.Context, courseID string, upd CourseUpdate) error {
	return c.updateCourse(ctx, courseID, func(course *domain.PlannedCourse) {
		if upd.Semester != nil {
			course.Semester = *upd.Semester
		}
		if upd.Year != nil {
			course.Year = *upd.Year
		}
		if upd.Comments != nil {
			course.Comments = *upd.Comments
		}
		if upd.Grade != nil {
			grade := *upd.Grade
			course.Grade = &grade
		}
	})
}

func (c *Coordinator) updateCourse(ctx context.Context, courseID string, mutate func(*domain.PlannedCourse)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, remote, err := c.mode()
	if err != nil {
		return err
	}

	plan := c.st.Courses()
	course := plan.FindByID(courseID)
	if course == nil {
		return fmt.Errorf("course %s: %w", courseID, ErrNotFound)
	}
	mutate(course)

	if remote == nil {
		c.writeLocal(id.UID, store.ColCourses, plan)
		return nil
	}

	if err := remote.PutDoc(ctx, id.UID, store.ColCourses, course.ID, course); err != nil {
		c.demote(err, map[string]any{store.ColCourses: plan})
	}
	return nil
}

// RemoveCourse deletes a planned course and cascades to every task whose
// course code matches. All cascade deletes are awaited; no task may survive
// its course in either backend.
func (c *Coordinator) RemoveCourse(ctx context.Context, courseID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, remote, err := c.mode()
	if err != nil {
		return err
	}

	plan := c.st.Courses()
	course := plan.FindByID(courseID)
	if course == nil {
		return fmt.Errorf("course %s: %w", courseID, ErrNotFound)
	}

	remaining := make(domain.Plan, 0, len(plan)-1)
	for _, pc := range plan {
		if pc.ID != courseID {
			remaining = append(remaining, pc)
		}
	}
	tasks := c.st.Tasks()
	orphans := tasks.ForCourse(course.Code)
	kept := tasks.WithoutCourse(course.Code)

	if remote == nil {
		c.local.PutMany(id.UID, map[string]any{
			store.ColCourses: remaining,
			store.ColTasks:   kept,
		})
		gen := c.st.Generation()
		c.st.Apply(eventFor(gen, store.ColCourses, remaining))
		c.st.Apply(eventFor(gen, store.ColTasks, kept))
		return nil
	}

	var firstErr error
	for _, t := range orphans {
		if err := remote.DeleteDoc(ctx, id.UID, store.ColTasks, t.ID); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = remote.DeleteDoc(ctx, id.UID, store.ColCourses, courseID)
	}
	if firstErr != nil {
		c.demote(firstErr, map[string]any{
			store.ColCourses: remaining,
			store.ColTasks:   kept,
		})
	}
	return nil
}

// writeLocal persists one collection under the given identity and applies
// the same contents to in-memory state.
func (c *Coordinator) writeLocal(uid, collection string, value any) {
	c.local.Put(uid, collection, value)
	c.st.Apply(eventFor(c.st.Generation(), collection, value))
}

// demote is the write-failure path: the intended post-mutation collections
// are mirrored into the local sentinel's storage, the identity is replaced
// with the sentinel (which rebinds the mirror to local storage and
// republishes state from it), and one warning is surfaced. Once demoted,
// the session never retries remote. When another failure has already
// demoted the session, the unconfirmed write's state is dropped rather
// than mirrored over the sentinel's storage.
func (c *Coordinator) demote(cause error, mutated map[string]any) {
	c.demoteMu.Lock()
	defer c.demoteMu.Unlock()

	c.logger.Error("remote write failed, demoting to local mode", "error", cause)
	c.setRemote(nil)

	if id, live := c.resolver.Current(); !id.IsLocal && live && len(mutated) > 0 {
		c.local.PutMany(identity.LocalUID, mutated)
	}
	if c.resolver.Demote() {
		c.warn(demotionWarning)
	}
}

// DemoteSession is the subscription-error entry point: same demotion
// sequence, applied to the whole session at once, with no pending mutation
// to mirror.
func (c *Coordinator) DemoteSession(cause error) {
	c.demoteMu.Lock()
	defer c.demoteMu.Unlock()

	c.logger.Error("remote subscription failed, demoting to local mode", "error", cause)
	c.setRemote(nil)
	if c.resolver.Demote() {
		c.warn(demotionWarning)
	}
}

const demotionWarning = "Connection to the remote store failed. Your data is now saved on this device only."

func eventFor(gen uint64, collection string, v any) state.Event {
	ev := state.Event{Gen: gen, Collection: collection}
	switch collection {
	case store.ColCourses:
		ev.Courses = v.(domain.Plan)
	case store.ColTasks:
		ev.Tasks = v.(domain.TaskList)
	case store.ColNotes:
		ev.Notes = v.(domain.NoteList)
	case store.ColReadNotif:
		ev.ReadIDs = v.([]string)
	case store.ColCatalog:
		ev.Catalog = v.(domain.Catalog)
	}
	return ev
}
