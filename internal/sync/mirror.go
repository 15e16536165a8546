package sync

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	gosync "sync"

	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/state"
	"github.com/alexanderramin/syllabus/internal/store"
)

// Mirror keeps the in-memory state aligned with whichever backend the
// session is bound to. A local binding is a one-shot read of every
// collection; a remote binding opens live watchers that fold document
// updates into full-collection snapshots. Every bind starts a new state
// generation, so events from a torn-down binding cannot land in the next
// one.
type Mirror struct {
	local  *store.Local
	st     *state.Store
	logger *slog.Logger
	fail   func(error)

	mu       gosync.Mutex
	binding  uint64
	watchers []store.Watcher
}

// NewMirror creates a mirror over the given local store and state.
func NewMirror(local *store.Local, st *state.Store, logger *slog.Logger) *Mirror {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mirror{local: local, st: st, logger: logger}
}

// SetFailureHandler registers the callback invoked on a terminal
// subscription failure. Set it before the first bind.
func (m *Mirror) SetFailureHandler(fn func(error)) {
	m.fail = fn
}

// BindLocal loads every collection for the identity from local storage.
// Missing collections resolve to empty defaults, except the catalog, which
// is seeded with the built-in course list on first use.
func (m *Mirror) BindLocal(uid string) {
	m.retire()
	gen := m.st.Rebind()

	var plan domain.Plan
	m.local.Get(uid, store.ColCourses, &plan)
	m.st.Apply(eventFor(gen, store.ColCourses, plan))

	var tasks domain.TaskList
	m.local.Get(uid, store.ColTasks, &tasks)
	m.st.Apply(eventFor(gen, store.ColTasks, tasks))

	var notes domain.NoteList
	m.local.Get(uid, store.ColNotes, &notes)
	m.st.Apply(eventFor(gen, store.ColNotes, notes))

	var readIDs []string
	m.local.Get(uid, store.ColReadNotif, &readIDs)
	m.st.Apply(eventFor(gen, store.ColReadNotif, readIDs))

	var catalog domain.Catalog
	if !m.local.Get(uid, store.ColCatalog, &catalog) {
		catalog = domain.SeedCatalog()
		m.local.Put(uid, store.ColCatalog, catalog)
	}
	m.st.Apply(eventFor(gen, store.ColCatalog, catalog))
}

// BindRemote point-reads the catalog (seeding it on first use) and opens
// live watchers for the remaining collections. A failure during the bind is
// reported through the failure handler instead of being returned, because
// the recovery is always the same: demote the session.
func (m *Mirror) BindRemote(ctx context.Context, uid string, remote store.Remote) {
	m.mu.Lock()
	m.stopWatchersLocked()
	m.binding++
	token := m.binding
	m.mu.Unlock()

	gen := m.st.Rebind()

	if err := m.bindCatalog(ctx, gen, uid, remote); err != nil {
		m.failWith(token, err)
		return
	}

	for _, col := range store.DocCollections {
		w, err := remote.Watch(ctx, uid, col)
		if err != nil {
			m.failWith(token, err)
			return
		}
		m.track(token, w)
		go m.pumpDocs(token, gen, col, w)
	}
	for _, col := range []string{store.ColNotes, store.ColReadNotif} {
		w, err := remote.Watch(ctx, uid, col)
		if err != nil {
			m.failWith(token, err)
			return
		}
		m.track(token, w)
		go m.pumpBlob(token, gen, col, w)
	}
}

// Unbind tears down any live watchers.
func (m *Mirror) Unbind() {
	m.retire()
}

func (m *Mirror) bindCatalog(ctx context.Context, gen uint64, uid string, remote store.Remote) error {
	var blob store.CatalogBlob
	found, err := remote.GetBlob(ctx, uid, store.ColCatalog, &blob)
	if err != nil {
		return err
	}
	if !found {
		blob.Courses = domain.SeedCatalog()
		if err := remote.PutBlob(ctx, uid, store.ColCatalog, blob); err != nil {
			return err
		}
	}
	m.st.Apply(eventFor(gen, store.ColCatalog, blob.Courses))
	return nil
}

func (m *Mirror) retire() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopWatchersLocked()
	m.binding++
}

func (m *Mirror) stopWatchersLocked() {
	for _, w := range m.watchers {
		w.Stop()
	}
	m.watchers = nil
}

// track registers a watcher for teardown unless the binding it belongs to
// has already been retired, in which case it is stopped immediately.
func (m *Mirror) track(token uint64, w store.Watcher) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if token != m.binding {
		w.Stop()
		return
	}
	m.watchers = append(m.watchers, w)
}

// failWith invokes the failure handler unless the binding has been retired,
// so a stale watcher cannot demote a newer session.
func (m *Mirror) failWith(token uint64, err error) {
	m.mu.Lock()
	stale := token != m.binding
	m.mu.Unlock()
	if stale || m.fail == nil {
		return
	}
	m.fail(err)
}

// pumpDocs folds per-document updates into a full-collection snapshot.
// Snapshots are published once the initial replay finishes and after every
// subsequent change.
func (m *Mirror) pumpDocs(token, gen uint64, collection string, w store.Watcher) {
	docs := make(map[string]json.RawMessage)
	ready := false
	for ev := range w.Events() {
		switch {
		case ev.Err != nil:
			m.failWith(token, ev.Err)
			return
		case ev.InitialDone:
			ready = true
		case ev.Delete:
			delete(docs, ev.ID)
		default:
			docs[ev.ID] = append(json.RawMessage(nil), ev.Value...)
		}
		if ready {
			m.publishDocs(gen, collection, docs)
		}
	}
}

func (m *Mirror) publishDocs(gen uint64, collection string, docs map[string]json.RawMessage) {
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	switch collection {
	case store.ColCourses:
		plan := make(domain.Plan, 0, len(ids))
		for _, id := range ids {
			var course domain.PlannedCourse
			if err := json.Unmarshal(docs[id], &course); err != nil {
				m.logger.Warn("skipping undecodable course document", "id", id, "error", err)
				continue
			}
			course.ID = id
			plan = append(plan, course)
		}
		m.st.Apply(eventFor(gen, collection, plan))
	case store.ColTasks:
		tasks := make(domain.TaskList, 0, len(ids))
		for _, id := range ids {
			var task domain.Task
			if err := json.Unmarshal(docs[id], &task); err != nil {
				m.logger.Warn("skipping undecodable task document", "id", id, "error", err)
				continue
			}
			task.ID = id
			tasks = append(tasks, task)
		}
		m.st.Apply(eventFor(gen, collection, tasks))
	}
}

// pumpBlob republishes a single-document collection on every update. A
// missing or deleted blob resolves to the empty default.
func (m *Mirror) pumpBlob(token, gen uint64, collection string, w store.Watcher) {
	for ev := range w.Events() {
		switch {
		case ev.Err != nil:
			m.failWith(token, ev.Err)
			return
		case ev.InitialDone, ev.Delete:
			if ev.Delete || !m.hasBlob(gen, collection) {
				m.publishBlob(gen, collection, nil)
			}
		default:
			m.publishBlob(gen, collection, ev.Value)
		}
	}
}

// hasBlob reports whether the collection already carries replayed contents,
// so the end-of-replay marker does not clobber them.
func (m *Mirror) hasBlob(gen uint64, collection string) bool {
	if m.st.Generation() != gen {
		return true
	}
	switch collection {
	case store.ColNotes:
		return len(m.st.Notes()) > 0
	case store.ColReadNotif:
		return len(m.st.ReadIDs()) > 0
	}
	return false
}

func (m *Mirror) publishBlob(gen uint64, collection string, raw []byte) {
	switch collection {
	case store.ColNotes:
		var blob store.NotesBlob
		if raw != nil {
			if err := json.Unmarshal(raw, &blob); err != nil {
				m.logger.Warn("skipping undecodable notes blob", "error", err)
				return
			}
		}
		m.st.Apply(eventFor(gen, collection, blob.Items))
	case store.ColReadNotif:
		var blob store.ReadNotifBlob
		if raw != nil {
			if err := json.Unmarshal(raw, &blob); err != nil {
				m.logger.Warn("skipping undecodable read-notifications blob", "error", err)
				return
			}
		}
		m.st.Apply(eventFor(gen, collection, blob.TaskIDs))
	}
}
