package store_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/store"
	"github.com/alexanderramin/syllabus/internal/testutil"
)

func newLocal(t *testing.T) *store.Local {
	t.Helper()
	return store.NewLocal(testutil.NewTestDB(t), slog.New(slog.DiscardHandler))
}

func TestLocalGetMissingCollection(t *testing.T) {
	local := newLocal(t)

	var plan domain.Plan
	assert.False(t, local.Get("local-user", store.ColCourses, &plan))
	assert.Empty(t, plan)
}

func TestLocalPutThenGet(t *testing.T) {
	local := newLocal(t)
	course := testutil.NewTestCourse("Infinitesimal Calculus I")

	local.Put("local-user", store.ColCourses, domain.Plan{course})

	var got domain.Plan
	require.True(t, local.Get("local-user", store.ColCourses, &got))
	require.Len(t, got, 1)
	assert.Equal(t, course.Code, got[0].Code)
	assert.Equal(t, course.Credits, got[0].Credits)
}

func TestLocalPutReplacesWholeBlob(t *testing.T) {
	local := newLocal(t)
	a := testutil.NewTestCourse("Logic")
	b := testutil.NewTestCourse("Automata Theory")

	local.Put("local-user", store.ColCourses, domain.Plan{a, b})
	local.Put("local-user", store.ColCourses, domain.Plan{b})

	var got domain.Plan
	require.True(t, local.Get("local-user", store.ColCourses, &got))
	require.Len(t, got, 1)
	assert.Equal(t, b.Code, got[0].Code)
}

func TestLocalCollectionsAreScopedByIdentity(t *testing.T) {
	local := newLocal(t)
	local.Put("local-user", store.ColNotes, domain.NoteList{{ID: 1, Text: "local note"}})
	local.Put("u1", store.ColNotes, domain.NoteList{{ID: 2, Text: "remote mirror"}})

	var localNotes, userNotes domain.NoteList
	require.True(t, local.Get("local-user", store.ColNotes, &localNotes))
	require.True(t, local.Get("u1", store.ColNotes, &userNotes))
	assert.Equal(t, "local note", localNotes[0].Text)
	assert.Equal(t, "remote mirror", userNotes[0].Text)
}

func TestLocalPutManyIsVisibleTogether(t *testing.T) {
	local := newLocal(t)
	course := testutil.NewTestCourse("Operating Systems")
	task := testutil.NewTestTask(course.Code, "lab 1")

	local.PutMany("local-user", map[string]any{
		store.ColCourses: domain.Plan{course},
		store.ColTasks:   domain.TaskList{task},
	})

	var plan domain.Plan
	var tasks domain.TaskList
	require.True(t, local.Get("local-user", store.ColCourses, &plan))
	require.True(t, local.Get("local-user", store.ColTasks, &tasks))
	assert.Len(t, plan, 1)
	assert.Len(t, tasks, 1)
}

func TestLocalDelete(t *testing.T) {
	local := newLocal(t)
	local.Put("local-user", store.ColNotes, domain.NoteList{{ID: 1, Text: "gone soon"}})

	local.Delete("local-user", store.ColNotes)

	var notes domain.NoteList
	assert.False(t, local.Get("local-user", store.ColNotes, &notes))
}

func TestLocalSessionRoundTrip(t *testing.T) {
	local := newLocal(t)

	_, ok := local.LoadSession()
	require.False(t, ok)

	local.SaveSession("u1")
	uid, ok := local.LoadSession()
	require.True(t, ok)
	assert.Equal(t, "u1", uid)

	// A later sign-in replaces the recorded session.
	local.SaveSession("u2")
	uid, ok = local.LoadSession()
	require.True(t, ok)
	assert.Equal(t, "u2", uid)

	local.ClearSession()
	_, ok = local.LoadSession()
	assert.False(t, ok)
}
