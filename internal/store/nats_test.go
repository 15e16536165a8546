package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/store"
	"github.com/alexanderramin/syllabus/internal/testutil"
)

func newRemote(t *testing.T) *store.NATSStore {
	t.Helper()
	server := testutil.StartNATSServer(t)
	nc := testutil.ConnectNATS(t, server)
	remote, err := store.NewNATSStore(context.Background(), nc, "syllabus-test", 5*time.Second)
	require.NoError(t, err)
	return remote
}

func nextEvent(t *testing.T, w store.Watcher) store.WatchEvent {
	t.Helper()
	select {
	case ev, ok := <-w.Events():
		require.True(t, ok, "watcher closed unexpectedly")
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
		return store.WatchEvent{}
	}
}

func TestNATSDocRoundTrip(t *testing.T) {
	remote := newRemote(t)
	ctx := context.Background()
	course := testutil.NewTestCourse("Defensive Systems Programming")

	require.NoError(t, remote.PutDoc(ctx, "u1", store.ColCourses, course.ID, course))

	w, err := remote.Watch(ctx, "u1", store.ColCourses)
	require.NoError(t, err)
	defer w.Stop()

	ev := nextEvent(t, w)
	assert.Equal(t, course.ID, ev.ID)
	assert.False(t, ev.Delete)
	assert.NotEmpty(t, ev.Value)

	ev = nextEvent(t, w)
	assert.True(t, ev.InitialDone)
}

func TestNATSWatchDeliversLiveUpdatesAndDeletes(t *testing.T) {
	remote := newRemote(t)
	ctx := context.Background()

	w, err := remote.Watch(ctx, "u1", store.ColTasks)
	require.NoError(t, err)
	defer w.Stop()
	require.True(t, nextEvent(t, w).InitialDone)

	task := testutil.NewTestTask("20417", "homework 1")
	require.NoError(t, remote.PutDoc(ctx, "u1", store.ColTasks, task.ID, task))

	ev := nextEvent(t, w)
	assert.Equal(t, task.ID, ev.ID)
	assert.False(t, ev.Delete)

	require.NoError(t, remote.DeleteDoc(ctx, "u1", store.ColTasks, task.ID))
	ev = nextEvent(t, w)
	assert.Equal(t, task.ID, ev.ID)
	assert.True(t, ev.Delete)
}

func TestNATSWatchScopedToIdentity(t *testing.T) {
	remote := newRemote(t)
	ctx := context.Background()

	w, err := remote.Watch(ctx, "u1", store.ColCourses)
	require.NoError(t, err)
	defer w.Stop()
	require.True(t, nextEvent(t, w).InitialDone)

	other := testutil.NewTestCourse("Algorithms")
	require.NoError(t, remote.PutDoc(ctx, "u2", store.ColCourses, other.ID, other))
	mine := testutil.NewTestCourse("Algorithms")
	require.NoError(t, remote.PutDoc(ctx, "u1", store.ColCourses, mine.ID, mine))

	// Only u1's write is delivered.
	ev := nextEvent(t, w)
	assert.Equal(t, mine.ID, ev.ID)
}

func TestNATSDeleteMissingDocIsNotAnError(t *testing.T) {
	remote := newRemote(t)
	assert.NoError(t, remote.DeleteDoc(context.Background(), "u1", store.ColCourses, "missing"))
}

func TestNATSBlobRoundTrip(t *testing.T) {
	remote := newRemote(t)
	ctx := context.Background()

	var blob store.NotesBlob
	found, err := remote.GetBlob(ctx, "u1", store.ColNotes, &blob)
	require.NoError(t, err)
	assert.False(t, found)

	notes := domain.NoteList{{ID: 1, Text: "register for exams"}}
	require.NoError(t, remote.PutBlob(ctx, "u1", store.ColNotes, store.NotesBlob{Items: notes}))

	found, err = remote.GetBlob(ctx, "u1", store.ColNotes, &blob)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, notes, blob.Items)
}

func TestNATSBlobWatchDeliversUpdates(t *testing.T) {
	remote := newRemote(t)
	ctx := context.Background()

	w, err := remote.Watch(ctx, "u1", store.ColReadNotif)
	require.NoError(t, err)
	defer w.Stop()
	require.True(t, nextEvent(t, w).InitialDone)

	require.NoError(t, remote.PutBlob(ctx, "u1", store.ColReadNotif, store.ReadNotifBlob{TaskIDs: []string{"t1"}}))

	ev := nextEvent(t, w)
	assert.False(t, ev.Delete)
	assert.NotEmpty(t, ev.Value)
}
