package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/syllabus/internal/identity"
	"github.com/alexanderramin/syllabus/internal/state"
	"github.com/alexanderramin/syllabus/internal/store"
	"github.com/alexanderramin/syllabus/internal/sync"
	"github.com/alexanderramin/syllabus/internal/testutil"
)

// testApp wires a full App in local mode over an in-memory database.
func testApp(t *testing.T) *App {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	local := store.NewLocal(testutil.NewTestDB(t), logger)
	st := state.New()
	provider := identity.NewNATSProvider(identity.NATSProviderConfig{}, local)
	resolver := identity.NewResolver(provider, logger)
	coord := sync.NewCoordinator(resolver, local, st, nil, logger)
	mirror := sync.NewMirror(local, st, logger)
	session := sync.NewSession(resolver, coord, mirror, func(ctx context.Context) (store.Remote, error) {
		return nil, errors.New("no remote in tests")
	}, logger)
	session.Start(context.Background())

	return &App{
		Coord:         coord,
		State:         st,
		Session:       session,
		Resolver:      resolver,
		IsInteractive: func() bool { return false },
		Now:           func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) },
	}
}

// executeCmd runs a cobra command and captures its output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func seedCatalogCourse(t *testing.T, app *App) string {
	t.Helper()
	code := testutil.NextCourseCode()
	_, err := executeCmd(t, app, "catalog", "add",
		"--code", code, "--name", "Data Structures", "--credits", "4")
	require.NoError(t, err)
	return code
}

// --- course commands ---

func TestCourseAddAndList(t *testing.T) {
	app := testApp(t)
	code := seedCatalogCourse(t, app)

	out, err := executeCmd(t, app, "course", "add", code, "--semester", "A", "--year", "2026")
	require.NoError(t, err)
	assert.Contains(t, out, "Added "+code)

	out, err = executeCmd(t, app, "course", "list")
	require.NoError(t, err)
	assert.Contains(t, out, code)
	assert.Contains(t, out, "Data Structures")
	assert.Contains(t, out, "Planned")
}

func TestCourseAddDuplicate(t *testing.T) {
	app := testApp(t)
	code := seedCatalogCourse(t, app)

	_, err := executeCmd(t, app, "course", "add", code)
	require.NoError(t, err)
	out, err := executeCmd(t, app, "course", "add", code)
	require.NoError(t, err)
	assert.Contains(t, out, "already in the plan")
}

func TestCourseAddUnknownCode(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "course", "add", "00000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in the catalog")
}

func TestCourseStatusAndResolveByCode(t *testing.T) {
	app := testApp(t)
	code := seedCatalogCourse(t, app)
	_, err := executeCmd(t, app, "course", "add", code)
	require.NoError(t, err)

	out, err := executeCmd(t, app, "course", "status", code, "active")
	require.NoError(t, err)
	assert.Contains(t, out, "Active")

	_, err = executeCmd(t, app, "course", "status", code, "paused")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}

func TestCourseUpdateGrade(t *testing.T) {
	app := testApp(t)
	code := seedCatalogCourse(t, app)
	_, err := executeCmd(t, app, "course", "add", code)
	require.NoError(t, err)

	_, err = executeCmd(t, app, "course", "update", code, "--grade", "95", "--comments", "done early")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "course", "show", code)
	require.NoError(t, err)
	assert.Contains(t, out, "95")
	assert.Contains(t, out, "done early")
}

func TestCourseRemoveRequiresConfirmation(t *testing.T) {
	app := testApp(t)
	code := seedCatalogCourse(t, app)
	_, err := executeCmd(t, app, "course", "add", code)
	require.NoError(t, err)

	_, err = executeCmd(t, app, "course", "remove", code)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestCourseRemoveCascades(t *testing.T) {
	app := testApp(t)
	code := seedCatalogCourse(t, app)
	_, err := executeCmd(t, app, "course", "add", code)
	require.NoError(t, err)
	_, err = executeCmd(t, app, "task", "add", "--course", code, "--title", "homework 1", "--due", "2026-10-01")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "course", "remove", code, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "1 task(s)")

	out, err = executeCmd(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks.")
}

// --- task commands ---

func TestTaskAddListDone(t *testing.T) {
	app := testApp(t)
	code := seedCatalogCourse(t, app)
	_, err := executeCmd(t, app, "course", "add", code)
	require.NoError(t, err)

	out, err := executeCmd(t, app, "task", "add",
		"--course", code, "--title", "midterm", "--due", "2026-11-15", "--kind", "exam")
	require.NoError(t, err)
	assert.Contains(t, out, "midterm")

	out, err = executeCmd(t, app, "task", "list", "--course", code)
	require.NoError(t, err)
	assert.Contains(t, out, "midterm")
	assert.Contains(t, out, "Exam")

	taskID := app.State.Tasks()[0].ID
	out, err = executeCmd(t, app, "task", "done", taskID)
	require.NoError(t, err)
	assert.Contains(t, out, "Marked")

	out, err = executeCmd(t, app, "task", "done", taskID)
	require.NoError(t, err)
	assert.Contains(t, out, "Reopened")
}

func TestTaskAddRejectsBadInput(t *testing.T) {
	app := testApp(t)
	code := seedCatalogCourse(t, app)
	_, err := executeCmd(t, app, "course", "add", code)
	require.NoError(t, err)

	_, err = executeCmd(t, app, "task", "add", "--course", code, "--title", "x", "--due", "tomorrow")
	require.Error(t, err)

	_, err = executeCmd(t, app, "task", "add", "--course", code, "--title", "x", "--due", "2026-10-01", "--kind", "quiz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown task kind")
}

func TestTaskListUrgentWindow(t *testing.T) {
	app := testApp(t)
	code := seedCatalogCourse(t, app)
	_, err := executeCmd(t, app, "course", "add", code)
	require.NoError(t, err)

	// Today is 2026-09-01: one task inside the urgent window, one outside.
	_, err = executeCmd(t, app, "task", "add", "--course", code, "--title", "due soon", "--due", "2026-09-03")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "task", "add", "--course", code, "--title", "due later", "--due", "2026-10-01")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "task", "list", "--urgent")
	require.NoError(t, err)
	assert.Contains(t, out, "due soon")
	assert.NotContains(t, out, "due later")
}

func TestTaskAttach(t *testing.T) {
	app := testApp(t)
	code := seedCatalogCourse(t, app)
	_, err := executeCmd(t, app, "course", "add", code)
	require.NoError(t, err)
	_, err = executeCmd(t, app, "task", "add", "--course", code, "--title", "homework 1", "--due", "2026-10-01")
	require.NoError(t, err)
	taskID := app.State.Tasks()[0].ID

	_, err = executeCmd(t, app, "task", "attach", taskID, "hw1.pdf")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "hw1.pdf")
}

// --- note commands ---

func TestNoteLifecycle(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "note", "add", "buy", "lab", "notebook")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "note", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "buy lab notebook")

	noteID := strconv.FormatInt(app.State.Notes()[0].ID, 10)
	_, err = executeCmd(t, app, "note", "done", noteID)
	require.NoError(t, err)
	assert.True(t, app.State.Notes()[0].Done)

	_, err = executeCmd(t, app, "note", "remove", noteID)
	require.NoError(t, err)

	out, err = executeCmd(t, app, "note", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No notes.")
}

// --- catalog commands ---

func TestCatalogSearchAndFilter(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "catalog", "list", "algebra")
	require.NoError(t, err)
	assert.Contains(t, out, "Linear Algebra")

	out, err = executeCmd(t, app, "catalog", "list", "--category", "seminar")
	require.NoError(t, err)
	assert.NotContains(t, out, "Linear Algebra")

	_, err = executeCmd(t, app, "catalog", "list", "--category", "nope")
	require.Error(t, err)
}

func TestCatalogAddValidation(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "catalog", "add", "--code", "90001", "--name", "X", "--credits", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credits")
}

// --- status and notify ---

func TestStatusDashboard(t *testing.T) {
	app := testApp(t)
	code := seedCatalogCourse(t, app)
	_, err := executeCmd(t, app, "course", "add", code)
	require.NoError(t, err)
	_, err = executeCmd(t, app, "course", "status", code, "finished")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "4 credits earned")
	assert.Contains(t, out, "this device only")
}

func TestNotifyAcknowledge(t *testing.T) {
	app := testApp(t)
	code := seedCatalogCourse(t, app)
	_, err := executeCmd(t, app, "course", "add", code)
	require.NoError(t, err)
	_, err = executeCmd(t, app, "task", "add", "--course", code, "--title", "due soon", "--due", "2026-09-02")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "notify")
	require.NoError(t, err)
	assert.Contains(t, out, "due soon")

	taskID := app.State.Tasks()[0].ID
	_, err = executeCmd(t, app, "notify", "read", taskID)
	require.NoError(t, err)

	out, err = executeCmd(t, app, "notify")
	require.NoError(t, err)
	assert.Contains(t, out, "No unread")
}

// --- auth ---

func TestLoginWithoutRemote(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "login")
	require.NoError(t, err)
	assert.Contains(t, out, "No remote store configured")
}

func TestLogout(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out")
}

