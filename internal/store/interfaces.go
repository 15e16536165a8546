package store

import "context"

// Collection names. They form the flat per-identity namespace shared by the
// local blob table and the remote key-value layout.
const (
	ColCourses   = "courses"
	ColTasks     = "tasks"
	ColNotes     = "notes"
	ColReadNotif = "readNotifications"
	ColCatalog   = "catalog"
)

// DocCollections are the collections stored one document per record on the
// remote backend. The remaining collections are single-document blobs.
var DocCollections = []string{ColCourses, ColTasks}

// BlobCollections are the single-document collections.
var BlobCollections = []string{ColNotes, ColReadNotif, ColCatalog}

// WatchEvent is one update delivered by a remote watcher.
type WatchEvent struct {
	// ID is the document ID within the watched collection, or the blob name.
	ID string
	// Value is the raw JSON document. Nil when Delete is set.
	Value []byte
	// Delete marks a document removal.
	Delete bool
	// InitialDone marks the end of the replay of pre-existing values.
	// ID and Value are empty on this event.
	InitialDone bool
	// Err is a terminal subscription failure. The watcher delivers no
	// further events after it.
	Err error
}

// Watcher is a live subscription to one collection.
type Watcher interface {
	// Events returns the update channel. It is closed after a terminal
	// error or Stop.
	Events() <-chan WatchEvent
	// Stop tears down the subscription.
	Stop()
}

// Remote is the document-store surface of the remote backend: asynchronous,
// fallible CRUD plus live subscriptions. Implementations perform no retries;
// retry and fallback policy lives entirely in the sync coordinator.
type Remote interface {
	// PutDoc creates or replaces one document in a per-record collection.
	PutDoc(ctx context.Context, uid, collection, id string, doc any) error
	// DeleteDoc removes one document. Deleting a missing document is not
	// an error.
	DeleteDoc(ctx context.Context, uid, collection, id string) error
	// GetBlob point-reads a single-document collection. Returns false
	// when the blob does not exist.
	GetBlob(ctx context.Context, uid, collection string, out any) (bool, error)
	// PutBlob creates or replaces a single-document collection.
	PutBlob(ctx context.Context, uid, collection string, blob any) error
	// Watch opens a live subscription to a collection (per-record or blob)
	// scoped to the given identity.
	Watch(ctx context.Context, uid, collection string) (Watcher, error)
}
