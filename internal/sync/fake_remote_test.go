package sync

import (
	"context"
	"encoding/json"
	gosync "sync"

	"github.com/alexanderramin/syllabus/internal/store"
)

// fakeRemote is an in-memory Remote with live watchers, plus switchable
// failure injection for every call.
type fakeRemote struct {
	mu       gosync.Mutex
	docs     map[string]map[string][]byte
	blobs    map[string][]byte
	watchers map[string][]*fakeWatcher

	putDocErr  error
	delDocErr  error
	getBlobErr error
	putBlobErr error
	watchErr   error
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		docs:     make(map[string]map[string][]byte),
		blobs:    make(map[string][]byte),
		watchers: make(map[string][]*fakeWatcher),
	}
}

func (f *fakeRemote) PutDoc(ctx context.Context, uid, collection, id string, doc any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putDocErr != nil {
		return f.putDocErr
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if f.docs[collection] == nil {
		f.docs[collection] = make(map[string][]byte)
	}
	f.docs[collection][id] = data
	f.notifyLocked(collection, store.WatchEvent{ID: id, Value: data})
	return nil
}

func (f *fakeRemote) DeleteDoc(ctx context.Context, uid, collection, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.delDocErr != nil {
		return f.delDocErr
	}
	delete(f.docs[collection], id)
	f.notifyLocked(collection, store.WatchEvent{ID: id, Delete: true})
	return nil
}

func (f *fakeRemote) GetBlob(ctx context.Context, uid, collection string, out any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getBlobErr != nil {
		return false, f.getBlobErr
	}
	data, ok := f.blobs[collection]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, out)
}

func (f *fakeRemote) PutBlob(ctx context.Context, uid, collection string, blob any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putBlobErr != nil {
		return f.putBlobErr
	}
	data, err := json.Marshal(blob)
	if err != nil {
		return err
	}
	f.blobs[collection] = data
	f.notifyLocked(collection, store.WatchEvent{ID: collection, Value: data})
	return nil
}

func (f *fakeRemote) Watch(ctx context.Context, uid, collection string) (store.Watcher, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.watchErr != nil {
		return nil, f.watchErr
	}
	w := &fakeWatcher{ch: make(chan store.WatchEvent, 64)}
	for id, data := range f.docs[collection] {
		w.send(store.WatchEvent{ID: id, Value: data})
	}
	if data, ok := f.blobs[collection]; ok {
		w.send(store.WatchEvent{ID: collection, Value: data})
	}
	w.send(store.WatchEvent{InitialDone: true})
	f.watchers[collection] = append(f.watchers[collection], w)
	return w, nil
}

// failSubscription delivers a terminal error on every live watcher of the
// collection.
func (f *fakeRemote) failSubscription(collection string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifyLocked(collection, store.WatchEvent{Err: err})
}

// failAllCalls makes every subsequent call return err.
func (f *fakeRemote) failAllCalls(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.putDocErr = err
	f.delDocErr = err
	f.getBlobErr = err
	f.putBlobErr = err
	f.watchErr = err
}

func (f *fakeRemote) docCount(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.docs[collection])
}

func (f *fakeRemote) notifyLocked(collection string, ev store.WatchEvent) {
	for _, w := range f.watchers[collection] {
		w.send(ev)
	}
}

type fakeWatcher struct {
	mu     gosync.Mutex
	ch     chan store.WatchEvent
	closed bool
}

func (w *fakeWatcher) Events() <-chan store.WatchEvent { return w.ch }

func (w *fakeWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.closed {
		w.closed = true
		close(w.ch)
	}
}

func (w *fakeWatcher) send(ev store.WatchEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.ch <- ev:
	default:
	}
}
