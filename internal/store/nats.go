package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NATSStore implements Remote over a JetStream key-value bucket.
//
// Layout, per identity:
//
//	users.<uid>.courses.<id>          one entry per planned course
//	users.<uid>.tasks.<id>            one entry per task
//	users.<uid>.data.<collection>     single-document blobs
//
// Every call is bounded by the configured timeout. The adapter performs no
// retries; a failed call is reported to the caller as-is.
type NATSStore struct {
	kv      jetstream.KeyValue
	timeout time.Duration
}

// NewNATSStore binds to (creating if needed) the named bucket on an
// established connection.
func NewNATSStore(ctx context.Context, nc *nats.Conn, bucket string, timeout time.Duration) (*NATSStore, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("creating jetstream context: %w", err)
	}
	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:  bucket,
		History: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("binding bucket %q: %w", bucket, err)
	}
	return &NATSStore{kv: kv, timeout: timeout}, nil
}

func (s *NATSStore) PutDoc(ctx context.Context, uid, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling %s document: %w", collection, err)
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	if _, err := s.kv.Put(ctx, docKey(uid, collection, id), data); err != nil {
		return fmt.Errorf("writing %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *NATSStore) DeleteDoc(ctx context.Context, uid, collection, id string) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	err := s.kv.Delete(ctx, docKey(uid, collection, id))
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("deleting %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *NATSStore) GetBlob(ctx context.Context, uid, collection string, out any) (bool, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	entry, err := s.kv.Get(ctx, blobKey(uid, collection))
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s blob: %w", collection, err)
	}
	if err := json.Unmarshal(entry.Value(), out); err != nil {
		return false, fmt.Errorf("decoding %s blob: %w", collection, err)
	}
	return true, nil
}

func (s *NATSStore) PutBlob(ctx context.Context, uid, collection string, blob any) error {
	data, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("marshaling %s blob: %w", collection, err)
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	if _, err := s.kv.Put(ctx, blobKey(uid, collection), data); err != nil {
		return fmt.Errorf("writing %s blob: %w", collection, err)
	}
	return nil
}

func (s *NATSStore) Watch(ctx context.Context, uid, collection string) (Watcher, error) {
	pattern := blobKey(uid, collection)
	if isDocCollection(collection) {
		pattern = docKey(uid, collection, ">")
	}
	kw, err := s.kv.Watch(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("watching %s: %w", collection, err)
	}

	w := &natsWatcher{
		kw:     kw,
		events: make(chan WatchEvent, 16),
		done:   make(chan struct{}),
	}
	go w.pump(ctx)
	return w, nil
}

func (s *NATSStore) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

type natsWatcher struct {
	kw     jetstream.KeyWatcher
	events chan WatchEvent
	done   chan struct{}
}

func (w *natsWatcher) Events() <-chan WatchEvent { return w.events }

func (w *natsWatcher) Stop() {
	select {
	case <-w.done:
	default:
		close(w.done)
	}
	_ = w.kw.Stop()
}

// pump converts JetStream entries into WatchEvents. A nil entry marks the
// end of the initial replay. An unexpected channel close while the context
// is still live is a subscription failure.
func (w *natsWatcher) pump(ctx context.Context) {
	defer close(w.events)
	for {
		select {
		case <-w.done:
			return
		case <-ctx.Done():
			return
		case entry, ok := <-w.kw.Updates():
			if !ok {
				select {
				case <-w.done:
				case <-ctx.Done():
				default:
					w.emit(WatchEvent{Err: errors.New("subscription closed unexpectedly")})
				}
				return
			}
			if entry == nil {
				w.emit(WatchEvent{InitialDone: true})
				continue
			}
			ev := WatchEvent{ID: lastKeySegment(entry.Key())}
			switch entry.Operation() {
			case jetstream.KeyValueDelete, jetstream.KeyValuePurge:
				ev.Delete = true
			default:
				ev.Value = entry.Value()
			}
			w.emit(ev)
		}
	}
}

func (w *natsWatcher) emit(ev WatchEvent) {
	select {
	case w.events <- ev:
	case <-w.done:
	}
}

func docKey(uid, collection, id string) string {
	return fmt.Sprintf("users.%s.%s.%s", sanitizeUID(uid), collection, id)
}

func blobKey(uid, collection string) string {
	return fmt.Sprintf("users.%s.data.%s", sanitizeUID(uid), collection)
}

func isDocCollection(collection string) bool {
	for _, c := range DocCollections {
		if c == collection {
			return true
		}
	}
	return false
}

func lastKeySegment(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}

// sanitizeUID maps an identity to the KV key charset.
func sanitizeUID(uid string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, uid)
}
