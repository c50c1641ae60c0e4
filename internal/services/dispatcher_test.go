package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/yungbote/curator-sync/internal/docstore"
	"github.com/yungbote/curator-sync/internal/types"
)

type recordingIngest struct {
	keys []string
}

func (r *recordingIngest) Ingest(ctx context.Context, key string, record types.ArtworkRecord) error {
	r.keys = append(r.keys, key)
	return nil
}

type recordingUnlock struct {
	keys []string
}

func (r *recordingUnlock) Unlock(ctx context.Context, key string, record types.ArtworkRecord) error {
	r.keys = append(r.keys, key)
	return nil
}

func startDispatcher(t *testing.T, store *fakeStore, ingest IngestService, unlock UnlockService) context.CancelFunc {
	t.Helper()
	d := NewDispatcher(store, ingest, unlock, testLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	// wait for both subscriptions to land
	deadline := time.After(time.Second)
	for {
		store.mu.Lock()
		n := len(store.handlers)
		store.mu.Unlock()
		if n == 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("dispatcher never subscribed")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("dispatcher run: %v", err)
		}
	})
	return cancel
}

func eventFor(t *testing.T, record types.ArtworkRecord, key string) docstore.Event {
	t.Helper()
	raw, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	return docstore.Event{Key: key, Record: raw}
}

func TestDispatcher_RoutesApprovedAndHeld(t *testing.T) {
	store := newFakeStore()
	ingest := &recordingIngest{}
	unlock := &recordingUnlock{}
	startDispatcher(t, store, ingest, unlock)

	ctx := context.Background()
	store.emit(ctx, ApprovedPath, eventFor(t, approvedRecord(), "aw1"))
	store.emit(ctx, HeldPath, eventFor(t, heldRecord(), "aw2"))
	store.emit(ctx, ApprovedPath, eventFor(t, approvedRecord(), "aw3"))

	if len(ingest.keys) != 2 || ingest.keys[0] != "aw1" || ingest.keys[1] != "aw3" {
		t.Fatalf("approved events misrouted: %v", ingest.keys)
	}
	if len(unlock.keys) != 1 || unlock.keys[0] != "aw2" {
		t.Fatalf("held events misrouted: %v", unlock.keys)
	}
}

func TestDispatcher_MalformedSnapshotSkipped(t *testing.T) {
	store := newFakeStore()
	ingest := &recordingIngest{}
	unlock := &recordingUnlock{}
	startDispatcher(t, store, ingest, unlock)

	ctx := context.Background()
	store.emit(ctx, ApprovedPath, docstore.Event{Key: "bad", Record: []byte("{not json")})
	store.emit(ctx, ApprovedPath, eventFor(t, approvedRecord(), "good"))

	if len(ingest.keys) != 1 || ingest.keys[0] != "good" {
		t.Fatalf("malformed snapshot must be skipped, got %v", ingest.keys)
	}
}
