package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/curator-sync/internal/docstore"
	"github.com/yungbote/curator-sync/internal/logger"
	"github.com/yungbote/curator-sync/internal/repos"
	"github.com/yungbote/curator-sync/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&types.Artwork{}, &types.Artist{}, &types.Label{}, &types.Association{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

// fakeStore is an in-memory docstore.Store. Update is applied under a lock,
// which is enough to stand in for the real store's optimistic transaction.
type fakeStore struct {
	mu       sync.Mutex
	records  map[string][]byte
	handlers map[string]docstore.Handler
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records:  map[string][]byte{},
		handlers: map[string]docstore.Handler{},
	}
}

func (f *fakeStore) Subscribe(ctx context.Context, path string, h docstore.Handler) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[path] = h
	return nil
}

func (f *fakeStore) emit(ctx context.Context, path string, evt docstore.Event) {
	f.mu.Lock()
	h := f.handlers[path]
	f.mu.Unlock()
	if h != nil {
		h(ctx, evt)
	}
}

func (f *fakeStore) Get(ctx context.Context, path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.records[path], nil
}

func (f *fakeStore) set(path string, raw []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[path] = raw
}

func (f *fakeStore) Update(ctx context.Context, path string, mutate func([]byte) ([]byte, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	next, err := mutate(f.records[path])
	if err != nil {
		return err
	}
	if next != nil {
		f.records[path] = next
	}
	return nil
}

func (f *fakeStore) Close() error { return nil }

type testPipeline struct {
	db      *gorm.DB
	curator *fakeStore
	ingest  IngestService
}

const testThumbnailBase = "https://storage.googleapis.com/art-uploads/portal"

func newTestPipeline(t *testing.T) *testPipeline {
	t.Helper()
	log := testLogger(t)
	gdb := newTestDB(t)
	curator := newFakeStore()
	marker := NewSyncMarker(curator, log)
	ingest := NewIngestService(
		gdb,
		log,
		repos.NewArtworkRepo(gdb, log),
		repos.NewArtistRepo(gdb, log),
		repos.NewLabelRepo(gdb, log),
		repos.NewAssociationRepo(gdb, log),
		marker,
		testThumbnailBase,
	)
	return &testPipeline{db: gdb, curator: curator, ingest: ingest}
}

func approvedRecord() types.ArtworkRecord {
	return types.ArtworkRecord{
		ArtworkUID:  "-KcDphAm1fx6U6CYzYtr",
		ArtistUID:   "x4hhJGNPx9g3jH2iikX60tdnn6p1",
		ArtworkName: "The Starry Night",
		ArtistName:  "Afika Nyati",
		Description: "A collection of famous oil paintings.",
		Status:      types.StatusApproved,
		Submitted:   "2017-02-05T15:19:43.674Z",
		Colors: []types.RecordColor{
			{Hex: "#566f88", Density: 0.34575, W3C: types.W3CColor{Hex: "#708090", Name: "SlateGray"}},
			{Hex: "#28345a", Density: 0.13825, W3C: types.W3CColor{Hex: "#483d8b", Name: "DarkSlateBlue"}},
		},
		Tags: []types.RecordTag{
			{ID: 1, Text: "pattern"},
			{ID: 2, Text: "art"},
			{ID: 3, Text: "abstract"},
		},
	}
}

func countRows(t *testing.T, gdb *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	if err := gdb.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}
