package services

import (
  "context"
  "encoding/json"
  "fmt"
  "github.com/yungbote/curator-sync/internal/docstore"
  "github.com/yungbote/curator-sync/internal/logger"
)

// SyncMarker flips the sql flag on the source record once a relational write
// has committed. The flag is the sole cross-attempt coordination point, so it
// goes through the store's optimistic transaction, never a plain overwrite.
type SyncMarker interface {
  MarkSynced(ctx context.Context, artworkUID string) error
}

type syncMarker struct {
  store docstore.Store
  log   *logger.Logger
}

func NewSyncMarker(store docstore.Store, baseLog *logger.Logger) SyncMarker {
  serviceLog := baseLog.With("service", "SyncMarker")
  return &syncMarker{store: store, log: serviceLog}
}

func (sm *syncMarker) MarkSynced(ctx context.Context, artworkUID string) error {
  path := fmt.Sprintf("%s/%s", ApprovedPath, artworkUID)
  err := sm.store.Update(ctx, path, func(current []byte) ([]byte, error) {
    if current == nil {
      sm.log.Warn("Approved record vanished before marking", "artwork_uid", artworkUID)
      return nil, nil
    }
    record := map[string]any{}
    if err := json.Unmarshal(current, &record); err != nil {
      return nil, fmt.Errorf("decode approved record %s: %w", artworkUID, err)
    }
    record["sql"] = true
    return json.Marshal(record)
  })
  if err != nil {
    return fmt.Errorf("mark %s as synchronized: %w", artworkUID, err)
  }
  sm.log.Info("Artwork marked as synchronized", "artwork_uid", artworkUID)
  return nil
}
