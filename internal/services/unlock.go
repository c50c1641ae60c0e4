package services

import (
  "context"
  "encoding/json"
  "fmt"
  "github.com/yungbote/curator-sync/internal/docstore"
  "github.com/yungbote/curator-sync/internal/logger"
  "github.com/yungbote/curator-sync/internal/types"
)

// UnlockService reacts to a record entering Held by clearing the submitted
// flag on the sibling record in the artist-facing store, giving the artist
// back the ability to edit. The transform only ever writes false, so
// re-applying it converges.
type UnlockService interface {
  Unlock(ctx context.Context, key string, record types.ArtworkRecord) error
}

type unlockService struct {
  store          docstore.Store
  ownerNamespace string
  log            *logger.Logger
}

func NewUnlockService(store docstore.Store, ownerNamespace string, baseLog *logger.Logger) UnlockService {
  serviceLog := baseLog.With("service", "UnlockService")
  return &unlockService{
    store:          store,
    ownerNamespace: ownerNamespace,
    log:            serviceLog,
  }
}

func (us *unlockService) Unlock(ctx context.Context, key string, record types.ArtworkRecord) error {
  if record.Status != types.StatusHeld {
    return nil
  }
  if record.ArtistUID == "" || record.ArtworkUID == "" {
    us.log.Warn("Held record missing uids, cannot unlock", "key", key)
    return nil
  }

  path := fmt.Sprintf("%s/%s/artworks/%s", us.ownerNamespace, record.ArtistUID, record.ArtworkUID)
  us.log.Info("Request to unlock artwork", "path", path)

  err := us.store.Update(ctx, path, func(current []byte) ([]byte, error) {
    if current == nil {
      return nil, nil
    }
    sibling := map[string]any{}
    if err := json.Unmarshal(current, &sibling); err != nil {
      return nil, fmt.Errorf("decode sibling record: %w", err)
    }
    sibling["submitted"] = false
    return json.Marshal(sibling)
  })
  if err != nil {
    return fmt.Errorf("unlock artwork %s: %w", record.ArtworkUID, err)
  }
  us.log.Info("Artwork unlocked", "artwork_uid", record.ArtworkUID)
  return nil
}
