package repos

import (
  "context"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/yungbote/curator-sync/internal/logger"
  "github.com/yungbote/curator-sync/internal/types"
)

type ArtistRepo interface {
  // Create inserts artists, silently skipping uids that already exist.
  // Every ingestion of an artist's artwork writes the artist row again, so
  // the conflict is the normal case after the first one.
  Create(ctx context.Context, tx *gorm.DB, artists []*types.Artist) ([]*types.Artist, error)
  GetByUIDs(ctx context.Context, tx *gorm.DB, uids []string) ([]*types.Artist, error)
}

type artistRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewArtistRepo(db *gorm.DB, baseLog *logger.Logger) ArtistRepo {
  repoLog := baseLog.With("repo", "ArtistRepo")
  return &artistRepo{db: db, log: repoLog}
}

func (ar *artistRepo) Create(ctx context.Context, tx *gorm.DB, artists []*types.Artist) ([]*types.Artist, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  if len(artists) == 0 {
    return []*types.Artist{}, nil
  }
  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{DoNothing: true}).
    Create(&artists).Error; err != nil {
    return nil, err
  }
  return artists, nil
}

func (ar *artistRepo) GetByUIDs(ctx context.Context, tx *gorm.DB, uids []string) ([]*types.Artist, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  var results []*types.Artist
  if len(uids) == 0 {
    return results, nil
  }
  if err := transaction.WithContext(ctx).
    Where("uid IN ?", uids).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
