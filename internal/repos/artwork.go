package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/yungbote/curator-sync/internal/logger"
  "github.com/yungbote/curator-sync/internal/types"
)

type ArtworkRepo interface {
  Create(ctx context.Context, tx *gorm.DB, artworks []*types.Artwork) ([]*types.Artwork, error)
  GetByUIDs(ctx context.Context, tx *gorm.DB, uids []string) ([]*types.Artwork, error)
}

type artworkRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewArtworkRepo(db *gorm.DB, baseLog *logger.Logger) ArtworkRepo {
  repoLog := baseLog.With("repo", "ArtworkRepo")
  return &artworkRepo{db: db, log: repoLog}
}

func (ar *artworkRepo) Create(ctx context.Context, tx *gorm.DB, artworks []*types.Artwork) ([]*types.Artwork, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  if len(artworks) == 0 {
    return []*types.Artwork{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&artworks).Error; err != nil {
    return nil, err
  }
  return artworks, nil
}

func (ar *artworkRepo) GetByUIDs(ctx context.Context, tx *gorm.DB, uids []string) ([]*types.Artwork, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  var results []*types.Artwork
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
