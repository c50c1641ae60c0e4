package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/yungbote/curator-sync/internal/logger"
  "github.com/yungbote/curator-sync/internal/types"
)

type LabelRepo interface {
  Create(ctx context.Context, tx *gorm.DB, labels []*types.Label) ([]*types.Label, error)
}

type labelRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewLabelRepo(db *gorm.DB, baseLog *logger.Logger) LabelRepo {
  repoLog := baseLog.With("repo", "LabelRepo")
  return &labelRepo{db: db, log: repoLog}
}

func (lr *labelRepo) Create(ctx context.Context, tx *gorm.DB, labels []*types.Label) ([]*types.Label, error) {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }
  if len(labels) == 0 {
    return []*types.Label{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&labels).Error; err != nil {
    return nil, err
  }
  return labels, nil
}
