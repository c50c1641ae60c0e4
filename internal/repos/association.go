package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/yungbote/curator-sync/internal/logger"
  "github.com/yungbote/curator-sync/internal/types"
)

type AssociationRepo interface {
  Create(ctx context.Context, tx *gorm.DB, associations []*types.Association) ([]*types.Association, error)
  GetByObjectUIDs(ctx context.Context, tx *gorm.DB, objectUIDs []string) ([]*types.Association, error)
}

type associationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAssociationRepo(db *gorm.DB, baseLog *logger.Logger) AssociationRepo {
  repoLog := baseLog.With("repo", "AssociationRepo")
  return &associationRepo{db: db, log: repoLog}
}

func (ar *associationRepo) Create(ctx context.Context, tx *gorm.DB, associations []*types.Association) ([]*types.Association, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  if len(associations) == 0 {
    return []*types.Association{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&associations).Error; err != nil {
    return nil, err
  }
  return associations, nil
}

func (ar *associationRepo) GetByObjectUIDs(ctx context.Context, tx *gorm.DB, objectUIDs []string) ([]*types.Association, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  var results []*types.Association
  if len(objectUIDs) == 0 {
    return results, nil
  }
  if err := transaction.WithContext(ctx).
    Where("object_uid IN ?", objectUIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
