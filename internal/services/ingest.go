package services

import (
  "context"
  "errors"
  "fmt"

  "github.com/jackc/pgx/v5/pgconn"
  "gorm.io/gorm"

  "github.com/yungbote/curator-sync/internal/docstore"
  "github.com/yungbote/curator-sync/internal/labels"
  "github.com/yungbote/curator-sync/internal/logger"
  "github.com/yungbote/curator-sync/internal/normalization"
  "github.com/yungbote/curator-sync/internal/repos"
  "github.com/yungbote/curator-sync/internal/types"
)

// ArtworkOrigin marks every row this daemon writes as coming from the
// artist portal.
const ArtworkOrigin = "portal"

type IngestService interface {
  // Ingest runs the full approval pipeline for one delivered record:
  // derive labels, normalize the submission date, write artwork, artist,
  // labels and associations, then mark the source record synchronized.
  // Records already flagged sql and the placeholder key are no-ops, which
  // is the defense against duplicate delivery.
  Ingest(ctx context.Context, key string, record types.ArtworkRecord) error
}

type ingestService struct {
  db  *gorm.DB
  log *logger.Logger

  artworkRepo     repos.ArtworkRepo
  artistRepo      repos.ArtistRepo
  labelRepo       repos.LabelRepo
  associationRepo repos.AssociationRepo

  marker        SyncMarker
  thumbnailBase string
}

func NewIngestService(
  db *gorm.DB,
  baseLog *logger.Logger,
  artworkRepo repos.ArtworkRepo,
  artistRepo repos.ArtistRepo,
  labelRepo repos.LabelRepo,
  associationRepo repos.AssociationRepo,
  marker SyncMarker,
  thumbnailBase string,
) IngestService {
  serviceLog := baseLog.With("service", "IngestService")
  return &ingestService{
    db:              db,
    log:             serviceLog,
    artworkRepo:     artworkRepo,
    artistRepo:      artistRepo,
    labelRepo:       labelRepo,
    associationRepo: associationRepo,
    marker:          marker,
    thumbnailBase:   thumbnailBase,
  }
}

func (is *ingestService) Ingest(ctx context.Context, key string, record types.ArtworkRecord) error {
  if record.SQL || key == docstore.PlaceholderKey {
    is.log.Debug("Skipping record", "key", key, "already_synced", record.SQL)
    return nil
  }
  if record.ArtworkUID == "" || record.ArtistUID == "" {
    return fmt.Errorf("record %s is missing artwork or artist uid", key)
  }
  is.log.Info("Ingesting approved artwork", "key", key, "artwork_uid", record.ArtworkUID)

  derived := labels.Extract(record)

  date, err := normalization.DateTime(record.Submitted)
  if err != nil {
    return fmt.Errorf("record %s: %w", key, err)
  }

  artwork := &types.Artwork{
    UID:            record.ArtworkUID,
    Title:          record.ArtworkName,
    Description:    record.Description,
    ArtistUID:      record.ArtistUID,
    DateOfAddition: date,
    ThumbnailURL:   is.thumbnailURL(record),
    Origin:         ArtworkOrigin,
  }
  artist := &types.Artist{
    UID:            record.ArtistUID,
    Artist:         record.ArtistName,
    HumanName:      record.ArtistName,
    DateOfAddition: normalization.Now(),
  }

  // The artist row sits outside the atomicity contract: it is written on
  // every ingestion of that artist's work and its failure never blocks the
  // artwork from committing.
  if _, err := is.artistRepo.Create(ctx, nil, []*types.Artist{artist}); err != nil {
    is.log.Warn("Artist insert failed, continuing", "artist_uid", record.ArtistUID, "error", err)
  }

  err = is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    // Artwork first: associations reference its uid.
    if _, err := is.artworkRepo.Create(ctx, tx, []*types.Artwork{artwork}); err != nil {
      return fmt.Errorf("insert artwork %s: %w", record.ArtworkUID, err)
    }
    labelRows := make([]*types.Label, len(derived))
    associationRows := make([]*types.Association, len(derived))
    for i := range derived {
      labelRows[i] = &derived[i]
      associationRows[i] = &types.Association{
        LabelUID:    derived[i].UID,
        ObjectUID:   record.ArtworkUID,
        ObjectTable: types.ObjectTableArtworks,
      }
    }
    if _, err := is.labelRepo.Create(ctx, tx, labelRows); err != nil {
      return fmt.Errorf("insert labels for %s: %w", record.ArtworkUID, err)
    }
    if _, err := is.associationRepo.Create(ctx, tx, associationRows); err != nil {
      return fmt.Errorf("insert associations for %s: %w", record.ArtworkUID, err)
    }
    return nil
  })
  if err != nil {
    if isDuplicateKey(err) {
      // The uniqueness constraint caught a redelivery the sql flag missed.
      is.log.Warn("Artwork already in relational store, skipping", "artwork_uid", record.ArtworkUID)
      return nil
    }
    return fmt.Errorf("ingest %s: %w", record.ArtworkUID, err)
  }

  is.log.Info("Artwork inserted", "artwork_uid", record.ArtworkUID, "labels", len(derived))

  if err := is.marker.MarkSynced(ctx, record.ArtworkUID); err != nil {
    // Rows are committed; the next delivery will hit the uniqueness guard.
    is.log.Error("Failed to mark artwork as synchronized", "artwork_uid", record.ArtworkUID, "error", err)
  }
  return nil
}

func (is *ingestService) thumbnailURL(record types.ArtworkRecord) string {
  return fmt.Sprintf("%s/%s/thumb128/%s", is.thumbnailBase, record.ArtistUID, record.ArtworkUID)
}

func isDuplicateKey(err error) bool {
  if errors.Is(err, gorm.ErrDuplicatedKey) {
    return true
  }
  var pgErr *pgconn.PgError
  return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
