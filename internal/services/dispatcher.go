package services

import (
  "context"
  "encoding/json"
  "github.com/yungbote/curator-sync/internal/docstore"
  "github.com/yungbote/curator-sync/internal/logger"
  "github.com/yungbote/curator-sync/internal/types"
)

// Subscription paths on the curator store.
const (
  ApprovedPath = "approved"
  HeldPath     = "held"
)

// Dispatcher owns the two curator-store subscriptions and routes each
// child-added notification to the ingestion pipeline or to the unlock
// handler. It never retries: redelivery is the store's job, and a failed
// record must never take the listener down with it.
type Dispatcher struct {
  log     *logger.Logger
  curator docstore.Store
  ingest  IngestService
  unlock  UnlockService
}

func NewDispatcher(curator docstore.Store, ingest IngestService, unlock UnlockService, baseLog *logger.Logger) *Dispatcher {
  return &Dispatcher{
    log:     baseLog.With("service", "Dispatcher"),
    curator: curator,
    ingest:  ingest,
    unlock:  unlock,
  }
}

// Run establishes both subscriptions and blocks until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
  if err := d.curator.Subscribe(ctx, ApprovedPath, d.handleApproved); err != nil {
    return err
  }
  d.log.Info(">>> Listening for approved...")

  if err := d.curator.Subscribe(ctx, HeldPath, d.handleHeld); err != nil {
    return err
  }
  d.log.Info(">>> Listening for held...")

  <-ctx.Done()
  return nil
}

func (d *Dispatcher) handleApproved(ctx context.Context, evt docstore.Event) {
  record, ok := d.decode(evt)
  if !ok {
    return
  }
  if err := d.ingest.Ingest(ctx, evt.Key, record); err != nil {
    d.log.Error("Ingestion failed", "key", evt.Key, "error", err)
  }
}

func (d *Dispatcher) handleHeld(ctx context.Context, evt docstore.Event) {
  record, ok := d.decode(evt)
  if !ok {
    return
  }
  if err := d.unlock.Unlock(ctx, evt.Key, record); err != nil {
    d.log.Error("Unlock failed", "key", evt.Key, "error", err)
  }
}

func (d *Dispatcher) decode(evt docstore.Event) (types.ArtworkRecord, bool) {
  var record types.ArtworkRecord
  if err := json.Unmarshal(evt.Record, &record); err != nil {
    d.log.Error("Malformed record snapshot, skipping", "key", evt.Key, "error", err)
    return record, false
  }
  return record, true
}
