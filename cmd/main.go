package main

import (
  "context"
  "fmt"
  "net/http"
  "os"
  "os/signal"
  "syscall"

  "golang.org/x/sync/errgroup"

  "github.com/yungbote/curator-sync/internal/config"
  "github.com/yungbote/curator-sync/internal/db"
  "github.com/yungbote/curator-sync/internal/docstore"
  "github.com/yungbote/curator-sync/internal/logger"
  "github.com/yungbote/curator-sync/internal/repos"
  "github.com/yungbote/curator-sync/internal/server"
  "github.com/yungbote/curator-sync/internal/services"
  "github.com/yungbote/curator-sync/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Config
  configPath := utils.GetEnv("CONFIG_PATH", "dbconf.yaml", log)
  cfg, err := config.Load(configPath, log)
  if err != nil {
    log.Error("Failed to load config", "error", err)
    os.Exit(1)
  }

  // Postgres
  postgresService, err := db.NewPostgresService(cfg.Database, log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Document stores
  log.Info("Connecting document stores from main...")
  curatorStore, err := docstore.NewRedisStore("curator", cfg.CuratorStore, log)
  if err != nil {
    log.Error("Could not connect curator store", "error", err)
    os.Exit(1)
  }
  defer curatorStore.Close()
  artistStore, err := docstore.NewRedisStore("artist", cfg.ArtistStore, log)
  if err != nil {
    log.Error("Could not connect artist store", "error", err)
    os.Exit(1)
  }
  defer artistStore.Close()

  // Repos
  log.Info("Setting up Repos from main...")
  artworkRepo := repos.NewArtworkRepo(thePG, log)
  artistRepo := repos.NewArtistRepo(thePG, log)
  labelRepo := repos.NewLabelRepo(thePG, log)
  associationRepo := repos.NewAssociationRepo(thePG, log)

  // Services
  log.Info("Setting up Services from main...")
  marker := services.NewSyncMarker(curatorStore, log)
  ingestService := services.NewIngestService(
    thePG,
    log,
    artworkRepo,
    artistRepo,
    labelRepo,
    associationRepo,
    marker,
    cfg.ThumbnailBaseURL,
  )
  unlockService := services.NewUnlockService(artistStore, cfg.OwnerNamespace, log)
  dispatcher := services.NewDispatcher(curatorStore, ingestService, unlockService, log)

  // Router
  router := server.NewRouter()
  httpServer := &http.Server{Addr: ":" + cfg.Port, Handler: router}

  ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
  defer stop()

  group, groupCtx := errgroup.WithContext(ctx)
  group.Go(func() error {
    return dispatcher.Run(groupCtx)
  })
  group.Go(func() error {
    log.Info("Ops server listening", "port", cfg.Port)
    if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
      return err
    }
    return nil
  })
  group.Go(func() error {
    <-groupCtx.Done()
    return httpServer.Shutdown(context.Background())
  })

  if err := group.Wait(); err != nil {
    log.Error("Daemon stopped", "error", err)
    os.Exit(1)
  }
  log.Info("Daemon stopped")
}
