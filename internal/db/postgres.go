package db

import (
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/yungbote/curator-sync/internal/config"
  "github.com/yungbote/curator-sync/internal/logger"
  "github.com/yungbote/curator-sync/internal/types"
)

type PostgresService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostgresService(cfg config.DatabaseConfig, log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?%s",
    cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, sslParams(cfg.SSL))

  serviceLog.Info("Connecting to Postgres...", "host", cfg.Host, "database", cfg.Name)
  gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    TranslateError: true,
  })
  if err != nil {
    serviceLog.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("connect to postgres: %w", err)
  }

  return &PostgresService{db: gdb, log: serviceLog}, nil
}

func sslParams(ssl *config.SSLConfig) string {
  if !ssl.Complete() {
    return "sslmode=disable"
  }
  return fmt.Sprintf("sslmode=verify-ca&sslcert=%s&sslkey=%s&sslrootcert=%s",
    ssl.Cert, ssl.Key, ssl.CA)
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.Artwork{},
    &types.Artist{},
    &types.Label{},
    &types.Association{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
