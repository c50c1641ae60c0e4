package config

import (
  "fmt"
  "os"

  "gopkg.in/yaml.v3"

  "github.com/yungbote/curator-sync/internal/logger"
  "github.com/yungbote/curator-sync/internal/utils"
)

// SSLConfig holds paths to the client TLS material for the managed Postgres
// instance. All three must be set for TLS to be used.
type SSLConfig struct {
  Cert string `yaml:"cert"`
  Key  string `yaml:"key"`
  CA   string `yaml:"ca"`
}

func (s *SSLConfig) Complete() bool {
  return s != nil && s.Cert != "" && s.Key != "" && s.CA != ""
}

type DatabaseConfig struct {
  Host     string     `yaml:"host"`
  Port     string     `yaml:"port"`
  User     string     `yaml:"user"`
  Password string     `yaml:"password"`
  Name     string     `yaml:"name"`
  SSL      *SSLConfig `yaml:"ssl"`
}

// StoreConfig is one document-store credential set. The curator side and the
// artist side are separate stores with independent credentials.
type StoreConfig struct {
  Addr     string `yaml:"addr"`
  Password string `yaml:"password"`
  DB       int    `yaml:"db"`
}

type Config struct {
  Database     DatabaseConfig `yaml:"database"`
  CuratorStore StoreConfig    `yaml:"curator_store"`
  ArtistStore  StoreConfig    `yaml:"artist_store"`

  // OwnerNamespace is the artist-store partition that owns the editable
  // sibling records, e.g. "public/onboarders".
  OwnerNamespace string `yaml:"owner_namespace"`

  // ThumbnailBaseURL is the fixed storage prefix thumbnail URLs are derived
  // from; the URL is a pure function of artist and artwork uid.
  ThumbnailBaseURL string `yaml:"thumbnail_base_url"`

  Port string `yaml:"port"`
}

const (
  defaultOwnerNamespace   = "public/onboarders"
  defaultThumbnailBaseURL = "https://storage.googleapis.com/art-uploads/portal"
)

// Load reads the YAML config at path, then lets environment variables
// override the connection fields so deployments can keep secrets out of the
// file. A missing file is tolerated when the environment carries everything.
func Load(path string, log *logger.Logger) (*Config, error) {
  cfg := &Config{}

  raw, err := os.ReadFile(path)
  if err != nil {
    if !os.IsNotExist(err) {
      return nil, fmt.Errorf("read config %s: %w", path, err)
    }
    log.Warn("Config file not found, relying on environment", "path", path)
  } else {
    if err := yaml.Unmarshal(raw, cfg); err != nil {
      return nil, fmt.Errorf("parse config %s: %w", path, err)
    }
  }

  cfg.applyEnv(log)
  cfg.applyDefaults()

  if cfg.CuratorStore.Addr == "" {
    return nil, fmt.Errorf("curator store address is required")
  }
  if cfg.ArtistStore.Addr == "" {
    return nil, fmt.Errorf("artist store address is required")
  }
  return cfg, nil
}

func (c *Config) applyEnv(log *logger.Logger) {
  c.Database.Host = utils.GetEnv("POSTGRES_HOST", c.Database.Host, log)
  c.Database.Port = utils.GetEnv("POSTGRES_PORT", c.Database.Port, log)
  c.Database.User = utils.GetEnv("POSTGRES_USER", c.Database.User, log)
  c.Database.Password = utils.GetEnv("POSTGRES_PASSWORD", c.Database.Password, log)
  c.Database.Name = utils.GetEnv("POSTGRES_NAME", c.Database.Name, log)

  c.CuratorStore.Addr = utils.GetEnv("CURATOR_STORE_ADDR", c.CuratorStore.Addr, log)
  c.CuratorStore.Password = utils.GetEnv("CURATOR_STORE_PASSWORD", c.CuratorStore.Password, log)
  c.ArtistStore.Addr = utils.GetEnv("ARTIST_STORE_ADDR", c.ArtistStore.Addr, log)
  c.ArtistStore.Password = utils.GetEnv("ARTIST_STORE_PASSWORD", c.ArtistStore.Password, log)

  c.Port = utils.GetEnv("PORT", c.Port, log)
}

func (c *Config) applyDefaults() {
  if c.Database.Host == "" {
    c.Database.Host = "localhost"
  }
  if c.Database.Port == "" {
    c.Database.Port = "5432"
  }
  if c.Database.User == "" {
    c.Database.User = "postgres"
  }
  if c.Database.Name == "" {
    c.Database.Name = "artworkdb"
  }
  if c.OwnerNamespace == "" {
    c.OwnerNamespace = defaultOwnerNamespace
  }
  if c.ThumbnailBaseURL == "" {
    c.ThumbnailBaseURL = defaultThumbnailBaseURL
  }
  if c.Port == "" {
    c.Port = "8080"
  }
}
