package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/curator-sync/internal/config"
	"github.com/yungbote/curator-sync/internal/logger"
)

// redisStore keeps records as JSON values keyed by their path
// ("approved/<uid>") and delivers child-added notifications over the pub/sub
// channel named after the subscription path.
type redisStore struct {
	log  *logger.Logger
	rdb  *goredis.Client
	name string
}

const casAttempts = 16

func NewRedisStore(name string, cfg config.StoreConfig, log *logger.Logger) (Store, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if cfg.Addr == "" {
		return nil, fmt.Errorf("store %s: missing address", name)
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("store %s ping: %w", name, err)
	}

	return &redisStore{
		log:  log.With("store", name),
		rdb:  rdb,
		name: name,
	}, nil
}

func (s *redisStore) Subscribe(ctx context.Context, path string, h Handler) error {
	if h == nil {
		return fmt.Errorf("handler required")
	}

	sub := s.rdb.Subscribe(ctx, path)

	// ensures subscription actually started
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("subscribe %s: %w", path, err)
	}

	go func() {
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close()
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					_ = sub.Close()
					return
				}
				var evt Event
				if err := json.Unmarshal([]byte(m.Payload), &evt); err != nil {
					s.log.Warn("Bad notification payload", "path", path, "error", err)
					continue
				}
				h(ctx, evt)
			}
		}
	}()

	return nil
}

func (s *redisStore) Get(ctx context.Context, path string) ([]byte, error) {
	raw, err := s.rdb.Get(ctx, path).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	return raw, nil
}

func (s *redisStore) Update(ctx context.Context, path string, mutate func(current []byte) ([]byte, error)) error {
	for attempt := 0; attempt < casAttempts; attempt++ {
		err := s.rdb.Watch(ctx, func(tx *goredis.Tx) error {
			current, err := tx.Get(ctx, path).Bytes()
			if errors.Is(err, goredis.Nil) {
				current = nil
			} else if err != nil {
				return err
			}
			next, err := mutate(current)
			if err != nil {
				return err
			}
			if next == nil {
				return nil
			}
			_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
				pipe.Set(ctx, path, next, 0)
				return nil
			})
			return err
		}, path)
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("update %s: gave up after %d conflicting writers", path, casAttempts)
}

func (s *redisStore) Close() error {
	return s.rdb.Close()
}
