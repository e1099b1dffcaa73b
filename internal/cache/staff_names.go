// Package cache holds redis-backed read-through caches. Every cache works
// with a nil client by going straight to its loader.
package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"gym_backoffice_backend/platform/config"
	"gym_backoffice_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const staffNameKeyFmt = "staff:name:%s:%s"

// StaffLoader loads staff display names from the source of truth.
type StaffLoader interface {
	LoadStaffNames(ctx context.Context, organizationID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// StaffNames caches staff display names per organization.
type StaffNames struct {
	client *redis.Client
	loader StaffLoader
	ttl    time.Duration
	log    *logger.Logger
}

// NewRedisClient opens a redis client for caching. It returns nil when no
// redis URL is configured.
func NewRedisClient(ctx context.Context, cfg config.CacheConfig) (*redis.Client, error) {
	if cfg.GetRedisURL() == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if cfg.GetRedisTLSInsecure() {
		if opt.TLSConfig == nil {
			opt.TLSConfig = &tls.Config{}
		}
		opt.TLSConfig.InsecureSkipVerify = true
	}

	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewStaffNames wraps loader with a redis cache. client may be nil.
func NewStaffNames(client *redis.Client, loader StaffLoader, ttl time.Duration, log *logger.Logger) *StaffNames {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if log == nil {
		log = logger.Nop()
	}
	return &StaffNames{client: client, loader: loader, ttl: ttl, log: log}
}

// LoadStaffNames returns display names for ids, serving what it can from
// redis and loading the rest. Cache errors fall through to the loader. When
// the loader fails, the names already read from redis are returned with the
// error.
func (s *StaffNames) LoadStaffNames(ctx context.Context, organizationID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}
	if s.client == nil {
		return s.loader.LoadStaffNames(ctx, organizationID, ids)
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = staffNameKey(organizationID, id)
	}

	cached, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		s.log.WithContext(ctx).LookupDegraded("staff_cache", err)
		return s.loader.LoadStaffNames(ctx, organizationID, ids)
	}

	names := make(map[uuid.UUID]string, len(ids))
	misses := make([]uuid.UUID, 0)
	for i, value := range cached {
		if name, ok := value.(string); ok {
			names[ids[i]] = name
			continue
		}
		misses = append(misses, ids[i])
	}
	if len(misses) == 0 {
		return names, nil
	}

	loaded, err := s.loader.LoadStaffNames(ctx, organizationID, misses)
	if err != nil {
		return names, err
	}

	pipe := s.client.Pipeline()
	for id, name := range loaded {
		names[id] = name
		pipe.Set(ctx, staffNameKey(organizationID, id), name, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.WithContext(ctx).LookupDegraded("staff_cache", err)
	}

	return names, nil
}

func staffNameKey(organizationID, staffID uuid.UUID) string {
	return fmt.Sprintf(staffNameKeyFmt, organizationID, staffID)
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
