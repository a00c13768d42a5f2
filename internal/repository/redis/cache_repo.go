package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/coralbay-tech/go-backend/internal/cfg"
	"github.com/coralbay-tech/go-backend/internal/repository/redis/converter"
	"github.com/coralbay-tech/go-backend/internal/usecase"
	"github.com/coralbay-tech/go-backend/pkg/clients"
	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/coralbay-tech/go-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:snapshot"

// CacheRepo кэширует срез каталога в Redis целиком: домашний экран всегда
// читает полный список, поэтому ключ один.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.CatalogSnapshotConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.CatalogSnapshotConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetCatalog возвращает закэшированный срез каталога.
// Промах кэша — (nil, nil), не ошибка.
func (c *CacheRepo) GetCatalog(ctx context.Context) (*usecase.CatalogSnapshot, error) {
	data, err := c.client.Client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil // cache miss
		}

		c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.CatalogSnapshotRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed, dropping stale key: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(context.Background(), catalogKey).Err(); err != nil {
			c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}

		return nil, nil // cache miss
	}

	return c.conv.ToUseCase(&model), nil
}

// SetCatalog кэширует срез каталога с заданным TTL.
// Ошибки сериализации/записи логируются и не считаются фатальными.
func (c *CacheRepo) SetCatalog(ctx context.Context, snapshot *usecase.CatalogSnapshot) error {
	data, err := json.Marshal(c.conv.ToRedisModel(snapshot))
	if err != nil {
		c.logger.Warnf("Failed to marshal catalog snapshot for caching: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := c.client.Client.Set(ctx, catalogKey, data, c.cfg.CatalogTTL).Err(); err != nil {
		c.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// DropCatalog сбрасывает закэшированный срез каталога.
func (c *CacheRepo) DropCatalog(ctx context.Context) error {
	if err := c.client.Client.Del(ctx, catalogKey).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}
