package kudos

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/glkeru/employeehub/internal/config"
	model "github.com/glkeru/employeehub/internal/models"
	redis "github.com/redis/go-redis/v9"
)

const (
	accountKeyPrefix = "kudos:account:"
	leaderboardKey   = "kudos:leaderboard"
)

var ErrCacheMiss = fmt.Errorf("cache %w", model.ErrNotFound)

type CacheService struct {
	client         *redis.Client
	accountTTL     time.Duration
	leaderboardTTL time.Duration
}

func NewCacheService(ctx context.Context, cfg config.CacheConfig) (serv *CacheService, err error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("env KUDOS_CACHE_URL is not set")
	}
	// redis
	db := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		Username:    cfg.User,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}
	return NewCacheServiceWithClient(db, cfg.AccountTTL, cfg.LeaderboardTTL), nil
}

func NewCacheServiceWithClient(client *redis.Client, accountTTL, leaderboardTTL time.Duration) *CacheService {
	if accountTTL <= 0 {
		accountTTL = 30 * time.Second
	}
	if leaderboardTTL <= 0 {
		leaderboardTTL = 30 * time.Second
	}
	return &CacheService{client, accountTTL, leaderboardTTL}
}

func (c *CacheService) Close() error {
	return c.client.Close()
}

func (c *CacheService) GetAccount(ctx context.Context, id int64) (account model.Account, err error) {
	err = c.get(ctx, accountKey(id), &account)
	return account, err
}

func (c *CacheService) SetAccount(ctx context.Context, account model.Account) error {
	return c.set(ctx, accountKey(account.ID), account, c.accountTTL)
}

func (c *CacheService) InvalidateAccount(ctx context.Context, id int64) error {
	return c.client.Del(ctx, accountKey(id)).Err()
}

func (c *CacheService) GetLeaderboard(ctx context.Context) (accounts []model.Account, err error) {
	err = c.get(ctx, leaderboardKey, &accounts)
	return accounts, err
}

func (c *CacheService) SetLeaderboard(ctx context.Context, accounts []model.Account) error {
	return c.set(ctx, leaderboardKey, accounts, c.leaderboardTTL)
}

func (c *CacheService) InvalidateLeaderboard(ctx context.Context) error {
	return c.client.Del(ctx, leaderboardKey).Err()
}

func (c *CacheService) get(ctx context.Context, key string, v any) error {
	val, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	} else if err != nil {
		return err
	}
	return json.Unmarshal(val, v)
}

func (c *CacheService) set(ctx context.Context, key string, v any, ttl time.Duration) error {
	val, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, val, ttl).Err()
}

func accountKey(id int64) string {
	return accountKeyPrefix + strconv.FormatInt(id, 10)
}
