package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/sports-bet-parlay/pkg/contracts/events"
	"github.com/radieske/sports-bet-parlay/pkg/contracts/keys"
)

// RedisCache guarda a odd americana corrente de cada perna no Redis
// Client: cliente Redis
// TTL: odds sem atualização expiram e deixam de ser conferidas
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisCache cria uma instância de cache Redis com TTL configurável
func NewRedisCache(c *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: c, TTL: ttl}
}

// SetCurrent grava a odd da perna como texto ("-110") na chave lida pelo parlay-service
func (r *RedisCache) SetCurrent(ctx context.Context, e events.LegPrice) error {
	k := keys.LegPrice(e.GameID, e.BetType, e.Selection)
	return r.Client.Set(ctx, k, strconv.Itoa(e.AmericanOdds), r.TTL).Err()
}
