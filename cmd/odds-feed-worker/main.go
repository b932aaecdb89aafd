package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/sports-bet-parlay/internal/odds-feed/cache"
	"github.com/radieske/sports-bet-parlay/internal/odds-feed/consumer"
	sharedcache "github.com/radieske/sports-bet-parlay/internal/shared/cache"
	"github.com/radieske/sports-bet-parlay/internal/shared/config"
	"github.com/radieske/sports-bet-parlay/internal/shared/kafka"
	"github.com/radieske/sports-bet-parlay/internal/shared/logger"
	"github.com/radieske/sports-bet-parlay/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	if cfg.ServiceName == "" {
		cfg.ServiceName = "odds-feed-worker"
	}
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer redisClient.Close()

	// Odds por perna expiram após PriceTTL sem atualização do feed
	rcache := cache.NewRedisCache(redisClient, cfg.PriceTTL)

	// Consumer Kafka (consumer group odds-feed)
	reader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicLegPrices, "odds-feed")
	defer reader.Close()

	// Métricas Prometheus para monitoramento do processamento
	consumed := prometheus.NewCounter(prometheus.CounterOpts{Name: "odds_feed_messages_consumed_total", Help: "mensagens consumidas"})
	cached := prometheus.NewCounter(prometheus.CounterOpts{Name: "odds_feed_cache_sets_total", Help: "sets no cache"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "odds_feed_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(consumed, cached, errorsBy)

	proc := &consumer.Processor{
		Log:        log,
		Reader:     reader,
		Cache:      rcache,
		OnConsumed: func() { consumed.Inc() },
		OnCached:   func() { cached.Inc() },
		OnError:    func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
	}

	metricsSrv := metrics.StartMetricsServer(cfg.MetricsPort, metrics.Checks{
		"redis": func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
	})
	defer metricsSrv.Close()
	log.Info("metrics/health listening", zap.String("addr", metricsSrv.Addr))

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("odds-feed started", zap.String("topic", cfg.TopicLegPrices), zap.Duration("price_ttl", cfg.PriceTTL))
	if err := proc.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("processor stopped with error", zap.Error(err))
	}
	log.Info("odds-feed stopped")
}
