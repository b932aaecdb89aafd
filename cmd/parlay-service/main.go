package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/sports-bet-parlay/internal/parlay"
	phttp "github.com/radieske/sports-bet-parlay/internal/parlay-service/http"
	"github.com/radieske/sports-bet-parlay/internal/parlay-service/odds"
	kpub "github.com/radieske/sports-bet-parlay/internal/parlay-service/producer"
	"github.com/radieske/sports-bet-parlay/internal/parlay-service/repo"
	"github.com/radieske/sports-bet-parlay/internal/parlay-service/session"
	"github.com/radieske/sports-bet-parlay/internal/parlay-service/tier"
	"github.com/radieske/sports-bet-parlay/internal/parlay-service/wallet"
	"github.com/radieske/sports-bet-parlay/internal/shared/cache"
	"github.com/radieske/sports-bet-parlay/internal/shared/config"
	"github.com/radieske/sports-bet-parlay/internal/shared/db"
	"github.com/radieske/sports-bet-parlay/internal/shared/kafka"
	"github.com/radieske/sports-bet-parlay/internal/shared/logger"
	"github.com/radieske/sports-bet-parlay/internal/shared/metrics"
)

const (
	slipIdle      = 30 * time.Minute
	sweepInterval = time.Minute
)

func main() {
	cfg := config.Load()
	if cfg.ServiceName == "" {
		cfg.ServiceName = "parlay-service"
	}
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Postgres
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg", zap.Error(err))
	}
	defer pg.Close()

	// Redis (odds ao vivo gravadas pelo odds-feed-worker)
	rdb, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()

	// Kafka writer (topic parlay_placed)
	writer := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicParlayPlaced)
	defer writer.Close()

	// Métricas
	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "parlay_leg_decisions_total", Help: "pernas aceitas ou substituídas"}, []string{"decision"})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "parlay_rejections_total", Help: "rejeições por código"}, []string{"code"})
	submitted := prometheus.NewHistogram(prometheus.HistogramOpts{Name: "parlay_submitted_legs", Help: "pernas por múltipla submetida", Buckets: prometheus.LinearBuckets(2, 1, 9)})
	submitFailed := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "parlay_submit_failures_total", Help: "falhas de submissão por estágio"}, []string{"stage"})
	openSlips := prometheus.NewGauge(prometheus.GaugeOpts{Name: "parlay_open_slips", Help: "slips abertos em memória"})
	prometheus.MustRegister(decisions, rejections, submitted, submitFailed, openSlips)

	// deps
	store := session.New(cfg.Stake)
	repository := repo.NewPostgres(pg)
	ov := odds.NewValidator(rdb)
	wcli := wallet.New(cfg.WalletURL) // wallet-service
	publ := kpub.NewKafkaPublisher(writer, cfg.TopicParlayPlaced)
	tiers := tier.NewStatic(cfg.PremiumUsers) // até existir autenticação

	hooks := phttp.Hooks{
		OnDecision:     func(d string) { decisions.WithLabelValues(d).Inc() },
		OnRejected:     func(code string) { rejections.WithLabelValues(code).Inc() },
		OnSubmitted:    func(legs int) { submitted.Observe(float64(legs)) },
		OnSubmitFailed: func(stage string) { submitFailed.WithLabelValues(stage).Inc() },
	}

	// HTTP público
	api := phttp.NewServer(log, store, repository, ov, wcli, publ, tiers, hooks)
	apiSrv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// metrics/health
	metricsSrv := metrics.StartMetricsServer(cfg.MetricsPort, metrics.Checks{
		"postgres": pg.PingContext,
		"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	})
	log.Info("metrics/health", zap.String("addr", metricsSrv.Addr))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Limpeza periódica de slips abandonados
	go func() {
		t := time.NewTicker(sweepInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if n := store.Sweep(slipIdle); n > 0 {
					log.Info("idle slips swept", zap.Int("removed", n))
				}
				openSlips.Set(float64(store.Len()))
			}
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		_ = apiSrv.Shutdown(shutdownCtx)
		_ = metricsSrv.Shutdown(shutdownCtx)
	}()

	log.Info("parlay-service listening",
		zap.String("addr", apiSrv.Addr),
		zap.Int("max_legs", parlay.MaxLegs),
		zap.String("stake_min", cfg.Stake.Min.StringFixed(2)),
		zap.String("stake_max", cfg.Stake.Max.StringFixed(2)),
	)
	if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("api", zap.Error(err))
	}
	log.Info("parlay-service stopped")
}
