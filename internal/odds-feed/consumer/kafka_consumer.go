package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/sports-bet-parlay/internal/parlay"
	"github.com/radieske/sports-bet-parlay/pkg/contracts/events"
)

// MessageReader é o subconjunto de *kafka.Reader usado aqui
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// PriceWriter grava a odd corrente da perna
type PriceWriter interface {
	SetCurrent(ctx context.Context, e events.LegPrice) error
}

// Processor consome odds por perna do Kafka e atualiza o cache lido pelo parlay-service
// Callbacks de métricas podem ser usadas para monitoramento de cada etapa
type Processor struct {
	Log    *zap.Logger
	Reader MessageReader
	Cache  PriceWriter

	OnConsumed func()       // métricas (counter++)
	OnCached   func()       // métricas
	OnError    func(string) // métricas por fase
}

// Run inicia o loop principal de consumo; retorna quando o contexto é cancelado
func (p *Processor) Run(ctx context.Context) error {
	for {
		m, err := p.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // encerra se o contexto for cancelado
			}
			p.Log.Warn("kafka read failed", zap.Error(err))
			p.fail("read")
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if p.OnConsumed != nil {
			p.OnConsumed()
		}
		p.handle(ctx, m.Value)
	}
}

func (p *Processor) handle(ctx context.Context, value []byte) {
	var ev events.LegPrice
	if err := json.Unmarshal(value, &ev); err != nil {
		p.Log.Warn("invalid message", zap.Error(err))
		p.fail("decode")
		return
	}
	if err := validate(ev); err != nil {
		p.Log.Warn("invalid leg price", zap.String("gameId", ev.GameID), zap.Error(err))
		p.fail("validate")
		return
	}

	if err := p.Cache.SetCurrent(ctx, ev); err != nil {
		p.Log.Warn("redis set failed", zap.Error(err))
		p.fail("cache")
		return
	}
	if p.OnCached != nil {
		p.OnCached()
	}
}

// validate descarta odds fora de 100..100000 e mercados fora do conjunto do parlay
func validate(ev events.LegPrice) error {
	if strings.TrimSpace(ev.GameID) == "" || strings.TrimSpace(ev.Selection) == "" {
		return fmt.Errorf("missing game or selection")
	}
	if !parlay.BetType(strings.ToLower(ev.BetType)).Valid() {
		return fmt.Errorf("unsupported bet type %q", ev.BetType)
	}
	if _, err := parlay.AmericanToDecimal(ev.AmericanOdds); err != nil {
		return err
	}
	return nil
}

func (p *Processor) fail(stage string) {
	if p.OnError != nil {
		p.OnError(stage)
	}
}
