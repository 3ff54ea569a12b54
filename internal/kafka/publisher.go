package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
	"github.com/Gunvolt24/dealer_backoffice/internal/ports"
	"github.com/Gunvolt24/dealer_backoffice/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Publisher удовлетворяет интерфейсу StockEventPublisher.
var _ ports.StockEventPublisher = (*Publisher)(nil)

// writer — минимальный контракт над kafka.Writer,
// чтобы легко подменять его моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PublisherConfig — настройки публикации событий.
type PublisherConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Publisher — best-effort публикация событий об обновлении stock.
// Ошибка публикации логируется и возвращается вызывающему как предупреждение,
// но не влияет на результат операции: ретраев и очереди повторов нет.
type Publisher struct {
	writer       writer
	log          ports.Logger
	topic        string
	writeTimeout time.Duration
	closeOnce    sync.Once
}

// NewPublisher — конструктор поверх kafka.Writer с ключом по записи:
// события одной записи stock попадают в одну партицию и сохраняют порядок.
func NewPublisher(cfg *PublisherConfig, log ports.Logger) *Publisher {
	wt := cfg.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}

	return &Publisher{writer: w, log: log, topic: cfg.Topic, writeTimeout: wt}
}

// stockUpdatedEvent — компактное событие для смежных систем: ключ записи
// и производные поля, без полных под-документов.
type stockUpdatedEvent struct {
	DealerID          string    `json:"dealerId"`
	StockID           string    `json:"stockId"`
	LifecycleState    string    `json:"lifecycleState,omitempty"`
	ForecourtPriceGBP *float64  `json:"forecourtPriceGBP,omitempty"`
	TotalPriceGBP     *float64  `json:"totalPriceGBP,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// PublishStockUpdated — сериализует и отправляет событие с собственным
// таймаутом, не зависящим от дедлайна входящего запроса.
func (p *Publisher) PublishStockUpdated(ctx context.Context, record *domain.StockRecord) error {
	if record == nil {
		return nil
	}

	event := stockUpdatedEvent{
		DealerID:          record.DealerID,
		StockID:           record.StockID,
		LifecycleState:    record.LifecycleState,
		ForecourtPriceGBP: record.ForecourtPriceGBP,
		TotalPriceGBP:     record.TotalPriceGBP,
		UpdatedAt:         record.LastFetchedAt,
	}
	raw, err := json.Marshal(event)
	if err != nil {
		metrics.EventsPublished.WithLabelValues("error").Inc()
		return fmt.Errorf("marshal stock event: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(record.DealerID + ":" + record.StockID),
		Value: raw,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
		metrics.EventsPublished.WithLabelValues("error").Inc()
		return fmt.Errorf("write stock event: %w", err)
	}

	metrics.EventsPublished.WithLabelValues("ok").Inc()
	p.log.Debugf(ctx, "stock event published topic=%s dealer=%s stock=%s", p.topic, record.DealerID, record.StockID)
	return nil
}

// Close — закрыть writer; повторные вызовы безопасны.
func (p *Publisher) Close() error {
	var err error
	p.closeOnce.Do(func() { err = p.writer.Close() })
	return err
}
