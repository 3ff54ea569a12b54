package ports

import (
	"context"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
)

// StockEventPublisher — best-effort публикация событий об обновлении stock
// для смежных систем. Ошибка публикации не влияет на результат операции.
type StockEventPublisher interface {
	PublishStockUpdated(ctx context.Context, record *domain.StockRecord) error
	Close() error
}
