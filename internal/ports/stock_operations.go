package ports

import (
	"context"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
)

// StockOperations — операции над записями stock, которые видит HTTP-слой
// (узкий порт, чтобы транспорт не зависел от конкретного сервиса).
type StockOperations interface {
	GetStock(ctx context.Context, userID, email, dealerID, stockID string, forceRefresh bool) (*domain.StockReadResult, error)
	ListStock(ctx context.Context, dealerID string, limit, offset int) ([]*domain.StockRecord, error)
	ApplyStockUpdate(ctx context.Context, userID, email, dealerID, stockID string, change *domain.StockChangeset) (*domain.UpdateResult, error)
	DeleteStock(ctx context.Context, dealerID, stockID string) error
	GetLimits(ctx context.Context, userID, email string) (*domain.AdvertiserInfo, error)
}
