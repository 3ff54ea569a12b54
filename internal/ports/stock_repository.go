package ports

import (
	"context"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
)

// StockRepository — персистентный кэш записей stock, ключ (dealerID, stockID).
// Требования к реализации: частичная запись трогает только переданные
// top-level поля; записи не вытесняются по размеру — только явное удаление.
type StockRepository interface {
	// Get — вернуть запись; (nil, nil), если записи нет.
	Get(ctx context.Context, dealerID, stockID string) (*domain.StockRecord, error)

	// UpsertFields — создать запись или обновить только заполненные поля patch.
	UpsertFields(ctx context.Context, dealerID, stockID string, patch *domain.StockPatch) error

	// ListByDealer — постраничный список записей дилера.
	ListByDealer(ctx context.Context, dealerID string, limit, offset int) ([]*domain.StockRecord, error)

	// Delete — удалить запись (только по явному действию дилера).
	Delete(ctx context.Context, dealerID, stockID string) error
}

// PurchaseRepository — запись о закупке; сюда синхронизируется схема НДС.
type PurchaseRepository interface {
	// SetVATScheme — выставить нормализованную схему НДС для (dealerID, stockID).
	SetVATScheme(ctx context.Context, dealerID, stockID string, scheme domain.VATScheme) error
}
