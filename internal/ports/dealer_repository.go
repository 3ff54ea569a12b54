package ports

import (
	"context"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
)

// DealerConfigRepository — чтение конфигураций дилеров и связей команды.
// Методы возвращают (nil, nil), если записи нет (по аналогии с остальными
// репозиториями): отсутствие конфигурации — не ошибка слоя хранения.
type DealerConfigRepository interface {
	// ConfigByUserID — конфигурация дилера по id пользователя-владельца.
	ConfigByUserID(ctx context.Context, userID string) (*domain.DealerConfig, error)

	// ConfigByEmail — конфигурация дилера по email аккаунта Marketplace.
	ConfigByEmail(ctx context.Context, email string) (*domain.DealerConfig, error)

	// TeamMemberByUserID — связь «член команды → владелец», если она есть.
	TeamMemberByUserID(ctx context.Context, userID string) (*domain.TeamMember, error)
}
