package ports

import (
	"context"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
)

// IdentityResolver — определяет effective identity для запроса.
// Разрешение выполняется перед каждым обращением к Marketplace API;
// глобальной «текущей идентичности» нет.
type IdentityResolver interface {
	Resolve(ctx context.Context, userID, email string) (*domain.EffectiveIdentity, error)
}
