package ports

import (
	"context"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
)

// TokenSource — выдаёт действующий bearer-токен для effective email.
// Реализация обязана дедуплицировать параллельные обновления одного ключа
// (single-flight) и возвращать копии записей.
type TokenSource interface {
	GetToken(ctx context.Context, effectiveEmail string) (*domain.CachedToken, error)
}
