package ports

import (
	"context"
	"time"
)

// ScopedCache — эфемерный процесс-локальный кэш (лимиты, временные блобы).
// Чисто производительностный: корректность других компонентов от него
// не зависит.
type ScopedCache interface {
	// Get — значение по ключу; (nil, false) при промахе или истечении TTL.
	Get(ctx context.Context, key string) (any, bool)

	// Set — сохранить значение с абсолютным сроком жизни.
	Set(ctx context.Context, key string, value any, ttl time.Duration)

	// Delete — удалить значение по ключу.
	Delete(ctx context.Context, key string)

	// Len — текущее число записей (для метрик и тестов).
	Len() int
}
