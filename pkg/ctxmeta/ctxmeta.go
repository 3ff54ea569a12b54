// Пакет ctxmeta — нейтральный слой для работы с метаданными запроса,
// которые прокидываются через context.Context (request_id, dealer_id, trace_id).
// Идея: HTTP-слой и логгер зависят от небольшого общего пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемый тип — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyDealerID  ctxKey = "dealer_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return fromContext(ctx, KeyRequestID)
}

// WithDealerID кладёт dealer_id в контекст (если пусто — ничего не делает).
func WithDealerID(ctx context.Context, dealerID string) context.Context {
	if ctx == nil || dealerID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyDealerID, dealerID)
}

// DealerIDFromContext достаёт dealer_id из контекста.
func DealerIDFromContext(ctx context.Context) (string, bool) {
	return fromContext(ctx, KeyDealerID)
}

func fromContext(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
