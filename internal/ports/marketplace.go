package ports

import (
	"context"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
)

// MarketplaceClient — тонкий транспорт к Marketplace API.
// Реализация не ретраит и не кэширует: только bearer-авторизация,
// сериализация тела и перевод не-2xx ответов в доменную таксономию ошибок.
type MarketplaceClient interface {
	// Authenticate — POST /authenticate; возвращает токен и срок его жизни.
	Authenticate(ctx context.Context, key, secret string) (*domain.AuthToken, error)

	// FetchAdvertiser — GET /advertisers?autotraderAdvertAllowances=true.
	FetchAdvertiser(ctx context.Context, accessToken string) (*domain.AdvertiserInfo, error)

	// FetchStock — GET /stock/{stockID}?advertiserId=; (nil, NotFound) для неизвестного id.
	FetchStock(ctx context.Context, accessToken, advertiserID, stockID string) (*domain.StockRecord, error)

	// PatchStock — PATCH /stock/{stockID}?advertiserId=; возвращает тело ответа
	// (под-документы, которые upstream подтвердил/пересчитал).
	PatchStock(ctx context.Context, accessToken, advertiserID, stockID string, payload *domain.StockChangeset) (*domain.StockChangeset, error)
}
