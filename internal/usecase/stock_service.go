package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
	"github.com/Gunvolt24/dealer_backoffice/internal/merge"
	"github.com/Gunvolt24/dealer_backoffice/internal/ports"
	"github.com/Gunvolt24/dealer_backoffice/pkg/metrics"
)

// Проверка, что StockService удовлетворяет интерфейсу StockOperations.
var _ ports.StockOperations = (*StockService)(nil)

const (
	defaultFreshFor  = 15 * time.Minute
	defaultLimitsTTL = 5 * time.Minute
)

// StockService — прикладная логика работы с записями stock (без знаний о
// транспорте): чтение через кэш со свежестью, частичные обновления через
// Marketplace API с последующим согласованием, лимиты размещений.
//
// Кэш здесь — производительностный слой: его сбой деградирует до обращения
// к upstream (или предупреждения в результате), но не валит операцию.
type StockService struct {
	repo      ports.StockRepository
	purchases ports.PurchaseRepository
	identity  ports.IdentityResolver
	tokens    ports.TokenSource
	client    ports.MarketplaceClient
	validator ports.ChangesetValidator
	publisher ports.StockEventPublisher // nil — публикация событий выключена
	limits    ports.ScopedCache
	log       ports.Logger

	freshFor  time.Duration
	limitsTTL time.Duration
}

// NewStockService — DI-конструктор.
func NewStockService(
	repo ports.StockRepository,
	purchases ports.PurchaseRepository,
	identity ports.IdentityResolver,
	tokens ports.TokenSource,
	client ports.MarketplaceClient,
	validator ports.ChangesetValidator,
	publisher ports.StockEventPublisher,
	limits ports.ScopedCache,
	log ports.Logger,
	freshFor, limitsTTL time.Duration,
) *StockService {
	if freshFor <= 0 {
		freshFor = defaultFreshFor
	}
	if limitsTTL <= 0 {
		limitsTTL = defaultLimitsTTL
	}
	return &StockService{
		repo:      repo,
		purchases: purchases,
		identity:  identity,
		tokens:    tokens,
		client:    client,
		validator: validator,
		publisher: publisher,
		limits:    limits,
		log:       log,
		freshFor:  freshFor,
		limitsTTL: limitsTTL,
	}
}

// GetStock — запись stock: сначала из кэша (устаревшая отдаётся с флагом
// Stale), при промахе или forceRefresh — из Marketplace API с записью в кэш.
func (s *StockService) GetStock(
	ctx context.Context,
	userID, email, dealerID, stockID string,
	forceRefresh bool,
) (*domain.StockReadResult, error) {
	var cached *domain.StockRecord
	if rec, err := s.repo.Get(ctx, dealerID, stockID); err != nil {
		// Сбой чтения кэша — деградация до upstream, не ошибка операции.
		s.log.Warnf(ctx, "stock cache read failed dealer=%s stock=%s err=%v", dealerID, stockID, err)
	} else {
		cached = rec
	}

	if cached != nil && !forceRefresh {
		age := time.Since(cached.LastFetchedAt)
		return &domain.StockReadResult{
			Record:   cached,
			CacheAge: age,
			Stale:    age > s.freshFor,
		}, nil
	}

	rec, err := s.fetchAndStore(ctx, userID, email, dealerID, stockID)
	if err != nil {
		return nil, err
	}
	return &domain.StockReadResult{Record: rec}, nil
}

// ListStock — постраничный список записей дилера из кэша (без походов в upstream).
func (s *StockService) ListStock(ctx context.Context, dealerID string, limit, offset int) ([]*domain.StockRecord, error) {
	return s.repo.ListByDealer(ctx, dealerID, limit, offset)
}

// DeleteStock — удалить запись из кэша по явному действию дилера.
// Запись в Marketplace API при этом не трогается.
func (s *StockService) DeleteStock(ctx context.Context, dealerID, stockID string) error {
	return s.repo.Delete(ctx, dealerID, stockID)
}

// ApplyStockUpdate — частичное обновление записи stock.
// Шаги:
//  1. валидация change-set до каких-либо обращений к upstream;
//  2. разрешение effective identity и получение токена;
//  3. diff против кэшированного оригинала — наружу уходят только
//     изменившиеся под-документы; пустой diff завершает операцию без
//     обращения к Marketplace API;
//  4. PATCH в Marketplace API (без ретраев);
//  5. согласование ответа с кэшем, пересчёт производных колонок;
//  6. пост-обработка best-effort: кэш, схема НДС закупки, событие.
func (s *StockService) ApplyStockUpdate(
	ctx context.Context,
	userID, email, dealerID, stockID string,
	change *domain.StockChangeset,
) (*domain.UpdateResult, error) {
	if err := s.validator.Validate(ctx, change); err != nil {
		metrics.StockUpdates.WithLabelValues("invalid").Inc()
		return nil, err
	}

	ident, err := s.identity.Resolve(ctx, userID, email)
	if err != nil {
		metrics.StockUpdates.WithLabelValues("error").Inc()
		return nil, err
	}

	var original *domain.StockRecord
	if rec, getErr := s.repo.Get(ctx, dealerID, stockID); getErr != nil {
		// Без оригинала diff отправит change-set целиком — операция продолжается.
		s.log.Warnf(ctx, "stock cache read failed dealer=%s stock=%s err=%v", dealerID, stockID, getErr)
	} else {
		original = rec
	}

	// Пустой diff завершает операцию до получения токена: no-op не должен
	// провоцировать даже аутентификацию в upstream.
	payload := merge.DiffChangeset(original, change)
	if payload.IsEmpty() {
		metrics.StockUpdates.WithLabelValues("no_changes").Inc()
		s.log.Infof(ctx, "stock update skipped, no effective changes dealer=%s stock=%s", dealerID, stockID)
		return &domain.UpdateResult{Record: original, NoChanges: true}, nil
	}

	tok, err := s.tokens.GetToken(ctx, ident.EffectiveEmail)
	if err != nil {
		metrics.StockUpdates.WithLabelValues("error").Inc()
		return nil, err
	}

	response, err := s.client.PatchStock(ctx, tok.AccessToken, tok.Store.AdvertiserID, stockID, payload)
	if err != nil {
		metrics.StockUpdates.WithLabelValues("error").Inc()
		return nil, err
	}

	rec := merge.Reconcile(original, payload, response)
	rec.DealerID = dealerID
	rec.StockID = stockID

	warnings := s.postProcess(ctx, original, payload, rec)

	metrics.StockUpdates.WithLabelValues("ok").Inc()
	s.log.Infof(ctx, "stock updated dealer=%s stock=%s delegated=%t warnings=%d",
		dealerID, stockID, ident.IsDelegated, len(warnings))

	return &domain.UpdateResult{Record: rec, Sent: payload, Warnings: warnings}, nil
}

// GetLimits — лимиты размещений рекламодателя с коротким TTL-кэшем
// на effective email.
func (s *StockService) GetLimits(ctx context.Context, userID, email string) (*domain.AdvertiserInfo, error) {
	ident, err := s.identity.Resolve(ctx, userID, email)
	if err != nil {
		return nil, err
	}

	if v, ok := s.limits.Get(ctx, ident.EffectiveEmail); ok {
		if info, castOK := v.(*domain.AdvertiserInfo); castOK {
			return info, nil
		}
	}

	tok, err := s.tokens.GetToken(ctx, ident.EffectiveEmail)
	if err != nil {
		return nil, err
	}
	info, err := s.client.FetchAdvertiser(ctx, tok.AccessToken)
	if err != nil {
		return nil, err
	}

	s.limits.Set(ctx, ident.EffectiveEmail, info, s.limitsTTL)
	return info, nil
}

// fetchAndStore — полная загрузка записи из Marketplace API с пересчётом
// производных колонок и best-effort записью в кэш.
func (s *StockService) fetchAndStore(ctx context.Context, userID, email, dealerID, stockID string) (*domain.StockRecord, error) {
	ident, err := s.identity.Resolve(ctx, userID, email)
	if err != nil {
		return nil, err
	}
	tok, err := s.tokens.GetToken(ctx, ident.EffectiveEmail)
	if err != nil {
		return nil, err
	}

	rec, err := s.client.FetchStock(ctx, tok.AccessToken, tok.Store.AdvertiserID, stockID)
	if err != nil {
		return nil, err
	}
	rec.DealerID = dealerID
	rec.LastFetchedAt = time.Now().UTC()
	merge.DeriveFetched(rec)

	if upsertErr := s.repo.UpsertFields(ctx, dealerID, stockID, patchFromRecord(rec)); upsertErr != nil {
		s.log.Warnf(ctx, "stock cache write failed dealer=%s stock=%s err=%v", dealerID, stockID, upsertErr)
	}
	return rec, nil
}

// postProcess — пост-обработка успешной записи в Marketplace API.
// Каждый шаг best-effort: сбой попадает в предупреждения результата,
// но сама операция уже состоялась и считается успешной.
func (s *StockService) postProcess(
	ctx context.Context,
	original *domain.StockRecord,
	payload *domain.StockChangeset,
	rec *domain.StockRecord,
) []string {
	var warnings []string

	if err := s.repo.UpsertFields(ctx, rec.DealerID, rec.StockID, patchFromRecord(rec)); err != nil {
		s.log.Warnf(ctx, "stock cache write failed dealer=%s stock=%s err=%v", rec.DealerID, rec.StockID, err)
		warnings = append(warnings, fmt.Sprintf("stock cache update failed: %v", err))
	}

	// Схема НДС закупки синхронизируется, когда обновление трогало рекламный
	// под-документ и нормализованная схема изменилась (или записи не было).
	if payload.Adverts != nil {
		newScheme := domain.VATSchemeFromStatus(merge.VATStatusOf(rec.Adverts))
		oldScheme := domain.VATSchemeIncludes
		known := original != nil
		if known {
			oldScheme = domain.VATSchemeFromStatus(merge.VATStatusOf(original.Adverts))
		}
		if !known || newScheme != oldScheme {
			if err := s.purchases.SetVATScheme(ctx, rec.DealerID, rec.StockID, newScheme); err != nil {
				s.log.Warnf(ctx, "purchase vat scheme sync failed dealer=%s stock=%s err=%v", rec.DealerID, rec.StockID, err)
				warnings = append(warnings, fmt.Sprintf("purchase VAT scheme sync failed: %v", err))
			}
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishStockUpdated(ctx, rec); err != nil {
			s.log.Warnf(ctx, "stock event publish failed dealer=%s stock=%s err=%v", rec.DealerID, rec.StockID, err)
			warnings = append(warnings, fmt.Sprintf("stock event publish failed: %v", err))
		}
	}

	return warnings
}

// patchFromRecord — полный patch из уже согласованной записи.
func patchFromRecord(rec *domain.StockRecord) *domain.StockPatch {
	fetchedAt := rec.LastFetchedAt
	return &domain.StockPatch{
		Vehicle:  rec.Vehicle,
		Adverts:  rec.Adverts,
		Metadata: rec.Metadata,

		ForecourtPriceGBP: rec.ForecourtPriceGBP,
		TotalPriceGBP:     rec.TotalPriceGBP,
		LifecycleState:    &rec.LifecycleState,
		Registration:      &rec.Registration,
		Make:              &rec.Make,
		Model:             &rec.Model,

		LastFetchedAt: &fetchedAt,
	}
}
