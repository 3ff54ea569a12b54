package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
	"github.com/Gunvolt24/dealer_backoffice/internal/ports"
	"github.com/Gunvolt24/dealer_backoffice/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

var _ ports.TokenSource = (*TokenCache)(nil)

const defaultRefreshMargin = 60 * time.Second

// TokenCache — кэш bearer-токенов Marketplace API, ключ — effective email.
// Токен обновляется при отсутствии или истечении в пределах margin; записи
// заменяются целиком. Параллельные обновления одного ключа дедуплицируются
// через singleflight, чтобы не превышать лимиты аутентификации upstream.
type TokenCache struct {
	dealers ports.DealerConfigRepository
	client  ports.MarketplaceClient
	log     ports.Logger
	margin  time.Duration

	mu     sync.RWMutex
	tokens map[string]*domain.CachedToken

	group singleflight.Group
}

// NewTokenCache — DI-конструктор.
func NewTokenCache(
	dealers ports.DealerConfigRepository,
	client ports.MarketplaceClient,
	log ports.Logger,
	margin time.Duration,
) *TokenCache {
	if margin <= 0 {
		margin = defaultRefreshMargin
	}
	return &TokenCache{
		dealers: dealers,
		client:  client,
		log:     log,
		margin:  margin,
		tokens:  make(map[string]*domain.CachedToken),
	}
}

// GetToken — действующий токен для effective email; обновление при
// необходимости выполняется не чаще одного полёта на ключ.
func (c *TokenCache) GetToken(ctx context.Context, effectiveEmail string) (*domain.CachedToken, error) {
	if tok := c.cached(effectiveEmail); tok != nil {
		metrics.CacheOps.WithLabelValues("tokens", "hit").Inc()
		return domain.CloneToken(tok), nil
	}
	metrics.CacheOps.WithLabelValues("tokens", "miss").Inc()

	v, err, _ := c.group.Do(effectiveEmail, func() (any, error) {
		// Повторная проверка: токен мог обновить завершившийся полёт.
		if tok := c.cached(effectiveEmail); tok != nil {
			return tok, nil
		}
		return c.refresh(ctx, effectiveEmail)
	})
	if err != nil {
		return nil, err
	}
	return domain.CloneToken(v.(*domain.CachedToken)), nil
}

// Invalidate — сбросить токен (например, после 401 на рабочем запросе).
func (c *TokenCache) Invalidate(effectiveEmail string) {
	c.mu.Lock()
	delete(c.tokens, effectiveEmail)
	c.mu.Unlock()
}

// cached — токен из кэша, если он ещё не входит в окно обновления.
func (c *TokenCache) cached(effectiveEmail string) *domain.CachedToken {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tok := c.tokens[effectiveEmail]
	if tok == nil || tok.ExpiresWithin(time.Now(), c.margin) {
		return nil
	}
	return tok
}

// refresh — аутентификация по ключам дилера и загрузка StoreInfo.
func (c *TokenCache) refresh(ctx context.Context, effectiveEmail string) (*domain.CachedToken, error) {
	cfg, err := c.dealers.ConfigByEmail(ctx, effectiveEmail)
	if err != nil {
		metrics.TokenRefreshes.WithLabelValues("error").Inc()
		return nil, err
	}
	if !cfg.HasAPIKeys() {
		metrics.TokenRefreshes.WithLabelValues("error").Inc()
		return nil, domain.ErrAuthenticationFailed(effectiveEmail)
	}

	auth, err := c.client.Authenticate(ctx, cfg.APIKey, cfg.APISecret)
	if err != nil {
		metrics.TokenRefreshes.WithLabelValues("error").Inc()
		if domain.IsKind(err, domain.KindInvalidCredentials) {
			return nil, domain.ErrInvalidCredentials(effectiveEmail)
		}
		return nil, err
	}

	store := domain.StoreInfo{AdvertiserID: cfg.AdvertiserID}
	if info, infoErr := c.client.FetchAdvertiser(ctx, auth.AccessToken); infoErr != nil {
		c.log.Warnf(ctx, "fetch advertiser failed email=%s err=%v (falling back to configured advertiser id)",
			effectiveEmail, infoErr)
	} else if info != nil {
		store = domain.StoreInfo{AdvertiserID: info.AdvertiserID, Name: info.Name}
	}

	tok := &domain.CachedToken{
		IdentityKey: effectiveEmail,
		AccessToken: auth.AccessToken,
		ExpiresAt:   auth.ExpiresAt,
		Store:       store,
	}

	c.mu.Lock()
	c.tokens[effectiveEmail] = tok
	c.mu.Unlock()

	metrics.TokenRefreshes.WithLabelValues("ok").Inc()
	c.log.Infof(ctx, "token refreshed email=%s advertiser=%s expires_at=%s",
		effectiveEmail, store.AdvertiserID, tok.ExpiresAt.Format(time.RFC3339))
	return tok, nil
}
