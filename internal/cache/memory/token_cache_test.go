package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// fakeDealers — конфигурации дилеров в памяти.
type fakeDealers struct {
	configs map[string]*domain.DealerConfig
}

func (f *fakeDealers) ConfigByUserID(_ context.Context, userID string) (*domain.DealerConfig, error) {
	for _, c := range f.configs {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeDealers) ConfigByEmail(_ context.Context, email string) (*domain.DealerConfig, error) {
	return f.configs[email], nil
}

func (f *fakeDealers) TeamMemberByUserID(context.Context, string) (*domain.TeamMember, error) {
	return nil, nil
}

// fakeMarketplace — считает вызовы Authenticate; задержка имитирует сеть.
type fakeMarketplace struct {
	authCalls  atomic.Int64
	authDelay  time.Duration
	authErr    error
	expiresIn  time.Duration
	advertiser *domain.AdvertiserInfo
}

func (f *fakeMarketplace) Authenticate(context.Context, string, string) (*domain.AuthToken, error) {
	f.authCalls.Add(1)
	if f.authDelay > 0 {
		time.Sleep(f.authDelay)
	}
	if f.authErr != nil {
		return nil, f.authErr
	}
	return &domain.AuthToken{AccessToken: "tok-1", ExpiresAt: time.Now().Add(f.expiresIn)}, nil
}

func (f *fakeMarketplace) FetchAdvertiser(context.Context, string) (*domain.AdvertiserInfo, error) {
	if f.advertiser == nil {
		return &domain.AdvertiserInfo{AdvertiserID: "adv-1", Name: "Store One"}, nil
	}
	return f.advertiser, nil
}

func (f *fakeMarketplace) FetchStock(context.Context, string, string, string) (*domain.StockRecord, error) {
	return nil, nil
}

func (f *fakeMarketplace) PatchStock(context.Context, string, string, string, *domain.StockChangeset) (*domain.StockChangeset, error) {
	return nil, nil
}

func newDealers() *fakeDealers {
	return &fakeDealers{configs: map[string]*domain.DealerConfig{
		"owner@store.co.uk": {
			UserID: "u-1", Email: "owner@store.co.uk",
			APIKey: "key", APISecret: "secret", AdvertiserID: "adv-cfg",
		},
	}}
}

func TestTokenCache_MissThenHit(t *testing.T) {
	mp := &fakeMarketplace{expiresIn: time.Hour}
	c := NewTokenCache(newDealers(), mp, noopLogger{}, time.Minute)
	ctx := context.Background()

	tok, err := c.GetToken(ctx, "owner@store.co.uk")
	if err != nil || tok == nil || tok.AccessToken != "tok-1" {
		t.Fatalf("expected token, got tok=%+v err=%v", tok, err)
	}
	if tok.Store.AdvertiserID != "adv-1" {
		t.Fatalf("expected store info from advertiser endpoint, got %+v", tok.Store)
	}

	// Второй вызов — из кэша, без повторной аутентификации.
	if _, err := c.GetToken(ctx, "owner@store.co.uk"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mp.authCalls.Load(); got != 1 {
		t.Fatalf("expected 1 auth call, got %d", got)
	}
}

// Single-flight: N конкурентных запросов одного ключа — ровно один вызов
// аутентификации upstream.
func TestTokenCache_SingleFlightRefresh(t *testing.T) {
	mp := &fakeMarketplace{expiresIn: time.Hour, authDelay: 50 * time.Millisecond}
	c := NewTokenCache(newDealers(), mp, noopLogger{}, time.Minute)
	ctx := context.Background()

	const n = 25
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.GetToken(ctx, "owner@store.co.uk"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mp.authCalls.Load(); got != 1 {
		t.Fatalf("expected exactly 1 upstream auth call, got %d", got)
	}
}

// Истечение в пределах margin считается промахом и вызывает обновление.
func TestTokenCache_RefreshWithinMargin(t *testing.T) {
	mp := &fakeMarketplace{expiresIn: 30 * time.Second}
	c := NewTokenCache(newDealers(), mp, noopLogger{}, time.Minute)
	ctx := context.Background()

	if _, err := c.GetToken(ctx, "owner@store.co.uk"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Токен живёт 30s, margin 60s — следующий вызов обязан обновить.
	if _, err := c.GetToken(ctx, "owner@store.co.uk"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mp.authCalls.Load(); got != 2 {
		t.Fatalf("expected refresh within margin, auth calls=%d", got)
	}
}

func TestTokenCache_NoAPIKeys(t *testing.T) {
	dealers := &fakeDealers{configs: map[string]*domain.DealerConfig{
		"bare@store.co.uk": {UserID: "u-2", Email: "bare@store.co.uk"},
	}}
	c := NewTokenCache(dealers, &fakeMarketplace{expiresIn: time.Hour}, noopLogger{}, time.Minute)

	_, err := c.GetToken(context.Background(), "bare@store.co.uk")
	if !domain.IsKind(err, domain.KindAuthenticationFailed) {
		t.Fatalf("expected authentication_failed, got %v", err)
	}

	var de *domain.Error
	if !errors.As(err, &de) || len(de.Suggestions) == 0 {
		t.Fatalf("expected remediation suggestions, got %+v", de)
	}
}

func TestTokenCache_InvalidCredentials(t *testing.T) {
	mp := &fakeMarketplace{authErr: domain.NewError(domain.KindInvalidCredentials, "upstream said no")}
	c := NewTokenCache(newDealers(), mp, noopLogger{}, time.Minute)

	_, err := c.GetToken(context.Background(), "owner@store.co.uk")
	if !domain.IsKind(err, domain.KindInvalidCredentials) {
		t.Fatalf("expected invalid_credentials, got %v", err)
	}
}

func TestTokenCache_Invalidate(t *testing.T) {
	mp := &fakeMarketplace{expiresIn: time.Hour}
	c := NewTokenCache(newDealers(), mp, noopLogger{}, time.Minute)
	ctx := context.Background()

	if _, err := c.GetToken(ctx, "owner@store.co.uk"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Invalidate("owner@store.co.uk")
	if _, err := c.GetToken(ctx, "owner@store.co.uk"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mp.authCalls.Load(); got != 2 {
		t.Fatalf("expected re-auth after invalidate, got %d calls", got)
	}
}

// Токены разных ключей независимы.
func TestTokenCache_DistinctKeys(t *testing.T) {
	dealers := newDealers()
	dealers.configs["second@store.co.uk"] = &domain.DealerConfig{
		UserID: "u-3", Email: "second@store.co.uk", APIKey: "k2", APISecret: "s2",
	}
	mp := &fakeMarketplace{expiresIn: time.Hour}
	c := NewTokenCache(dealers, mp, noopLogger{}, time.Minute)
	ctx := context.Background()

	if _, err := c.GetToken(ctx, "owner@store.co.uk"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.GetToken(ctx, "second@store.co.uk"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mp.authCalls.Load(); got != 2 {
		t.Fatalf("expected one auth per key, got %d", got)
	}
}
