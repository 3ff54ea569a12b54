package marketplace

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, noopLogger{}), srv
}

func TestAuthenticate_Success(t *testing.T) {
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/authenticate" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body struct{ Key, Secret string }
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Key != "k" || body.Secret != "s" {
			t.Errorf("unexpected credentials: %+v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-abc",
			"expires_at":   expires,
		})
	})

	tok, err := c.Authenticate(context.Background(), "k", "s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.AccessToken != "tok-abc" || !tok.ExpiresAt.Equal(expires) {
		t.Fatalf("unexpected token: %+v", tok)
	}
}

func TestAuthenticate_InvalidCredentials(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Authenticate(context.Background(), "k", "bad")
	if !domain.IsKind(err, domain.KindInvalidCredentials) {
		t.Fatalf("expected invalid_credentials, got %v", err)
	}
}

func TestFetchAdvertiser_BearerAndAllowances(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("expected bearer token, got %q", got)
		}
		if r.URL.Query().Get("autotraderAdvertAllowances") != "true" {
			t.Errorf("expected allowances query param")
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{{
				"advertiserId": "adv-9",
				"name":         "Store Nine",
				"allowances":   []map[string]any{{"channel": "autotrader", "capacity": 50, "used": 20, "remaining": 30}},
			}},
		})
	})

	info, err := c.FetchAdvertiser(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.AdvertiserID != "adv-9" || len(info.Allowances) != 1 || info.Allowances[0].Remaining != 30 {
		t.Fatalf("unexpected advertiser info: %+v", info)
	}
}

func TestFetchAdvertiser_NoResults(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	})

	_, err := c.FetchAdvertiser(context.Background(), "tok-1")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestFetchStock_Success(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stock/stock-7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("advertiserId") != "adv-1" {
			t.Errorf("expected advertiserId query param")
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"vehicle":  map[string]any{"registration": "AB12 CDE", "make": "Ford"},
			"adverts":  map[string]any{"forecourtPrice": map[string]any{"amountGBP": 9999.0}},
			"metadata": map[string]any{"lifecycleState": "FORECOURT"},
		})
	})

	rec, err := c.FetchStock(context.Background(), "tok-1", "adv-1", "stock-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.StockID != "stock-7" {
		t.Fatalf("unexpected stock id %q", rec.StockID)
	}
	if rec.Vehicle == nil || *rec.Vehicle.Registration != "AB12 CDE" {
		t.Fatalf("unexpected vehicle: %+v", rec.Vehicle)
	}
	if rec.Adverts == nil || *rec.Adverts.ForecourtPrice.AmountGBP != 9999 {
		t.Fatalf("unexpected adverts: %+v", rec.Adverts)
	}
}

func TestFetchStock_NotFound(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.FetchStock(context.Background(), "tok-1", "adv-1", "missing")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestPatchStock_SendsPayloadAndReturnsResponse(t *testing.T) {
	price := 16000.0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		var got domain.StockChangeset
		_ = json.NewDecoder(r.Body).Decode(&got)
		if got.Adverts == nil || *got.Adverts.ForecourtPrice.AmountGBP != price {
			t.Errorf("unexpected payload: %+v", got)
		}
		// upstream пересчитал итоговую цену
		_ = json.NewEncoder(w).Encode(map[string]any{
			"adverts": map[string]any{
				"forecourtPrice": map[string]any{"amountGBP": price},
				"retailAdverts":  map[string]any{"totalPrice": map[string]any{"amountGBP": price * 1.2}},
			},
		})
	})

	payload := &domain.StockChangeset{
		Adverts: &domain.AdvertsData{ForecourtPrice: &domain.Money{AmountGBP: &price}},
	}
	resp, err := c.PatchStock(context.Background(), "tok-1", "adv-1", "stock-7", payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Adverts == nil || resp.Adverts.RetailAdverts == nil ||
		*resp.Adverts.RetailAdverts.TotalPrice.AmountGBP != price*1.2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

// 4xx со структурированной причиной: деталь upstream прокидывается как есть.
func TestPatchStock_UpstreamRejected(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "validation failed",
			"errors":  []map[string]any{{"message": "price below minimum"}},
		})
	})

	_, err := c.PatchStock(context.Background(), "tok-1", "adv-1", "stock-7", &domain.StockChangeset{})
	if !domain.IsKind(err, domain.KindUpstreamRejected) {
		t.Fatalf("expected upstream_rejected, got %v", err)
	}
	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected domain error")
	}
	if de.Detail != "validation failed; price below minimum" {
		t.Fatalf("expected upstream detail passed through, got %q", de.Detail)
	}
}

func TestPatchStock_ServerError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.PatchStock(context.Background(), "tok-1", "adv-1", "stock-7", &domain.StockChangeset{})
	if !domain.IsKind(err, domain.KindUpstreamUnavailable) {
		t.Fatalf("expected upstream_unavailable, got %v", err)
	}
}

// Таймаут запроса — upstream_unavailable, без частичных результатов.
func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, 50*time.Millisecond, noopLogger{})
	_, err := c.Authenticate(context.Background(), "k", "s")
	if !domain.IsKind(err, domain.KindUpstreamUnavailable) {
		t.Fatalf("expected upstream_unavailable on timeout, got %v", err)
	}
}
