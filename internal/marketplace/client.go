package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
	"github.com/Gunvolt24/dealer_backoffice/internal/ports"
	"github.com/Gunvolt24/dealer_backoffice/pkg/metrics"
)

// Проверка, что Client удовлетворяет порту MarketplaceClient.
var _ ports.MarketplaceClient = (*Client)(nil)

// Client — тонкая обёртка над Marketplace API: bearer-авторизация,
// сериализация тел и перевод не-2xx ответов в доменную таксономию.
// Ретраев нет: политика повторов — на вызывающем (её здесь нет, ошибки
// всплывают сразу).
type Client struct {
	baseURL string
	httpc   *http.Client
	log     ports.Logger
}

// NewClient — DI-конструктор. timeout ограничивает каждый исходящий запрос.
func NewClient(baseURL string, timeout time.Duration, log ports.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// ------типы тел запросов/ответов------

type authRequest struct {
	Key    string `json:"key"`
	Secret string `json:"secret"`
}

type authResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type advertisersResponse struct {
	Results []domain.AdvertiserInfo `json:"results"`
}

// stockDocument — полный документ stock из GET /stock/{id}.
type stockDocument struct {
	Vehicle  *domain.VehicleData   `json:"vehicle,omitempty"`
	Adverts  *domain.AdvertsData   `json:"adverts,omitempty"`
	Metadata *domain.StockMetadata `json:"metadata,omitempty"`
}

// upstreamError — структурированное тело ошибки Marketplace API.
type upstreamError struct {
	Message string `json:"message"`
	Errors  []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (e *upstreamError) detail() string {
	parts := make([]string, 0, len(e.Errors)+1)
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	for _, item := range e.Errors {
		if item.Message != "" {
			parts = append(parts, item.Message)
		}
	}
	return strings.Join(parts, "; ")
}

// ------операции------

// Authenticate — POST /authenticate. 401/403 → invalid_credentials.
func (c *Client) Authenticate(ctx context.Context, key, secret string) (*domain.AuthToken, error) {
	var out authResponse
	err := c.do(ctx, "authenticate", http.MethodPost, "/authenticate", "", authRequest{Key: key, Secret: secret}, &out)
	if err != nil {
		return nil, err
	}
	return &domain.AuthToken{AccessToken: out.AccessToken, ExpiresAt: out.ExpiresAt}, nil
}

// FetchAdvertiser — GET /advertisers?autotraderAdvertAllowances=true.
// Токен привязан к одному рекламодателю, берём первый результат.
func (c *Client) FetchAdvertiser(ctx context.Context, accessToken string) (*domain.AdvertiserInfo, error) {
	var out advertisersResponse
	err := c.do(ctx, "advertiser", http.MethodGet, "/advertisers?autotraderAdvertAllowances=true", accessToken, nil, &out)
	if err != nil {
		return nil, err
	}
	if len(out.Results) == 0 {
		return nil, domain.NewError(domain.KindNotFound, "no advertiser account linked to these credentials")
	}
	info := out.Results[0]
	return &info, nil
}

// FetchStock — GET /stock/{stockID}?advertiserId=.
func (c *Client) FetchStock(ctx context.Context, accessToken, advertiserID, stockID string) (*domain.StockRecord, error) {
	path := fmt.Sprintf("/stock/%s?advertiserId=%s", url.PathEscape(stockID), url.QueryEscape(advertiserID))

	var out stockDocument
	if err := c.do(ctx, "fetch_stock", http.MethodGet, path, accessToken, nil, &out); err != nil {
		return nil, err
	}
	return &domain.StockRecord{
		StockID:  stockID,
		Vehicle:  out.Vehicle,
		Adverts:  out.Adverts,
		Metadata: out.Metadata,
	}, nil
}

// PatchStock — PATCH /stock/{stockID}?advertiserId=. Возвращает тело ответа:
// под-документы, которые upstream принял (и, возможно, пересчитал).
func (c *Client) PatchStock(
	ctx context.Context,
	accessToken, advertiserID, stockID string,
	payload *domain.StockChangeset,
) (*domain.StockChangeset, error) {
	path := fmt.Sprintf("/stock/%s?advertiserId=%s", url.PathEscape(stockID), url.QueryEscape(advertiserID))

	var out domain.StockChangeset
	if err := c.do(ctx, "patch_stock", http.MethodPatch, path, accessToken, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ------транспорт------

// do — выполняет запрос и раскладывает результат в out (если указатель не nil).
func (c *Client) do(ctx context.Context, op, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s body: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.MarketplaceRequests.WithLabelValues(op, "unavailable").Inc()
		return domain.ErrUpstreamUnavailable(err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		metrics.MarketplaceRequests.WithLabelValues(op, "unavailable").Inc()
		return domain.ErrUpstreamUnavailable(err)
	}

	c.log.Debugf(ctx, "marketplace %s %s status=%d took=%s", method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.classify(op, resp.StatusCode, raw)
	}

	metrics.MarketplaceRequests.WithLabelValues(op, "ok").Inc()
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %s response: %w", op, err)
		}
	}
	return nil
}

// classify — перевод не-2xx ответа в таксономию ошибок по коду статуса
// и структурированному телу, если оно есть.
func (c *Client) classify(op string, status int, raw []byte) error {
	var body upstreamError
	_ = json.Unmarshal(raw, &body)
	detail := body.detail()
	if detail == "" {
		detail = strings.TrimSpace(string(raw))
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		metrics.MarketplaceRequests.WithLabelValues(op, "invalid_credentials").Inc()
		return domain.NewError(domain.KindInvalidCredentials, "the Marketplace rejected the credentials")
	case status == http.StatusNotFound:
		metrics.MarketplaceRequests.WithLabelValues(op, "not_found").Inc()
		return domain.NewError(domain.KindNotFound, "the Marketplace does not know this resource")
	case status >= 400 && status < 500:
		metrics.MarketplaceRequests.WithLabelValues(op, "rejected").Inc()
		return domain.ErrUpstreamRejected(detail)
	default:
		metrics.MarketplaceRequests.WithLabelValues(op, "unavailable").Inc()
		return domain.ErrUpstreamUnavailable(errors.New(http.StatusText(status)))
	}
}
