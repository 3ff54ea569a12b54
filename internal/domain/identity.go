package domain

import "time"

// EffectiveIdentity — идентичность, под которой выполняется запрос к
// Marketplace API. Если пользователь — член команды, EffectiveEmail всегда
// принадлежит владельцу магазина, а не самому пользователю.
type EffectiveIdentity struct {
	RequestingUserID  string `json:"requestingUserId"`
	EffectiveEmail    string `json:"effectiveEmail"`
	IsDelegated       bool   `json:"isDelegated"`
	DelegatingOwnerID string `json:"delegatingOwnerId,omitempty"`
}

// DealerConfig — конфигурация дилера: email аккаунта Marketplace и
// ключи API (ключи — на дилера, не на пользователя).
type DealerConfig struct {
	UserID       string
	Email        string
	APIKey       string
	APISecret    string
	AdvertiserID string
}

// HasAPIKeys — заданы ли у дилера ключи Marketplace API.
func (c *DealerConfig) HasAPIKeys() bool {
	return c != nil && c.APIKey != "" && c.APISecret != ""
}

// TeamMember — связь «член команды → владелец магазина».
type TeamMember struct {
	UserID       string
	StoreOwnerID string
}

// StoreInfo — данные рекламодателя, полученные при аутентификации.
type StoreInfo struct {
	AdvertiserID string `json:"advertiserId"`
	Name         string `json:"name,omitempty"`
}

// AuthToken — ответ Marketplace API на аутентификацию.
type AuthToken struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// CachedToken — bearer-токен Marketplace API, закэшированный по effective email.
// Записи заменяются целиком, не мутируются; процесс рестартует — кэш пуст.
type CachedToken struct {
	IdentityKey string
	AccessToken string
	ExpiresAt   time.Time
	Store       StoreInfo
}

// ExpiresWithin — истекает ли токен в пределах margin от now.
func (t *CachedToken) ExpiresWithin(now time.Time, margin time.Duration) bool {
	return t == nil || !t.ExpiresAt.After(now.Add(margin))
}

// AdvertAllowance — лимит размещений по каналу (из GET /advertisers).
type AdvertAllowance struct {
	Channel   string `json:"channel"`
	Capacity  int    `json:"capacity"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
}

// AdvertiserInfo — ответ Marketplace API на запрос рекламодателя
// с включёнными allowances.
type AdvertiserInfo struct {
	AdvertiserID string            `json:"advertiserId"`
	Name         string            `json:"name,omitempty"`
	Allowances   []AdvertAllowance `json:"allowances,omitempty"`
}
