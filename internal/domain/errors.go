package domain

import (
	"errors"
	"fmt"
)

// ErrorKind — стабильный тип ошибки, который видят вызывающие слои
// (и по которому HTTP-слой выбирает код ответа).
type ErrorKind string

const (
	KindConfigNotFound       ErrorKind = "config_not_found"
	KindAuthenticationFailed ErrorKind = "authentication_failed"
	KindInvalidCredentials   ErrorKind = "invalid_credentials"
	KindUpstreamRejected     ErrorKind = "upstream_rejected"
	KindUpstreamUnavailable  ErrorKind = "upstream_unavailable"
	KindValidation           ErrorKind = "validation_error"
	KindNotFound             ErrorKind = "not_found"
)

// Error — ошибка с таксономией: стабильный Kind, человекочитаемое сообщение,
// деталь от upstream (для upstream_rejected) и подсказки по устранению
// (для ошибок аутентификации — самый частый кейс поддержки дилеров).
type Error struct {
	Kind        ErrorKind `json:"type"`
	Message     string    `json:"message"`
	Detail      string    `json:"detail,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
	cause       error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// KindOf — извлекает Kind из цепочки ошибок; "" если ошибка не доменная.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind — принадлежит ли ошибка указанному типу таксономии.
func IsKind(err error, kind ErrorKind) bool { return KindOf(err) == kind }

// NewError — базовый конструктор доменной ошибки.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError — доменная ошибка поверх причины (причина доступна через Unwrap).
func WrapError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// ErrConfigNotFound — ни связи «член команды», ни собственной конфигурации.
func ErrConfigNotFound(userID string) *Error {
	return &Error{
		Kind:    KindConfigNotFound,
		Message: fmt.Sprintf("no dealer configuration or team membership found for user %s", userID),
	}
}

// ErrAuthenticationFailed — у дилера не настроены ключи API.
func ErrAuthenticationFailed(email string) *Error {
	return &Error{
		Kind:    KindAuthenticationFailed,
		Message: fmt.Sprintf("dealer %s has no Marketplace API keys configured", email),
		Suggestions: []string{
			"add the Marketplace API key and secret in dealer settings",
			"check that the keys were not revoked by the Marketplace",
		},
	}
}

// ErrInvalidCredentials — Marketplace API отклонил ключи дилера.
func ErrInvalidCredentials(email string) *Error {
	return &Error{
		Kind:    KindInvalidCredentials,
		Message: fmt.Sprintf("the Marketplace rejected the API keys configured for %s", email),
		Suggestions: []string{
			"re-issue the API key/secret pair in the Marketplace portal",
			"verify the keys belong to the advertiser account for this dealer",
		},
	}
}

// ErrUpstreamRejected — 4xx со структурированной причиной от Marketplace API.
// Деталь прокидывается пользователю как есть.
func ErrUpstreamRejected(detail string) *Error {
	return &Error{
		Kind:    KindUpstreamRejected,
		Message: "the Marketplace rejected the update",
		Detail:  detail,
	}
}

// ErrUpstreamUnavailable — сеть/5xx/таймаут.
func ErrUpstreamUnavailable(cause error) *Error {
	return &Error{
		Kind:    KindUpstreamUnavailable,
		Message: "the Marketplace API is unavailable",
		cause:   cause,
	}
}

// ErrValidation — некорректный change-set от вызывающего.
func ErrValidation(detail string) *Error {
	return &Error{Kind: KindValidation, Message: "invalid changeset", Detail: detail}
}

// ErrStockNotFound — запись неизвестна ни кэшу, ни upstream.
func ErrStockNotFound(dealerID, stockID string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("stock %s is not known for dealer %s", stockID, dealerID),
	}
}
