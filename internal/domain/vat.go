package domain

import "strings"

// VATScheme — нормализованная трёхзначная схема НДС записи о закупке.
type VATScheme string

const (
	VATSchemeNoVAT    VATScheme = "no_vat"
	VATSchemeIncludes VATScheme = "includes"
	VATSchemeExcludes VATScheme = "excludes"
)

// vatSchemeByStatus — явная таблица соответствия человекочитаемого
// статуса НДС нормализованной схеме.
var vatSchemeByStatus = map[string]VATScheme{
	"no vat":  VATSchemeNoVAT,
	"inc vat": VATSchemeIncludes,
	"ex vat":  VATSchemeExcludes,
}

// VATSchemeFromStatus — схема по статусу из Marketplace API.
// Неизвестный или пустой статус трактуем как «цена с НДС».
func VATSchemeFromStatus(status string) VATScheme {
	if s, ok := vatSchemeByStatus[strings.ToLower(strings.TrimSpace(status))]; ok {
		return s
	}
	return VATSchemeIncludes
}

// VATExcluded — указывает ли статус, что объявленная цена не включает НДС.
func VATExcluded(status string) bool {
	return VATSchemeFromStatus(status) == VATSchemeExcludes
}
