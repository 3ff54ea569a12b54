package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
	"github.com/Gunvolt24/dealer_backoffice/internal/ports"
)

// Проверка, что ChangesetValidator удовлетворяет интерфейсу ChangesetValidator.
var _ ports.ChangesetValidator = (*ChangesetValidator)(nil)

// knownVATStatuses — допустимые значения статуса НДС (регистр не важен).
var knownVATStatuses = map[string]bool{
	"inc vat": true,
	"ex vat":  true,
	"no vat":  true,
}

// knownLifecycleStates — допустимые состояния жизненного цикла записи.
var knownLifecycleStates = map[string]bool{
	"DUE_IN":           true,
	"FORECOURT":        true,
	"SALE_IN_PROGRESS": true,
	"SOLD":             true,
	"WASTEBIN":         true,
	"DELETED":          true,
}

// knownChannelStatuses — допустимые статусы публикации в канале.
var knownChannelStatuses = map[string]bool{
	"PUBLISHED":     true,
	"NOT_PUBLISHED": true,
}

// ChangesetValidator — структура для валидации change-set до каких-либо
// обращений к Marketplace API. Возвращает доменную ошибку validation_error
// с деталью о первом найденном нарушении.
type ChangesetValidator struct{}

// NewChangesetValidator — конструктор ChangesetValidator.
func NewChangesetValidator() *ChangesetValidator { return &ChangesetValidator{} }

// Validate — проверяет корректность полей change-set.
func (v *ChangesetValidator) Validate(_ context.Context, changeset *domain.StockChangeset) error {
	if changeset.IsEmpty() {
		return domain.ErrValidation("changeset must contain at least one of adverts or metadata")
	}
	if err := v.validateAdverts(changeset.Adverts); err != nil {
		return err
	}
	return v.validateMetadata(changeset.Metadata)
}

// validateAdverts — валидация рекламного под-документа.
func (v *ChangesetValidator) validateAdverts(adverts *domain.AdvertsData) error {
	if adverts == nil {
		return nil
	}

	if err := validatePrice("adverts.forecourtPrice", adverts.ForecourtPrice); err != nil {
		return err
	}
	if err := validateVATStatus("adverts.forecourtPriceVatStatus", adverts.ForecourtPriceVatStatus); err != nil {
		return err
	}

	return v.validateRetail(adverts.RetailAdverts)
}

// validateRetail — валидация розничной части (цены, статусы каналов).
func (v *ChangesetValidator) validateRetail(retail *domain.RetailAdverts) error {
	if retail == nil {
		return nil
	}

	if err := validatePrice("adverts.retailAdverts.suppliedPrice", retail.SuppliedPrice); err != nil {
		return err
	}
	if err := validatePrice("adverts.retailAdverts.totalPrice", retail.TotalPrice); err != nil {
		return err
	}
	if err := validateVATStatus("adverts.retailAdverts.vatStatus", retail.VatStatus); err != nil {
		return err
	}

	channels := map[string]*domain.ChannelStatus{
		"autotraderAdvert": retail.AutotraderAdvert,
		"advertiserAdvert": retail.AdvertiserAdvert,
		"locatorAdvert":    retail.LocatorAdvert,
		"exportAdvert":     retail.ExportAdvert,
		"profileAdvert":    retail.ProfileAdvert,
	}
	for name, ch := range channels {
		if ch == nil || ch.Status == nil {
			continue
		}
		if !knownChannelStatuses[*ch.Status] {
			return domain.ErrValidation(fmt.Sprintf(
				"adverts.retailAdverts.%s.status must be PUBLISHED or NOT_PUBLISHED, got %q", name, *ch.Status))
		}
	}
	return nil
}

// validateMetadata — валидация служебного под-документа.
func (v *ChangesetValidator) validateMetadata(meta *domain.StockMetadata) error {
	if meta == nil || meta.LifecycleState == nil {
		return nil
	}
	if !knownLifecycleStates[*meta.LifecycleState] {
		return domain.ErrValidation(fmt.Sprintf("metadata.lifecycleState %q is not a known state", *meta.LifecycleState))
	}
	return nil
}

func validatePrice(field string, m *domain.Money) error {
	if m == nil || m.AmountGBP == nil {
		return nil
	}
	if *m.AmountGBP < 0 {
		return domain.ErrValidation(fmt.Sprintf("%s must not be negative, got %v", field, *m.AmountGBP))
	}
	return nil
}

func validateVATStatus(field string, status *string) error {
	if status == nil {
		return nil
	}
	if !knownVATStatuses[strings.ToLower(strings.TrimSpace(*status))] {
		return domain.ErrValidation(fmt.Sprintf("%s must be one of Inc VAT, Ex VAT, No VAT, got %q", field, *status))
	}
	return nil
}
