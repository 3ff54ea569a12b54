package merge

import (
	"math"
	"time"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
)

// vatUpliftRate — стандартная ставка НДС юрисдикции (фиксированная,
// не конфигурируется и не читается из БД).
const vatUpliftRate = 0.20

// Reconcile — входящее согласование после записи в Marketplace API.
//
// Приоритет источников: под-документ из ответа upstream перезаписывает кэш
// целиком (upstream мог нормализовать или пересчитать значения); если ответ
// не содержит под-документ, который был отправлен, берётся рекурсивное
// слияние оригинала с отправленным payload. Затем пересчитываются
// производные колонки. Исходные аргументы не мутируются.
func Reconcile(original *domain.StockRecord, sent, response *domain.StockChangeset) *domain.StockRecord {
	rec := domain.CloneStockRecord(original)
	if rec == nil {
		rec = &domain.StockRecord{}
	}

	advertsTouched := false
	switch {
	case response != nil && response.Adverts != nil:
		rec.Adverts = domain.CloneAdverts(response.Adverts)
		advertsTouched = true
	case sent != nil && sent.Adverts != nil:
		rec.Adverts = MergeAdverts(rec.Adverts, sent.Adverts)
		advertsTouched = true
	}

	switch {
	case response != nil && response.Metadata != nil:
		rec.Metadata = domain.CloneMetadata(response.Metadata)
	case sent != nil && sent.Metadata != nil:
		rec.Metadata = MergeMetadata(rec.Metadata, sent.Metadata)
	}

	if advertsTouched {
		derivePrices(rec, explicitTotal(response))
	}
	if rec.Metadata != nil && rec.Metadata.LifecycleState != nil {
		rec.LifecycleState = *rec.Metadata.LifecycleState
	}

	rec.LastFetchedAt = time.Now().UTC()
	return rec
}

// DeriveFetched — пересчёт всех плоских колонок для записи, целиком
// полученной из Marketplace API (GET). Явная итоговая цена upstream —
// это totalPrice самого документа. Мутирует rec.
func DeriveFetched(rec *domain.StockRecord) {
	if rec == nil {
		return
	}
	derivePrices(rec, explicitTotal(&domain.StockChangeset{Adverts: rec.Adverts}))

	if rec.Metadata != nil && rec.Metadata.LifecycleState != nil {
		rec.LifecycleState = *rec.Metadata.LifecycleState
	}
	if v := rec.Vehicle; v != nil {
		if v.Registration != nil {
			rec.Registration = *v.Registration
		}
		if v.Make != nil {
			rec.Make = *v.Make
		}
		if v.Model != nil {
			rec.Model = *v.Model
		}
	}
}

// VATStatusOf — статус НДС рекламного под-документа с приоритетом:
// top-level статус, затем статус retail-объявления; отсутствие — пустая
// строка (трактуется как «цена с НДС»).
func VATStatusOf(adverts *domain.AdvertsData) string {
	if adverts == nil {
		return ""
	}
	if adverts.ForecourtPriceVatStatus != nil {
		return *adverts.ForecourtPriceVatStatus
	}
	if adverts.RetailAdverts != nil && adverts.RetailAdverts.VatStatus != nil {
		return *adverts.RetailAdverts.VatStatus
	}
	return ""
}

// derivePrices — пересчёт плоских ценовых колонок из (уже слитого)
// рекламного под-документа.
func derivePrices(rec *domain.StockRecord, explicitTotal *float64) {
	var forecourt *float64
	if rec.Adverts != nil && rec.Adverts.ForecourtPrice != nil && rec.Adverts.ForecourtPrice.AmountGBP != nil {
		v := *rec.Adverts.ForecourtPrice.AmountGBP
		forecourt = &v
	}
	rec.ForecourtPriceGBP = forecourt

	switch {
	case explicitTotal != nil:
		v := *explicitTotal
		rec.TotalPriceGBP = &v
	case forecourt == nil:
		rec.TotalPriceGBP = nil
	case domain.VATExcluded(VATStatusOf(rec.Adverts)):
		v := round2(*forecourt * (1 + vatUpliftRate))
		rec.TotalPriceGBP = &v
	default:
		v := *forecourt
		rec.TotalPriceGBP = &v
	}
}

// explicitTotal — итоговая цена, явно присланная upstream, если была.
func explicitTotal(response *domain.StockChangeset) *float64 {
	if response == nil || response.Adverts == nil || response.Adverts.RetailAdverts == nil {
		return nil
	}
	tp := response.Adverts.RetailAdverts.TotalPrice
	if tp == nil || tp.AmountGBP == nil {
		return nil
	}
	v := *tp.AmountGBP
	return &v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
