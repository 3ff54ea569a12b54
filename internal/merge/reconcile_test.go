package merge

import (
	"testing"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
)

// Приоритет ответа: под-документ из ответа перезаписывает кэш целиком,
// независимо от оригинала и отправленного payload.
func TestReconcile_ResponseOverwritesSubdocument(t *testing.T) {
	orig := baseRecord()
	sent := &domain.StockChangeset{
		Adverts: &domain.AdvertsData{ForecourtPrice: money(16000)},
	}
	response := &domain.StockChangeset{
		Adverts: &domain.AdvertsData{
			ForecourtPrice:          money(15995), // upstream нормализовал цену
			ForecourtPriceVatStatus: sptr("Inc VAT"),
		},
	}

	rec := Reconcile(orig, sent, response)

	if rec.Adverts.ForecourtPrice == nil || *rec.Adverts.ForecourtPrice.AmountGBP != 15995 {
		t.Fatalf("expected response price 15995, got %+v", rec.Adverts.ForecourtPrice)
	}
	// Перезапись, не слияние: location из оригинала в ответе не было — его нет и в кэше.
	if rec.Adverts.Location != nil {
		t.Fatalf("response must overwrite the sub-document, location survived: %+v", rec.Adverts.Location)
	}
}

// Ответ без под-документа: откат к рекурсивному слиянию оригинала с payload.
func TestReconcile_PartialResponse_FallsBackToMerge(t *testing.T) {
	orig := baseRecord()
	sent := &domain.StockChangeset{
		Adverts: &domain.AdvertsData{ForecourtPrice: money(16000)},
	}

	rec := Reconcile(orig, sent, &domain.StockChangeset{})

	if rec.Adverts.ForecourtPrice == nil || *rec.Adverts.ForecourtPrice.AmountGBP != 16000 {
		t.Fatalf("expected merged price 16000, got %+v", rec.Adverts.ForecourtPrice)
	}
	// Слияние сохраняет не тронутые payload'ом поля.
	if rec.Adverts.Location == nil || *rec.Adverts.Location.Town != "Leeds" {
		t.Fatalf("merge must keep original location")
	}
	if rec.Adverts.RetailAdverts == nil || *rec.Adverts.RetailAdverts.Description != "nice car" {
		t.Fatalf("merge must keep original retailAdverts")
	}
}

// При слиянии массивы атомарны: payload заменяет массив целиком.
func TestReconcile_MergeArraysReplace(t *testing.T) {
	orig := baseRecord()
	sent := &domain.StockChangeset{
		Adverts: &domain.AdvertsData{ImageIDs: []string{"img-9"}},
	}

	rec := Reconcile(orig, sent, nil)

	got := rec.Adverts.ImageIDs
	if len(got) != 1 || got[0] != "img-9" {
		t.Fatalf("expected atomic array replace, got %v", got)
	}
}

// Очистка массива через откатное слияние: пустой не-nil срез payload'а
// заменяет старый массив, а не сохраняет его.
func TestReconcile_MergeArrayClearToEmpty(t *testing.T) {
	orig := baseRecord()
	sent := &domain.StockChangeset{
		Adverts: &domain.AdvertsData{ImageIDs: []string{}},
	}

	rec := Reconcile(orig, sent, &domain.StockChangeset{})

	got := rec.Adverts.ImageIDs
	if got == nil {
		t.Fatalf("cleared array must stay non-nil after merge")
	}
	if len(got) != 0 {
		t.Fatalf("expected cleared array, old images survived: %v", got)
	}
}

// Детерминизм НДС: 1000 «Ex VAT» → 1200.00; «Inc VAT» и отсутствие статуса → 1000.00.
func TestReconcile_VATUplift(t *testing.T) {
	cases := []struct {
		name      string
		vatStatus *string
		want      float64
	}{
		{"ex vat uplifts 20 percent", sptr("Ex VAT"), 1200.00},
		{"inc vat keeps price", sptr("Inc VAT"), 1000.00},
		{"absent status keeps price", nil, 1000.00},
		{"no vat keeps price", sptr("No VAT"), 1000.00},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orig := &domain.StockRecord{DealerID: "d", StockID: "s"}
			sent := &domain.StockChangeset{
				Adverts: &domain.AdvertsData{
					ForecourtPrice:          money(1000),
					ForecourtPriceVatStatus: tc.vatStatus,
				},
			}

			rec := Reconcile(orig, sent, nil)

			if rec.ForecourtPriceGBP == nil || *rec.ForecourtPriceGBP != 1000 {
				t.Fatalf("expected forecourt 1000, got %+v", rec.ForecourtPriceGBP)
			}
			if rec.TotalPriceGBP == nil || *rec.TotalPriceGBP != tc.want {
				t.Fatalf("expected total %v, got %+v", tc.want, rec.TotalPriceGBP)
			}
		})
	}
}

// Приоритет статуса НДС: top-level статус важнее статуса retail-объявления.
func TestVATStatusOf_Precedence(t *testing.T) {
	adverts := &domain.AdvertsData{
		ForecourtPriceVatStatus: sptr("Inc VAT"),
		RetailAdverts:           &domain.RetailAdverts{VatStatus: sptr("Ex VAT")},
	}
	if got := VATStatusOf(adverts); got != "Inc VAT" {
		t.Fatalf("expected top-level status to win, got %q", got)
	}

	adverts.ForecourtPriceVatStatus = nil
	if got := VATStatusOf(adverts); got != "Ex VAT" {
		t.Fatalf("expected retail advert status, got %q", got)
	}

	if got := VATStatusOf(nil); got != "" {
		t.Fatalf("expected empty status for nil adverts, got %q", got)
	}
}

// Явная итоговая цена из ответа имеет приоритет над вычислением.
func TestReconcile_ExplicitTotalWins(t *testing.T) {
	orig := baseRecord()
	sent := &domain.StockChangeset{
		Adverts: &domain.AdvertsData{ForecourtPrice: money(1000), ForecourtPriceVatStatus: sptr("Ex VAT")},
	}
	response := &domain.StockChangeset{
		Adverts: &domain.AdvertsData{
			ForecourtPrice:          money(1000),
			ForecourtPriceVatStatus: sptr("Ex VAT"),
			RetailAdverts:           &domain.RetailAdverts{TotalPrice: money(1234.56)},
		},
	}

	rec := Reconcile(orig, sent, response)

	if rec.TotalPriceGBP == nil || *rec.TotalPriceGBP != 1234.56 {
		t.Fatalf("expected explicit total 1234.56, got %+v", rec.TotalPriceGBP)
	}
}

// lifecycleState: из ответа, если он там есть; иначе из слитого payload.
func TestReconcile_LifecycleState(t *testing.T) {
	orig := baseRecord()

	sent := &domain.StockChangeset{Metadata: &domain.StockMetadata{LifecycleState: sptr("SALE_IN_PROGRESS")}}
	response := &domain.StockChangeset{Metadata: &domain.StockMetadata{LifecycleState: sptr("SOLD")}}

	rec := Reconcile(orig, sent, response)
	if rec.LifecycleState != "SOLD" {
		t.Fatalf("expected lifecycle from response, got %q", rec.LifecycleState)
	}

	rec = Reconcile(orig, sent, nil)
	if rec.LifecycleState != "SALE_IN_PROGRESS" {
		t.Fatalf("expected lifecycle from merged payload, got %q", rec.LifecycleState)
	}
}

// Адверты не тронуты — ценовые колонки не пересчитываются.
func TestReconcile_MetadataOnly_PricesUntouched(t *testing.T) {
	orig := baseRecord()
	orig.ForecourtPriceGBP = fptr(15000)
	orig.TotalPriceGBP = fptr(15000)

	sent := &domain.StockChangeset{Metadata: &domain.StockMetadata{LifecycleState: sptr("SOLD")}}
	rec := Reconcile(orig, sent, nil)

	if rec.ForecourtPriceGBP == nil || *rec.ForecourtPriceGBP != 15000 {
		t.Fatalf("forecourt price must be untouched")
	}
	if rec.LifecycleState != "SOLD" {
		t.Fatalf("expected lifecycle SOLD, got %q", rec.LifecycleState)
	}
}

// Reconcile не мутирует оригинал.
func TestReconcile_DoesNotMutateOriginal(t *testing.T) {
	orig := baseRecord()
	sent := &domain.StockChangeset{
		Adverts: &domain.AdvertsData{ForecourtPrice: money(20000)},
	}

	_ = Reconcile(orig, sent, nil)

	if *orig.Adverts.ForecourtPrice.AmountGBP != 15000 {
		t.Fatalf("original record was mutated")
	}
}

// DeriveFetched — плоские колонки для целиком полученной записи.
func TestDeriveFetched(t *testing.T) {
	rec := baseRecord()
	rec.Vehicle = &domain.VehicleData{
		Registration: sptr("AB12 CDE"),
		Make:         sptr("Ford"),
		Model:        sptr("Focus"),
	}
	rec.Adverts.RetailAdverts.TotalPrice = money(15000)

	DeriveFetched(rec)

	if rec.Registration != "AB12 CDE" || rec.Make != "Ford" || rec.Model != "Focus" {
		t.Fatalf("vehicle fields not flattened: %+v", rec)
	}
	if rec.ForecourtPriceGBP == nil || *rec.ForecourtPriceGBP != 15000 {
		t.Fatalf("expected forecourt 15000")
	}
	if rec.TotalPriceGBP == nil || *rec.TotalPriceGBP != 15000 {
		t.Fatalf("expected explicit total 15000")
	}
	if rec.LifecycleState != "FORECOURT" {
		t.Fatalf("expected lifecycle FORECOURT, got %q", rec.LifecycleState)
	}
}
