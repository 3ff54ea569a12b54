//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

func sptr(s string) *string   { return &s }
func fptr(f float64) *float64 { return &f }

// Мини-генератор валидной записи stock
func MakeStockRecord(opts ...func(*domain.StockRecord)) domain.StockRecord {
	now := time.Now().UTC().Truncate(time.Second)

	r := domain.StockRecord{
		DealerID: "dealer-" + UniqSuffix(),
		StockID:  "stock-" + UniqSuffix(),

		Vehicle: &domain.VehicleData{
			Registration: sptr("AB12 CDE"),
			Make:         sptr("Ford"),
			Model:        sptr("Focus"),
		},
		Adverts: &domain.AdvertsData{
			ForecourtPrice:          &domain.Money{AmountGBP: fptr(15000)},
			ForecourtPriceVatStatus: sptr("Inc VAT"),
			RetailAdverts: &domain.RetailAdverts{
				TotalPrice: &domain.Money{AmountGBP: fptr(15000)},
				VatStatus:  sptr("Inc VAT"),
			},
		},
		Metadata: &domain.StockMetadata{LifecycleState: sptr("FORECOURT")},

		ForecourtPriceGBP: fptr(15000),
		TotalPriceGBP:     fptr(15000),
		LifecycleState:    "FORECOURT",
		Registration:      "AB12 CDE",
		Make:              "Ford",
		Model:             "Focus",

		LastFetchedAt: now,
	}

	for _, fn := range opts {
		fn(&r)
	}
	return r
}

func WithDealer(dealerID string) func(*domain.StockRecord) {
	return func(r *domain.StockRecord) { r.DealerID = dealerID }
}

func WithStockID(stockID string) func(*domain.StockRecord) {
	return func(r *domain.StockRecord) { r.StockID = stockID }
}

func WithLifecycleState(state string) func(*domain.StockRecord) {
	return func(r *domain.StockRecord) {
		r.LifecycleState = state
		r.Metadata = &domain.StockMetadata{LifecycleState: &state}
	}
}

func WithFetchedAt(at time.Time) func(*domain.StockRecord) {
	return func(r *domain.StockRecord) { r.LastFetchedAt = at }
}

// FullPatchFrom — полный StockPatch из записи (все колонки).
func FullPatchFrom(r *domain.StockRecord) *domain.StockPatch {
	fetchedAt := r.LastFetchedAt
	return &domain.StockPatch{
		Vehicle:  r.Vehicle,
		Adverts:  r.Adverts,
		Metadata: r.Metadata,

		ForecourtPriceGBP: r.ForecourtPriceGBP,
		TotalPriceGBP:     r.TotalPriceGBP,
		LifecycleState:    &r.LifecycleState,
		Registration:      &r.Registration,
		Make:              &r.Make,
		Model:             &r.Model,

		LastFetchedAt: &fetchedAt,
	}
}
