package validate_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
	"github.com/Gunvolt24/dealer_backoffice/pkg/validate"
)

func sptr(s string) *string   { return &s }
func fptr(f float64) *float64 { return &f }

func validChangeset() *domain.StockChangeset {
	return &domain.StockChangeset{
		Adverts: &domain.AdvertsData{
			ForecourtPrice:          &domain.Money{AmountGBP: fptr(15000)},
			ForecourtPriceVatStatus: sptr("Ex VAT"),
			RetailAdverts: &domain.RetailAdverts{
				TotalPrice:       &domain.Money{AmountGBP: fptr(18000)},
				VatStatus:        sptr("Ex VAT"),
				AutotraderAdvert: &domain.ChannelStatus{Status: sptr("PUBLISHED")},
			},
		},
		Metadata: &domain.StockMetadata{LifecycleState: sptr("FORECOURT")},
	}
}

func TestChangesetValidator_Validate(t *testing.T) {
	v := validate.NewChangesetValidator()
	ctx := context.Background()

	t.Run("valid changeset", func(t *testing.T) {
		if err := v.Validate(ctx, validChangeset()); err != nil {
			t.Fatalf("expected valid changeset, got: %v", err)
		}
	})

	type testCase struct {
		name string
		make func() *domain.StockChangeset
	}

	cases := []testCase{
		{
			name: "nil changeset",
			make: func() *domain.StockChangeset { return nil },
		},
		{
			name: "empty changeset",
			make: func() *domain.StockChangeset { return &domain.StockChangeset{} },
		},
		{
			name: "negative forecourt price",
			make: func() *domain.StockChangeset {
				c := validChangeset()
				c.Adverts.ForecourtPrice.AmountGBP = fptr(-1)
				return c
			},
		},
		{
			name: "negative total price",
			make: func() *domain.StockChangeset {
				c := validChangeset()
				c.Adverts.RetailAdverts.TotalPrice.AmountGBP = fptr(-0.01)
				return c
			},
		},
		{
			name: "unknown vat status",
			make: func() *domain.StockChangeset {
				c := validChangeset()
				c.Adverts.ForecourtPriceVatStatus = sptr("Maybe VAT")
				return c
			},
		},
		{
			name: "unknown retail vat status",
			make: func() *domain.StockChangeset {
				c := validChangeset()
				c.Adverts.RetailAdverts.VatStatus = sptr("???")
				return c
			},
		},
		{
			name: "unknown channel status",
			make: func() *domain.StockChangeset {
				c := validChangeset()
				c.Adverts.RetailAdverts.AutotraderAdvert.Status = sptr("MAYBE")
				return c
			},
		},
		{
			name: "unknown lifecycle state",
			make: func() *domain.StockChangeset {
				c := validChangeset()
				c.Metadata.LifecycleState = sptr("LIMBO")
				return c
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(ctx, tc.make())
			if !domain.IsKind(err, domain.KindValidation) {
				t.Fatalf("expected validation_error, got: %v", err)
			}
		})
	}
}

// Статусы НДС принимаются без учёта регистра.
func TestChangesetValidator_VATStatusCaseInsensitive(t *testing.T) {
	v := validate.NewChangesetValidator()
	ctx := context.Background()

	for _, status := range []string{"inc vat", "INC VAT", "Ex VAT", "no vat"} {
		c := &domain.StockChangeset{
			Adverts: &domain.AdvertsData{ForecourtPriceVatStatus: sptr(status)},
		}
		if err := v.Validate(ctx, c); err != nil {
			t.Fatalf("status %q must be accepted, got: %v", status, err)
		}
	}
}
