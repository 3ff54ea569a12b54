package merge

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
)

func sptr(s string) *string    { return &s }
func fptr(f float64) *float64  { return &f }
func bptr(b bool) *bool        { return &b }
func money(v float64) *domain.Money {
	return &domain.Money{AmountGBP: fptr(v)}
}

func baseRecord() *domain.StockRecord {
	return &domain.StockRecord{
		DealerID: "dealer-1",
		StockID:  "stock-1",
		Adverts: &domain.AdvertsData{
			ForecourtPrice:          money(15000),
			ForecourtPriceVatStatus: sptr("Inc VAT"),
			Location: &domain.Location{
				Town:     sptr("Leeds"),
				Postcode: sptr("LS1 1AA"),
			},
			RetailAdverts: &domain.RetailAdverts{
				SuppliedPrice:    money(15000),
				VatStatus:        sptr("Inc VAT"),
				Description:      sptr("nice car"),
				AutotraderAdvert: &domain.ChannelStatus{Status: sptr("PUBLISHED")},
				DisplayOptions: &domain.DisplayOptions{
					ExcludePreviousOwners: bptr(false),
					ExcludeMot:            bptr(false),
				},
			},
			ImageIDs: []string{"img-1", "img-2"},
		},
		Metadata: &domain.StockMetadata{LifecycleState: sptr("FORECOURT")},
	}
}

// Идемпотентность диффа: change-set, равный текущим значениям, даёт пустой payload.
func TestDiffChangeset_Identity_EmptyPayload(t *testing.T) {
	orig := baseRecord()
	change := &domain.StockChangeset{
		Adverts:  domain.CloneAdverts(orig.Adverts),
		Metadata: domain.CloneMetadata(orig.Metadata),
	}

	if payload := DiffChangeset(orig, change); payload != nil {
		t.Fatalf("expected empty payload for identical changeset, got %+v", payload)
	}
}

func TestDiffChangeset_NilAndEmptyChange(t *testing.T) {
	orig := baseRecord()

	if payload := DiffChangeset(orig, nil); payload != nil {
		t.Fatalf("expected nil payload for nil changeset")
	}
	if payload := DiffChangeset(orig, &domain.StockChangeset{}); payload != nil {
		t.Fatalf("expected nil payload for empty changeset")
	}
}

// Неизменённые top-level ключи не попадают в payload.
func TestDiffChangeset_NoFieldLeak_TopLevel(t *testing.T) {
	orig := baseRecord()
	change := &domain.StockChangeset{
		Adverts: &domain.AdvertsData{
			ForecourtPrice:          money(16000),            // изменено
			ForecourtPriceVatStatus: sptr("Inc VAT"),          // совпадает с оригиналом
			RetailAdverts:           domain.CloneRetailAdverts(orig.Adverts.RetailAdverts), // совпадает
			ImageIDs:                []string{"img-1", "img-2"}, // совпадает
		},
	}

	payload := DiffChangeset(orig, change)
	if payload == nil || payload.Adverts == nil {
		t.Fatalf("expected adverts payload")
	}
	adv := payload.Adverts
	if adv.ForecourtPrice == nil || *adv.ForecourtPrice.AmountGBP != 16000 {
		t.Fatalf("expected changed forecourtPrice in payload, got %+v", adv.ForecourtPrice)
	}
	if adv.ForecourtPriceVatStatus != nil {
		t.Fatalf("unchanged vat status leaked into payload")
	}
	if adv.RetailAdverts != nil {
		t.Fatalf("unchanged retailAdverts leaked into payload")
	}
	if adv.ImageIDs != nil {
		t.Fatalf("unchanged imageIds leaked into payload")
	}
}

// Вложенный объект диффится по ключам, но в payload уходит целиком (слитым).
func TestDiffChangeset_NestedObject_FullMergedOutput(t *testing.T) {
	orig := baseRecord()
	change := &domain.StockChangeset{
		Adverts: &domain.AdvertsData{
			Location: &domain.Location{Town: sptr("York")}, // postcode не прислан
		},
	}

	payload := DiffChangeset(orig, change)
	if payload == nil || payload.Adverts == nil || payload.Adverts.Location == nil {
		t.Fatalf("expected location in payload")
	}
	loc := payload.Adverts.Location
	if loc.Town == nil || *loc.Town != "York" {
		t.Fatalf("expected merged town=York, got %+v", loc.Town)
	}
	// Полный под-объект: неизменённый postcode сохранён из оригинала.
	if loc.Postcode == nil || *loc.Postcode != "LS1 1AA" {
		t.Fatalf("expected full merged location to keep postcode, got %+v", loc.Postcode)
	}
}

// Изменение одного поля retailAdverts не тянет другие top-level ключи.
func TestDiffChangeset_RetailAdverts_KeyByKey(t *testing.T) {
	orig := baseRecord()
	change := &domain.StockChangeset{
		Adverts: &domain.AdvertsData{
			RetailAdverts: &domain.RetailAdverts{VatStatus: sptr("Ex VAT")},
		},
	}

	payload := DiffChangeset(orig, change)
	if payload == nil || payload.Adverts == nil {
		t.Fatalf("expected payload")
	}
	if payload.Adverts.ForecourtPrice != nil || payload.Adverts.Location != nil {
		t.Fatalf("sibling top-level keys leaked into payload")
	}
	ra := payload.Adverts.RetailAdverts
	if ra == nil || ra.VatStatus == nil || *ra.VatStatus != "Ex VAT" {
		t.Fatalf("expected retailAdverts.vatStatus=Ex VAT, got %+v", ra)
	}
	// Транспорт ожидает полный под-объект: остальные поля retailAdverts — из оригинала.
	if ra.Description == nil || *ra.Description != "nice car" {
		t.Fatalf("expected merged retailAdverts to keep description")
	}
}

// Массивы атомарны: заменяются целиком и только при фактическом отличии.
func TestDiffChangeset_ArraysAtomic(t *testing.T) {
	orig := baseRecord()

	same := &domain.StockChangeset{
		Adverts: &domain.AdvertsData{ImageIDs: []string{"img-1", "img-2"}},
	}
	if payload := DiffChangeset(orig, same); payload != nil {
		t.Fatalf("identical array must not produce payload, got %+v", payload)
	}

	replaced := &domain.StockChangeset{
		Adverts: &domain.AdvertsData{ImageIDs: []string{"img-3"}},
	}
	payload := DiffChangeset(orig, replaced)
	if payload == nil || payload.Adverts == nil {
		t.Fatalf("expected payload for changed array")
	}
	got := payload.Adverts.ImageIDs
	if len(got) != 1 || got[0] != "img-3" {
		t.Fatalf("expected array replace, got %v", got)
	}
}

// Очистка массива: пустой не-nil срез в change-set — легальная замена,
// он должен дойти до payload именно пустым не-nil срезом.
func TestDiffChangeset_ArrayClearToEmpty(t *testing.T) {
	orig := baseRecord()
	change := &domain.StockChangeset{
		Adverts: &domain.AdvertsData{ImageIDs: []string{}},
	}

	payload := DiffChangeset(orig, change)
	if payload == nil || payload.Adverts == nil {
		t.Fatalf("expected payload for array clear, got %+v", payload)
	}
	got := payload.Adverts.ImageIDs
	if got == nil {
		t.Fatalf("cleared array must stay non-nil in payload")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty array, got %v", got)
	}

	// Очистка должна дойти и до провода: в JSON поле присутствует как [].
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if !strings.Contains(string(raw), `"imageIds":[]`) {
		t.Fatalf("expected explicit imageIds:[] in payload JSON, got %s", raw)
	}
}

// Дифф против пустого оригинала: всё присланное считается изменением.
func TestDiffChangeset_EmptyOriginal(t *testing.T) {
	orig := &domain.StockRecord{DealerID: "d", StockID: "s"}
	change := &domain.StockChangeset{
		Adverts:  &domain.AdvertsData{ForecourtPrice: money(9000)},
		Metadata: &domain.StockMetadata{LifecycleState: sptr("FORECOURT")},
	}

	payload := DiffChangeset(orig, change)
	if payload == nil || payload.Adverts == nil || payload.Metadata == nil {
		t.Fatalf("expected full payload against empty original, got %+v", payload)
	}
}

// Metadata диффится независимо от adverts.
func TestDiffChangeset_MetadataOnly(t *testing.T) {
	orig := baseRecord()
	change := &domain.StockChangeset{
		Metadata: &domain.StockMetadata{LifecycleState: sptr("SOLD")},
	}

	payload := DiffChangeset(orig, change)
	if payload == nil || payload.Adverts != nil {
		t.Fatalf("expected metadata-only payload, got %+v", payload)
	}
	if payload.Metadata.LifecycleState == nil || *payload.Metadata.LifecycleState != "SOLD" {
		t.Fatalf("expected lifecycleState=SOLD")
	}

	unchanged := &domain.StockChangeset{
		Metadata: &domain.StockMetadata{LifecycleState: sptr("FORECOURT")},
	}
	if payload := DiffChangeset(orig, unchanged); payload != nil {
		t.Fatalf("unchanged metadata must not produce payload")
	}
}
