package domain

import (
	"encoding/json"
	"time"
)

// Money — денежная сумма в фунтах (GBP), как её отдаёт Marketplace API.
type Money struct {
	AmountGBP *float64 `json:"amountGBP,omitempty"`
}

// ChannelStatus — статус публикации объявления в конкретном канале.
type ChannelStatus struct {
	Status *string `json:"status,omitempty"` // PUBLISHED | NOT_PUBLISHED
}

// DisplayOptions — опции отображения объявления (вложенный объект retailAdverts).
type DisplayOptions struct {
	ExcludePreviousOwners  *bool `json:"excludePreviousOwners,omitempty"`
	ExcludeStrapline       *bool `json:"excludeStrapline,omitempty"`
	ExcludeMot             *bool `json:"excludeMot,omitempty"`
	ExcludeWarranty        *bool `json:"excludeWarranty,omitempty"`
	ExcludeInteriorDetails *bool `json:"excludeInteriorDetails,omitempty"`
}

// Location — адрес площадки, на которой выставлен автомобиль.
type Location struct {
	AddressLineOne *string  `json:"addressLineOne,omitempty"`
	Town           *string  `json:"town,omitempty"`
	County         *string  `json:"county,omitempty"`
	Postcode       *string  `json:"postcode,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
}

// RetailAdverts — розничная часть рекламного под-документа.
type RetailAdverts struct {
	SuppliedPrice    *Money          `json:"suppliedPrice,omitempty"`
	TotalPrice       *Money          `json:"totalPrice,omitempty"`
	VatStatus        *string         `json:"vatStatus,omitempty"` // "Inc VAT" | "Ex VAT" | "No VAT"
	AttentionGrabber *string         `json:"attentionGrabber,omitempty"`
	Description      *string         `json:"description,omitempty"`
	DisplayOptions   *DisplayOptions `json:"displayOptions,omitempty"`
	AutotraderAdvert *ChannelStatus  `json:"autotraderAdvert,omitempty"`
	AdvertiserAdvert *ChannelStatus  `json:"advertiserAdvert,omitempty"`
	LocatorAdvert    *ChannelStatus  `json:"locatorAdvert,omitempty"`
	ExportAdvert     *ChannelStatus  `json:"exportAdvert,omitempty"`
	ProfileAdvert    *ChannelStatus  `json:"profileAdvert,omitempty"`
}

// TradeAdverts — трейдовая часть рекламного под-документа.
type TradeAdverts struct {
	DealerAuctionAdvert *ChannelStatus `json:"dealerAuctionAdvert,omitempty"`
}

// AdvertsData — рекламный под-документ записи stock.
// Поля-указатели: nil означает «поле не задано» (важно для частичных обновлений).
type AdvertsData struct {
	ForecourtPrice          *Money         `json:"forecourtPrice,omitempty"`
	ForecourtPriceVatStatus *string        `json:"forecourtPriceVatStatus,omitempty"`
	ReservationStatus       *string        `json:"reservationStatus,omitempty"`
	Location                *Location      `json:"location,omitempty"`
	RetailAdverts           *RetailAdverts `json:"retailAdverts,omitempty"`
	TradeAdverts            *TradeAdverts  `json:"tradeAdverts,omitempty"`
	ImageIDs                []string       `json:"imageIds,omitempty"`
}

// advertsDataJSON — алиас без методов, чтобы MarshalJSON не зациклился.
type advertsDataJSON AdvertsData

// MarshalJSON — для imageIds различие «nil — поле не задано» и «пустой
// срез — явная очистка» должно дойти до провода: omitempty опустил бы
// оба, поэтому пустой не-nil срез сериализуется явно как [].
func (a AdvertsData) MarshalJSON() ([]byte, error) {
	if a.ImageIDs == nil {
		return json.Marshal(advertsDataJSON(a))
	}
	return json.Marshal(struct {
		advertsDataJSON
		ImageIDs []string `json:"imageIds"`
	}{advertsDataJSON(a), a.ImageIDs})
}

// StockMetadata — служебный под-документ (жизненный цикл записи).
type StockMetadata struct {
	LifecycleState *string `json:"lifecycleState,omitempty"` // FORECOURT | SALE_IN_PROGRESS | SOLD | DELETED ...
}

// VehicleData — данные автомобиля. Через PATCH не изменяются,
// приходят только при чтении записи из Marketplace API.
type VehicleData struct {
	Registration         *string `json:"registration,omitempty"`
	Vin                  *string `json:"vin,omitempty"`
	Make                 *string `json:"make,omitempty"`
	Model                *string `json:"model,omitempty"`
	Derivative           *string `json:"derivative,omitempty"`
	OdometerReadingMiles *int    `json:"odometerReadingMiles,omitempty"`
}

// StockChangeset — частичное изменение записи stock: то, что клиент хочет
// записать, либо то, что Marketplace API вернул в ответ на запись.
type StockChangeset struct {
	Adverts  *AdvertsData   `json:"adverts,omitempty"`
	Metadata *StockMetadata `json:"metadata,omitempty"`
}

// IsEmpty — true, если изменение не содержит ни одного под-документа.
func (c *StockChangeset) IsEmpty() bool {
	return c == nil || (c.Adverts == nil && c.Metadata == nil)
}

// StockRecord — единица кэша stock, ключ (DealerID, StockID).
// Под-документы хранятся как есть; плоские колонки — производные от них
// и пересчитываются только движком слияния.
type StockRecord struct {
	DealerID string `json:"dealerId"`
	StockID  string `json:"stockId"`

	Vehicle  *VehicleData   `json:"vehicle,omitempty"`
	Adverts  *AdvertsData   `json:"adverts,omitempty"`
	Metadata *StockMetadata `json:"metadata,omitempty"`

	ForecourtPriceGBP *float64 `json:"forecourtPriceGBP,omitempty"`
	TotalPriceGBP     *float64 `json:"totalPriceGBP,omitempty"`
	LifecycleState    string   `json:"lifecycleState,omitempty"`
	Registration      string   `json:"registration,omitempty"`
	Make              string   `json:"make,omitempty"`
	Model             string   `json:"model,omitempty"`

	LastFetchedAt time.Time `json:"lastFetchedAt"`
}

// StockPatch — частичная запись в хранилище: пишутся только непустые поля,
// остальные колонки не трогаются. Глубокого слияния на этом уровне нет.
type StockPatch struct {
	Vehicle  *VehicleData
	Adverts  *AdvertsData
	Metadata *StockMetadata

	ForecourtPriceGBP *float64
	TotalPriceGBP     *float64
	LifecycleState    *string
	Registration      *string
	Make              *string
	Model             *string

	LastFetchedAt *time.Time
}

// StockReadResult — запись плюс аннотация свежести для читателя.
// Устаревшая запись всё равно отдаётся, но помечается флагом Stale.
type StockReadResult struct {
	Record   *StockRecord  `json:"record"`
	CacheAge time.Duration `json:"cacheAge"`
	Stale    bool          `json:"stale"`
}

// UpdateResult — итог операции обновления записи.
// Warnings — не фатальные сбои пост-обработки (кэш, VAT-синхронизация,
// публикация события): основная запись в Marketplace уже состоялась.
type UpdateResult struct {
	Record    *StockRecord    `json:"record"`
	Sent      *StockChangeset `json:"sent,omitempty"`
	NoChanges bool            `json:"noChanges"`
	Warnings  []string        `json:"warnings,omitempty"`
}
