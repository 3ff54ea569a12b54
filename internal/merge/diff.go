package merge

import (
	"slices"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
)

// DiffChangeset — исходящий дифф: сравнивает клиентский change-set с текущей
// записью и возвращает payload только из реально изменённых полей.
// Пустой результат (nil) означает, что отправлять в Marketplace API нечего.
//
// Вложенные объекты сравниваются по ключам, но изменённый вложенный объект
// попадает в payload целиком (слияние оригинала с изменением): транспортный
// слой ожидает полные под-объекты для ключей, которых касается.
func DiffChangeset(original *domain.StockRecord, change *domain.StockChangeset) *domain.StockChangeset {
	if change.IsEmpty() {
		return nil
	}

	var origAdverts *domain.AdvertsData
	var origMeta *domain.StockMetadata
	if original != nil {
		origAdverts = original.Adverts
		origMeta = original.Metadata
	}

	payload := &domain.StockChangeset{
		Adverts:  diffAdverts(origAdverts, change.Adverts),
		Metadata: diffMetadata(origMeta, change.Metadata),
	}
	if payload.IsEmpty() {
		return nil
	}
	return payload
}

// diffAdverts — дифф рекламного под-документа по top-level ключам.
func diffAdverts(orig, change *domain.AdvertsData) *domain.AdvertsData {
	if change == nil {
		return nil
	}
	if orig == nil {
		orig = &domain.AdvertsData{}
	}

	out := &domain.AdvertsData{}
	changed := false

	if moneyChanged(orig.ForecourtPrice, change.ForecourtPrice) {
		out.ForecourtPrice = domain.CloneMoney(change.ForecourtPrice)
		changed = true
	}
	if strChanged(orig.ForecourtPriceVatStatus, change.ForecourtPriceVatStatus) {
		out.ForecourtPriceVatStatus = change.ForecourtPriceVatStatus
		changed = true
	}
	if strChanged(orig.ReservationStatus, change.ReservationStatus) {
		out.ReservationStatus = change.ReservationStatus
		changed = true
	}
	if locationChanged(orig.Location, change.Location) {
		out.Location = mergeLocation(orig.Location, change.Location)
		changed = true
	}
	if retailAdvertsChanged(orig.RetailAdverts, change.RetailAdverts) {
		out.RetailAdverts = mergeRetailAdverts(orig.RetailAdverts, change.RetailAdverts)
		changed = true
	}
	if tradeAdvertsChanged(orig.TradeAdverts, change.TradeAdverts) {
		out.TradeAdverts = mergeTradeAdverts(orig.TradeAdverts, change.TradeAdverts)
		changed = true
	}
	// Массивы атомарны: сравниваем целиком, заменяем целиком.
	// Пустой не-nil срез — легальная замена (очистка) и должен уйти в payload.
	if change.ImageIDs != nil && !slices.Equal(orig.ImageIDs, change.ImageIDs) {
		out.ImageIDs = domain.CloneStrings(change.ImageIDs)
		changed = true
	}

	if !changed {
		return nil
	}
	return out
}

// diffMetadata — дифф служебного под-документа.
func diffMetadata(orig, change *domain.StockMetadata) *domain.StockMetadata {
	if change == nil {
		return nil
	}
	if orig == nil {
		orig = &domain.StockMetadata{}
	}
	if strChanged(orig.LifecycleState, change.LifecycleState) {
		return &domain.StockMetadata{LifecycleState: change.LifecycleState}
	}
	return nil
}

// ------проверки изменённости по ключам------

// strChanged — поле задано в изменении и отличается от оригинала.
func strChanged(orig, change *string) bool {
	if change == nil {
		return false
	}
	return orig == nil || *orig != *change
}

func boolChanged(orig, change *bool) bool {
	if change == nil {
		return false
	}
	return orig == nil || *orig != *change
}

func floatChanged(orig, change *float64) bool {
	if change == nil {
		return false
	}
	return orig == nil || *orig != *change
}

func moneyChanged(orig, change *domain.Money) bool {
	if change == nil {
		return false
	}
	if orig == nil {
		return change.AmountGBP != nil
	}
	return floatChanged(orig.AmountGBP, change.AmountGBP)
}

func channelStatusChanged(orig, change *domain.ChannelStatus) bool {
	if change == nil {
		return false
	}
	if orig == nil {
		return change.Status != nil
	}
	return strChanged(orig.Status, change.Status)
}

func displayOptionsChanged(orig, change *domain.DisplayOptions) bool {
	if change == nil {
		return false
	}
	if orig == nil {
		orig = &domain.DisplayOptions{}
	}
	return boolChanged(orig.ExcludePreviousOwners, change.ExcludePreviousOwners) ||
		boolChanged(orig.ExcludeStrapline, change.ExcludeStrapline) ||
		boolChanged(orig.ExcludeMot, change.ExcludeMot) ||
		boolChanged(orig.ExcludeWarranty, change.ExcludeWarranty) ||
		boolChanged(orig.ExcludeInteriorDetails, change.ExcludeInteriorDetails)
}

func locationChanged(orig, change *domain.Location) bool {
	if change == nil {
		return false
	}
	if orig == nil {
		orig = &domain.Location{}
	}
	return strChanged(orig.AddressLineOne, change.AddressLineOne) ||
		strChanged(orig.Town, change.Town) ||
		strChanged(orig.County, change.County) ||
		strChanged(orig.Postcode, change.Postcode) ||
		floatChanged(orig.Latitude, change.Latitude) ||
		floatChanged(orig.Longitude, change.Longitude)
}

func retailAdvertsChanged(orig, change *domain.RetailAdverts) bool {
	if change == nil {
		return false
	}
	if orig == nil {
		orig = &domain.RetailAdverts{}
	}
	return moneyChanged(orig.SuppliedPrice, change.SuppliedPrice) ||
		moneyChanged(orig.TotalPrice, change.TotalPrice) ||
		strChanged(orig.VatStatus, change.VatStatus) ||
		strChanged(orig.AttentionGrabber, change.AttentionGrabber) ||
		strChanged(orig.Description, change.Description) ||
		displayOptionsChanged(orig.DisplayOptions, change.DisplayOptions) ||
		channelStatusChanged(orig.AutotraderAdvert, change.AutotraderAdvert) ||
		channelStatusChanged(orig.AdvertiserAdvert, change.AdvertiserAdvert) ||
		channelStatusChanged(orig.LocatorAdvert, change.LocatorAdvert) ||
		channelStatusChanged(orig.ExportAdvert, change.ExportAdvert) ||
		channelStatusChanged(orig.ProfileAdvert, change.ProfileAdvert)
}

func tradeAdvertsChanged(orig, change *domain.TradeAdverts) bool {
	if change == nil {
		return false
	}
	if orig == nil {
		orig = &domain.TradeAdverts{}
	}
	return channelStatusChanged(orig.DealerAuctionAdvert, change.DealerAuctionAdvert)
}
