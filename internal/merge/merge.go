package merge

import "github.com/Gunvolt24/dealer_backoffice/internal/domain"

// Слияние «overlay поверх base»: заданные (non-nil) поля overlay заменяют
// поля base, вложенные объекты сливаются рекурсивно, массивы заменяются
// целиком. Результат — всегда новые значения, base и overlay не мутируются.

// MergeAdverts — слияние рекламных под-документов.
func MergeAdverts(base, overlay *domain.AdvertsData) *domain.AdvertsData {
	if overlay == nil {
		return domain.CloneAdverts(base)
	}
	if base == nil {
		return domain.CloneAdverts(overlay)
	}

	out := &domain.AdvertsData{
		ForecourtPrice:          mergeMoney(base.ForecourtPrice, overlay.ForecourtPrice),
		ForecourtPriceVatStatus: mergeStr(base.ForecourtPriceVatStatus, overlay.ForecourtPriceVatStatus),
		ReservationStatus:       mergeStr(base.ReservationStatus, overlay.ReservationStatus),
		Location:                mergeLocation(base.Location, overlay.Location),
		RetailAdverts:           mergeRetailAdverts(base.RetailAdverts, overlay.RetailAdverts),
		TradeAdverts:            mergeTradeAdverts(base.TradeAdverts, overlay.TradeAdverts),
	}
	// Пустой не-nil срез overlay — явная очистка, а не «поле не задано».
	switch {
	case overlay.ImageIDs != nil:
		out.ImageIDs = domain.CloneStrings(overlay.ImageIDs)
	case base.ImageIDs != nil:
		out.ImageIDs = domain.CloneStrings(base.ImageIDs)
	}
	return out
}

// MergeMetadata — слияние служебных под-документов.
func MergeMetadata(base, overlay *domain.StockMetadata) *domain.StockMetadata {
	if overlay == nil {
		return domain.CloneMetadata(base)
	}
	if base == nil {
		return domain.CloneMetadata(overlay)
	}
	return &domain.StockMetadata{
		LifecycleState: mergeStr(base.LifecycleState, overlay.LifecycleState),
	}
}

// ------слияние вложенных объектов------

func mergeStr(base, overlay *string) *string {
	if overlay != nil {
		v := *overlay
		return &v
	}
	if base != nil {
		v := *base
		return &v
	}
	return nil
}

func mergeBool(base, overlay *bool) *bool {
	if overlay != nil {
		v := *overlay
		return &v
	}
	if base != nil {
		v := *base
		return &v
	}
	return nil
}

func mergeFloat(base, overlay *float64) *float64 {
	if overlay != nil {
		v := *overlay
		return &v
	}
	if base != nil {
		v := *base
		return &v
	}
	return nil
}

func mergeMoney(base, overlay *domain.Money) *domain.Money {
	if overlay == nil {
		return domain.CloneMoney(base)
	}
	if base == nil {
		return domain.CloneMoney(overlay)
	}
	return &domain.Money{AmountGBP: mergeFloat(base.AmountGBP, overlay.AmountGBP)}
}

func mergeChannelStatus(base, overlay *domain.ChannelStatus) *domain.ChannelStatus {
	if overlay == nil {
		return domain.CloneChannelStatus(base)
	}
	if base == nil {
		return domain.CloneChannelStatus(overlay)
	}
	return &domain.ChannelStatus{Status: mergeStr(base.Status, overlay.Status)}
}

func mergeDisplayOptions(base, overlay *domain.DisplayOptions) *domain.DisplayOptions {
	if overlay == nil {
		return domain.CloneDisplayOptions(base)
	}
	if base == nil {
		return domain.CloneDisplayOptions(overlay)
	}
	return &domain.DisplayOptions{
		ExcludePreviousOwners:  mergeBool(base.ExcludePreviousOwners, overlay.ExcludePreviousOwners),
		ExcludeStrapline:       mergeBool(base.ExcludeStrapline, overlay.ExcludeStrapline),
		ExcludeMot:             mergeBool(base.ExcludeMot, overlay.ExcludeMot),
		ExcludeWarranty:        mergeBool(base.ExcludeWarranty, overlay.ExcludeWarranty),
		ExcludeInteriorDetails: mergeBool(base.ExcludeInteriorDetails, overlay.ExcludeInteriorDetails),
	}
}

func mergeLocation(base, overlay *domain.Location) *domain.Location {
	if overlay == nil {
		return domain.CloneLocation(base)
	}
	if base == nil {
		return domain.CloneLocation(overlay)
	}
	return &domain.Location{
		AddressLineOne: mergeStr(base.AddressLineOne, overlay.AddressLineOne),
		Town:           mergeStr(base.Town, overlay.Town),
		County:         mergeStr(base.County, overlay.County),
		Postcode:       mergeStr(base.Postcode, overlay.Postcode),
		Latitude:       mergeFloat(base.Latitude, overlay.Latitude),
		Longitude:      mergeFloat(base.Longitude, overlay.Longitude),
	}
}

func mergeRetailAdverts(base, overlay *domain.RetailAdverts) *domain.RetailAdverts {
	if overlay == nil {
		return domain.CloneRetailAdverts(base)
	}
	if base == nil {
		return domain.CloneRetailAdverts(overlay)
	}
	return &domain.RetailAdverts{
		SuppliedPrice:    mergeMoney(base.SuppliedPrice, overlay.SuppliedPrice),
		TotalPrice:       mergeMoney(base.TotalPrice, overlay.TotalPrice),
		VatStatus:        mergeStr(base.VatStatus, overlay.VatStatus),
		AttentionGrabber: mergeStr(base.AttentionGrabber, overlay.AttentionGrabber),
		Description:      mergeStr(base.Description, overlay.Description),
		DisplayOptions:   mergeDisplayOptions(base.DisplayOptions, overlay.DisplayOptions),
		AutotraderAdvert: mergeChannelStatus(base.AutotraderAdvert, overlay.AutotraderAdvert),
		AdvertiserAdvert: mergeChannelStatus(base.AdvertiserAdvert, overlay.AdvertiserAdvert),
		LocatorAdvert:    mergeChannelStatus(base.LocatorAdvert, overlay.LocatorAdvert),
		ExportAdvert:     mergeChannelStatus(base.ExportAdvert, overlay.ExportAdvert),
		ProfileAdvert:    mergeChannelStatus(base.ProfileAdvert, overlay.ProfileAdvert),
	}
}

func mergeTradeAdverts(base, overlay *domain.TradeAdverts) *domain.TradeAdverts {
	if overlay == nil {
		return domain.CloneTradeAdverts(base)
	}
	if base == nil {
		return domain.CloneTradeAdverts(overlay)
	}
	return &domain.TradeAdverts{
		DealerAuctionAdvert: mergeChannelStatus(base.DealerAuctionAdvert, overlay.DealerAuctionAdvert),
	}
}
