package domain

// Копирующие помощники: кэши и движок слияния никогда не отдают наружу
// указатели на внутренние данные — только копии.

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloatPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneBoolPtr(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CloneStrings — копия среза строк. Пустой не-nil срез остаётся пустым
// не-nil срезом: для массивов это различие значимо (nil — «не задано»,
// пустой — «явная очистка»).
func CloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}

// CloneMoney — копия денежной суммы.
func CloneMoney(m *Money) *Money {
	if m == nil {
		return nil
	}
	return &Money{AmountGBP: cloneFloatPtr(m.AmountGBP)}
}

// CloneChannelStatus — копия статуса канала.
func CloneChannelStatus(c *ChannelStatus) *ChannelStatus {
	if c == nil {
		return nil
	}
	return &ChannelStatus{Status: cloneStringPtr(c.Status)}
}

// CloneDisplayOptions — копия опций отображения.
func CloneDisplayOptions(d *DisplayOptions) *DisplayOptions {
	if d == nil {
		return nil
	}
	return &DisplayOptions{
		ExcludePreviousOwners:  cloneBoolPtr(d.ExcludePreviousOwners),
		ExcludeStrapline:       cloneBoolPtr(d.ExcludeStrapline),
		ExcludeMot:             cloneBoolPtr(d.ExcludeMot),
		ExcludeWarranty:        cloneBoolPtr(d.ExcludeWarranty),
		ExcludeInteriorDetails: cloneBoolPtr(d.ExcludeInteriorDetails),
	}
}

// CloneLocation — копия адреса площадки.
func CloneLocation(l *Location) *Location {
	if l == nil {
		return nil
	}
	return &Location{
		AddressLineOne: cloneStringPtr(l.AddressLineOne),
		Town:           cloneStringPtr(l.Town),
		County:         cloneStringPtr(l.County),
		Postcode:       cloneStringPtr(l.Postcode),
		Latitude:       cloneFloatPtr(l.Latitude),
		Longitude:      cloneFloatPtr(l.Longitude),
	}
}

// CloneRetailAdverts — копия розничной части объявления.
func CloneRetailAdverts(r *RetailAdverts) *RetailAdverts {
	if r == nil {
		return nil
	}
	return &RetailAdverts{
		SuppliedPrice:    CloneMoney(r.SuppliedPrice),
		TotalPrice:       CloneMoney(r.TotalPrice),
		VatStatus:        cloneStringPtr(r.VatStatus),
		AttentionGrabber: cloneStringPtr(r.AttentionGrabber),
		Description:      cloneStringPtr(r.Description),
		DisplayOptions:   CloneDisplayOptions(r.DisplayOptions),
		AutotraderAdvert: CloneChannelStatus(r.AutotraderAdvert),
		AdvertiserAdvert: CloneChannelStatus(r.AdvertiserAdvert),
		LocatorAdvert:    CloneChannelStatus(r.LocatorAdvert),
		ExportAdvert:     CloneChannelStatus(r.ExportAdvert),
		ProfileAdvert:    CloneChannelStatus(r.ProfileAdvert),
	}
}

// CloneTradeAdverts — копия трейдовой части объявления.
func CloneTradeAdverts(tr *TradeAdverts) *TradeAdverts {
	if tr == nil {
		return nil
	}
	return &TradeAdverts{DealerAuctionAdvert: CloneChannelStatus(tr.DealerAuctionAdvert)}
}

// CloneAdverts — глубокая копия рекламного под-документа.
func CloneAdverts(a *AdvertsData) *AdvertsData {
	if a == nil {
		return nil
	}
	clone := &AdvertsData{
		ForecourtPrice:          CloneMoney(a.ForecourtPrice),
		ForecourtPriceVatStatus: cloneStringPtr(a.ForecourtPriceVatStatus),
		ReservationStatus:       cloneStringPtr(a.ReservationStatus),
		Location:                CloneLocation(a.Location),
		RetailAdverts:           CloneRetailAdverts(a.RetailAdverts),
		TradeAdverts:            CloneTradeAdverts(a.TradeAdverts),
	}
	clone.ImageIDs = CloneStrings(a.ImageIDs)
	return clone
}

// CloneMetadata — копия служебного под-документа.
func CloneMetadata(m *StockMetadata) *StockMetadata {
	if m == nil {
		return nil
	}
	return &StockMetadata{LifecycleState: cloneStringPtr(m.LifecycleState)}
}

// CloneVehicle — копия данных автомобиля.
func CloneVehicle(v *VehicleData) *VehicleData {
	if v == nil {
		return nil
	}
	return &VehicleData{
		Registration:         cloneStringPtr(v.Registration),
		Vin:                  cloneStringPtr(v.Vin),
		Make:                 cloneStringPtr(v.Make),
		Model:                cloneStringPtr(v.Model),
		Derivative:           cloneStringPtr(v.Derivative),
		OdometerReadingMiles: cloneIntPtr(v.OdometerReadingMiles),
	}
}

// CloneChangeset — копия частичного изменения.
func CloneChangeset(c *StockChangeset) *StockChangeset {
	if c == nil {
		return nil
	}
	return &StockChangeset{
		Adverts:  CloneAdverts(c.Adverts),
		Metadata: CloneMetadata(c.Metadata),
	}
}

// CloneStockRecord — глубокая копия записи stock.
func CloneStockRecord(r *StockRecord) *StockRecord {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Vehicle = CloneVehicle(r.Vehicle)
	clone.Adverts = CloneAdverts(r.Adverts)
	clone.Metadata = CloneMetadata(r.Metadata)
	clone.ForecourtPriceGBP = cloneFloatPtr(r.ForecourtPriceGBP)
	clone.TotalPriceGBP = cloneFloatPtr(r.TotalPriceGBP)
	return &clone
}

// CloneToken — копия закэшированного токена.
func CloneToken(t *CachedToken) *CachedToken {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}
