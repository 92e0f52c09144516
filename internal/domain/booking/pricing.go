package booking

import "hotel-booking/internal/domain/money"

type PriceCalculator interface {
	Total(nightly money.Money, stay Stay) (money.Money, error)
}

type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (NightlyPriceCalculator) Total(nightly money.Money, stay Stay) (money.Money, error) {
	return nightly.Times(stay.Nights())
}
