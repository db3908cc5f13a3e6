package bs7671

import (
	"fmt"
	"sort"
)

// Availability is a supplier stock status.
type Availability string

const (
	InStock      Availability = "In Stock"
	LowStock     Availability = "Low Stock"
	OutOfStock   Availability = "Out of Stock"
	SpecialOrder Availability = "Special Order"
)

// SupplierPrices are retail prices per metre at named UK suppliers.
type SupplierPrices struct {
	Screwfix    float64 `json:"screwfix"`
	CEF         float64 `json:"cef"`
	Edmundson   float64 `json:"edmundson"`
	Toolstation float64 `json:"toolstation"`
}

// BulkDiscounts are percentage discounts by order length.
type BulkDiscounts struct {
	Qty100m  float64 `json:"qty100m"`
	Qty500m  float64 `json:"qty500m"`
	Qty1000m float64 `json:"qty1000m"`
}

// CablePrice is the price of one size per metre (GBP).
type CablePrice struct {
	SizeMm2      float64        `json:"sizeMm2"`
	Wholesale    float64        `json:"wholesale"`
	Retail       float64        `json:"retail"`
	Suppliers    SupplierPrices `json:"suppliers"`
	Availability Availability   `json:"availability"`
	LeadTimeDays int            `json:"leadTimeDays"`
	Bulk         BulkDiscounts  `json:"bulkDiscounts"`
}

// Price returns the price of size for the cable type.
func (c CableType) Price(size float64) (CablePrice, bool) {
	for _, p := range c.pricing {
		if p.SizeMm2 == size {
			return p, true
		}
	}
	return CablePrice{}, false
}

// Prices returns a copy of the cable type's price list.
func (c CableType) Prices() []CablePrice {
	return append([]CablePrice(nil), c.pricing...)
}

// Alternative is a cheaper cable type available in the same size.
type Alternative struct {
	CableType string  `json:"cableType"`
	SizeMm2   float64 `json:"sizeMm2"`
	Retail    float64 `json:"retail"`
	Savings   float64 `json:"savings"`
}

// CostEffectiveAlternatives lists the cable types offered in size at a retail
// price per metre below that of cableType and within maxRetail, largest
// saving first.
func CostEffectiveAlternatives(cableType string, size, maxRetail float64) ([]Alternative, error) {
	ct, ok := CableDatabase[cableType]
	if !ok {
		return nil, fmt.Errorf("unknown cable type %q", cableType)
	}
	current, ok := ct.Price(size)
	if !ok {
		return nil, fmt.Errorf("cable type %q has no price for %s mm²", cableType, sizeLabel(size))
	}

	alternatives := []Alternative{}
	for _, key := range CableTypeKeys() {
		p, ok := CableDatabase[key].Price(size)
		if !ok || p.Retail > maxRetail || p.Retail >= current.Retail {
			continue
		}
		alternatives = append(alternatives, Alternative{
			CableType: key,
			SizeMm2:   size,
			Retail:    p.Retail,
			Savings:   current.Retail - p.Retail,
		})
	}
	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].Savings > alternatives[j].Savings
	})
	return alternatives, nil
}
