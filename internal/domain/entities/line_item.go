package entities

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// Category identifies one of the three resource tables of a work order.

type Category string

const (
	CategoryEquipment Category = "equipment"
	CategoryMaterial  Category = "material"
	CategoryLabor     Category = "labor"
)

// Categories lists the resource categories in form entry order.
func Categories() []Category {
	return []Category{CategoryEquipment, CategoryMaterial, CategoryLabor}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryEquipment, CategoryMaterial, CategoryLabor:
		return true
	}
	return false
}

// countPrefixPattern matches a multiplier prefix such as "3 " in "3 Tractor".
var countPrefixPattern = regexp.MustCompile(`^[0-9]+\s`)

// LineItem is one priced row within a work order's equipment/material/labor
// table.
//
// Invariants:
//   - TotalPrice == UnitPrice × Quantity × max(Count, 1)
//   - DisplayName's leading numeric prefix, if present, equals Count. The
//     prefix is re-derived on every normalization, never accumulated.
type LineItem struct {
	ItemID      string  `json:"item_id"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Count       int     `json:"count"`
	TotalPrice  float64 `json:"total_price"`
}

// NewLineItem builds a priced row from resolved catalog data. Count values
// below 1 are treated as 1.
func NewLineItem(itemID, name string, quantity float64, unit string, unitPrice float64, count int) LineItem {
	if count < 1 {
		count = 1
	}
	display := DisplayNameWithCount(name, count)
	return LineItem{
		ItemID:      itemID,
		Name:        display,
		DisplayName: display,
		Quantity:    quantity,
		Unit:        unit,
		UnitPrice:   unitPrice,
		Count:       count,
		TotalPrice:  LineTotal(unitPrice, quantity, count),
	}
}

// LineTotal computes unit price × quantity × max(count, 1).
func LineTotal(unitPrice, quantity float64, count int) float64 {
	if count < 1 {
		count = 1
	}
	total := decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromFloat(quantity)).
		Mul(decimal.NewFromInt(int64(count)))
	f, _ := total.Float64()
	return f
}

// DisplayNameWithCount prefixes the name with the count only when count > 1.
func DisplayNameWithCount(name string, count int) string {
	if count > 1 {
		return fmt.Sprintf("%d %s", count, name)
	}
	return name
}

// NormalizeDisplayName strips any existing multiplier prefix and reapplies
// the current count. Stripping first keeps repeated normalization from
// compounding ("3 3 Tractor").
func NormalizeDisplayName(displayName string, count int) string {
	base := countPrefixPattern.ReplaceAllString(displayName, "")
	return DisplayNameWithCount(base, count)
}
