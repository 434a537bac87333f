package entities

// PriceListStandardSelling is the fixed price list consulted when pricing
// work order line items.
const PriceListStandardSelling = "Standard Selling"

// CatalogItem is a priced resource (equipment, raw material or labor type)
// resolvable by the lookup pipeline. UnitOfMeasure may be empty when the
// item has none configured; callers treat that as a soft miss.
type CatalogItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Group         string `json:"group"`
	UnitOfMeasure string `json:"unit_of_measure"`
}

// PriceListEntry is one rate for an item on a named price list.
//
// Storage model (DynamoDB):
//   - PK: item_id, SK: price_list
type PriceListEntry struct {
	ItemID    string  `json:"item_id"`
	PriceList string  `json:"price_list"`
	Rate      float64 `json:"rate"`
}
