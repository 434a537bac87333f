package interfaces

import (
	"context"

	"managefarms/internal/domain/entities"
)

// ICatalogRepository abstracts DynamoDB persistence for catalog items and
// price-list entries. A zero-ID result means the item/entry does not exist;
// callers treat that as a soft lookup miss, not an error.

type ICatalogRepository interface {
	GetItem(ctx context.Context, id string) (entities.CatalogItem, error)
	GetPrice(ctx context.Context, itemID, priceList string) (entities.PriceListEntry, error)
}
