package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"managefarms/internal/domain/entities"
	"managefarms/internal/usecase/interfaces"

	gocache "github.com/patrickmn/go-cache"
)

var ErrInvalidItemID = errors.New("invalid item id")

const (
	catalogCacheTTL     = 5 * time.Minute
	catalogCacheCleanup = 10 * time.Minute
)

// CatalogLookupUseCase resolves catalog item attributes with a read-through
// cache in front of the repository. Lookup misses are soft: the caller gets
// (zero, false, nil) and decides whether the dependent step runs.

type CatalogLookupUseCase struct {
	repo  interfaces.ICatalogRepository
	cache *gocache.Cache
}

var _ interfaces.ICatalogLookup = (*CatalogLookupUseCase)(nil)

func NewCatalogLookupUseCase(repo interfaces.ICatalogRepository) *CatalogLookupUseCase {
	return &CatalogLookupUseCase{
		repo:  repo,
		cache: gocache.New(catalogCacheTTL, catalogCacheCleanup),
	}
}

func (u *CatalogLookupUseCase) ResolveName(ctx context.Context, itemID string) (string, bool, error) {
	item, found, err := u.item(ctx, itemID)
	if err != nil || !found {
		return "", false, err
	}
	return item.Name, item.Name != "", nil
}

func (u *CatalogLookupUseCase) ResolveDescription(ctx context.Context, itemID string) (string, bool, error) {
	item, found, err := u.item(ctx, itemID)
	if err != nil || !found {
		return "", false, err
	}
	return item.Description, item.Description != "", nil
}

// ResolveUnit returns the item's configured unit of measure. Items without
// one yield a miss and the staging unit field is simply left unset.
func (u *CatalogLookupUseCase) ResolveUnit(ctx context.Context, itemID string) (string, bool, error) {
	item, found, err := u.item(ctx, itemID)
	if err != nil || !found {
		return "", false, err
	}
	return item.UnitOfMeasure, item.UnitOfMeasure != "", nil
}

// ResolvePrice looks up the item's rate on the Standard Selling price list.
// A missing entry is a miss, never a zero-priced result.
func (u *CatalogLookupUseCase) ResolvePrice(ctx context.Context, itemID string) (float64, bool, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return 0, false, ErrInvalidItemID
	}

	cacheKey := "price/" + itemID
	if v, ok := u.cache.Get(cacheKey); ok {
		entry := v.(entities.PriceListEntry)
		return entry.Rate, entry.ItemID != "", nil
	}

	entry, err := u.repo.GetPrice(ctx, itemID, entities.PriceListStandardSelling)
	if err != nil {
		log.Printf("[catalog][usecase] price lookup failed item_id=%s err=%v", itemID, err)
		return 0, false, err
	}
	u.cache.Set(cacheKey, entry, gocache.DefaultExpiration)
	if entry.ItemID == "" {
		return 0, false, nil
	}
	return entry.Rate, true, nil
}

func (u *CatalogLookupUseCase) item(ctx context.Context, itemID string) (entities.CatalogItem, bool, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.CatalogItem{}, false, ErrInvalidItemID
	}

	cacheKey := "item/" + itemID
	if v, ok := u.cache.Get(cacheKey); ok {
		item := v.(entities.CatalogItem)
		return item, item.ID != "", nil
	}

	item, err := u.repo.GetItem(ctx, itemID)
	if err != nil {
		log.Printf("[catalog][usecase] item lookup failed item_id=%s err=%v", itemID, err)
		return entities.CatalogItem{}, false, err
	}
	u.cache.Set(cacheKey, item, gocache.DefaultExpiration)
	return item, item.ID != "", nil
}
