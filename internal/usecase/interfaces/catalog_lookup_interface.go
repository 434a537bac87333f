package interfaces

import "context"

// ICatalogLookup resolves catalog attributes for the line-item pipeline.
// The boolean result distinguishes a soft miss (item/price not configured)
// from an infrastructure error; misses silently abort the dependent step.

type ICatalogLookup interface {
	ResolveName(ctx context.Context, itemID string) (string, bool, error)
	ResolveDescription(ctx context.Context, itemID string) (string, bool, error)
	ResolveUnit(ctx context.Context, itemID string) (string, bool, error)
	// ResolvePrice consults the Standard Selling price list.
	ResolvePrice(ctx context.Context, itemID string) (float64, bool, error)
}
