package interfaces

// Realtime event names carried by the bus.
const (
	EventPDFGenerated = "pdf_generated"
	EventPlotUpdated  = "plot_updated"
)

// IRealtimeBus abstracts the realtime channel used for document events.
// Delivery is fire-and-forget; no ordering or delivery guarantee is part of
// the contract.

type IRealtimeBus interface {
	Publish(event string, payload map[string]any)
	// Subscribe registers a handler and returns its unsubscribe function.
	Subscribe(event string, handler func(payload map[string]any)) (unsubscribe func())
}
