package interfaces

// INotifier abstracts the toast/alert surface. Fire-and-forget; no contract
// on delivery.

type INotifier interface {
	ShowAlert(message, indicator string, seconds int)
}
