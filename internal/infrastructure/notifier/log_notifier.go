// Package notifier implements the alert surface. The real deployment sits
// behind a UI that renders toasts; server-side we only log them.
package notifier

import (
	"log"

	"managefarms/internal/usecase/interfaces"
)

type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) ShowAlert(message, indicator string, seconds int) {
	log.Printf("[notifier] alert indicator=%s seconds=%d message=%q", indicator, seconds, message)
}
