// Package form models the per-document entry form of a work order: which
// staging section is active, which line-item tables are revealed, and the
// transient staging selections a new line item is composed from.
package form

import "managefarms/internal/domain/entities"

// Focus is a hint telling the presentation layer which staging field should
// receive input next.

type Focus string

const (
	FocusNone     Focus = ""
	FocusItem     Focus = "item"
	FocusQuantity Focus = "quantity"
	FocusUnit     Focus = "unit"
	FocusCount    Focus = "count"
)

// EventKind enumerates the transitions of the visibility state machine.

type EventKind string

const (
	// EventActivate shows one category's staging group and hides the others.
	EventActivate EventKind = "activate"
	// EventLineAppended hides the active staging group and reveals the
	// category's table.
	EventLineAppended EventKind = "line_appended"
	// EventReload recovers visibility from the document's current rows.
	EventReload EventKind = "reload"
	// EventUnitResolved advances focus once the staging unit is filled.
	EventUnitResolved EventKind = "unit_resolved"
	// EventFinalize forces all tables visible, read-only (submit/cancel).
	EventFinalize EventKind = "finalize"
)

// Event is one input to State.Apply.
type Event struct {
	Kind     EventKind
	Category entities.Category
	// Rows carries per-category row counts for EventReload.
	Rows map[entities.Category]int
}

// State is the explicit section-visibility state: at most one active staging
// group plus three independent table-visible flags.
type State struct {
	// Active is the category whose staging group is shown; empty means none.
	Active entities.Category
	// TableVisible tracks which category tables are revealed. Once a table
	// is visible it stays visible while it has rows.
	TableVisible map[entities.Category]bool
	// Focus is the staging field input should land on.
	Focus Focus
	// ReadOnly is set once the document leaves Draft.
	ReadOnly bool
}

// NewState returns the initial state: nothing active, nothing visible.
func NewState() State {
	return State{TableVisible: map[entities.Category]bool{}}
}

// Apply is the single transition function for the visibility machine.
func (s *State) Apply(ev Event) {
	switch ev.Kind {
	case EventActivate:
		if s.ReadOnly || !ev.Category.Valid() {
			return
		}
		s.Active = ev.Category
		s.Focus = FocusItem
	case EventLineAppended:
		if !ev.Category.Valid() {
			return
		}
		s.Active = ""
		s.Focus = FocusNone
		s.TableVisible[ev.Category] = true
	case EventUnitResolved:
		if s.Active == ev.Category {
			s.Focus = FocusCount
		}
	case EventReload:
		s.Active = ""
		s.Focus = FocusNone
		for _, c := range entities.Categories() {
			s.TableVisible[c] = ev.Rows[c] > 0
		}
	case EventFinalize:
		s.Active = ""
		s.Focus = FocusNone
		s.ReadOnly = true
		for _, c := range entities.Categories() {
			s.TableVisible[c] = true
		}
	}
}
