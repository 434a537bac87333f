package form

import (
	"strings"
	"sync"

	"managefarms/internal/domain/entities"
)

// StagingSelection is the transient input state for composing one new line
// item. It lives only in the form session and is never persisted on the
// work order.
type StagingSelection struct {
	ItemID   string  `json:"item_id"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Count    int     `json:"count"`
}

// Complete reports whether item, quantity and unit are all filled. Count is
// optional and defaults to 1 downstream.
func (s StagingSelection) Complete() bool {
	return strings.TrimSpace(s.ItemID) != "" && s.Quantity > 0 && strings.TrimSpace(s.Unit) != ""
}

// Session is the per-document form state owned by a controller instance,
// with explicit init (open) and teardown (close). It replaces the ambient
// flags the legacy form stored on the open-form object.
type Session struct {
	mu sync.Mutex

	docName   string
	order     entities.WorkOrder
	persisted bool
	state     State
	staging   map[entities.Category]*StagingSelection
}

// NewSession opens a form session over a document. Visibility is recovered
// from the document's current rows; submitted and cancelled documents come
// up read-only with all tables shown.
func NewSession(order entities.WorkOrder, persisted bool) *Session {
	s := &Session{
		docName:   order.ID,
		order:     order,
		persisted: persisted,
		state:     NewState(),
		staging:   map[entities.Category]*StagingSelection{},
	}
	for _, c := range entities.Categories() {
		s.staging[c] = &StagingSelection{}
	}
	if order.Immutable() {
		s.state.Apply(Event{Kind: EventFinalize})
	} else {
		s.state.Apply(Event{Kind: EventReload, Rows: s.rowCounts()})
	}
	return s
}

func (s *Session) rowCounts() map[entities.Category]int {
	return map[entities.Category]int{
		entities.CategoryEquipment: len(s.order.Equipment),
		entities.CategoryMaterial:  len(s.order.Material),
		entities.CategoryLabor:     len(s.order.Labor),
	}
}

// DocName returns the document identifier this session is bound to.
func (s *Session) DocName() string { return s.docName }

// Order returns a copy of the session's working document.
func (s *Session) Order() entities.WorkOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order
}

// SetOrder replaces the working document (reloads, post-save refreshes).
func (s *Session) SetOrder(order entities.WorkOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = order
	if order.Immutable() {
		s.state.Apply(Event{Kind: EventFinalize})
	}
}

// Mutate applies fn to the working document under the session lock.
func (s *Session) Mutate(fn func(order *entities.WorkOrder)) entities.WorkOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.order)
	return s.order
}

// Persisted reports whether the document has ever been saved.
func (s *Session) Persisted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persisted
}

// MarkPersisted records a successful first save.
func (s *Session) MarkPersisted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persisted = true
}

// State returns a snapshot of the visibility state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.state
	snap.TableVisible = map[entities.Category]bool{}
	for c, v := range s.state.TableVisible {
		snap.TableVisible[c] = v
	}
	return snap
}

// ActivateSection shows one category's staging group, hiding all others.
func (s *Session) ActivateSection(c entities.Category) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Apply(Event{Kind: EventActivate, Category: c})
	return s.stateSnapshotLocked()
}

// Staging returns a copy of the category's staging selection.
func (s *Session) Staging(c entities.Category) StagingSelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.staging[c]
}

// MergeStaging overlays the provided fields onto the category's staging
// selection and returns the result. Zero values leave existing fields alone
// so a unit resolved asynchronously is not clobbered by a quantity edit.
func (s *Session) MergeStaging(c entities.Category, sel StagingSelection) StagingSelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.staging[c]
	if strings.TrimSpace(sel.ItemID) != "" {
		cur.ItemID = strings.TrimSpace(sel.ItemID)
	}
	if sel.Quantity > 0 {
		cur.Quantity = sel.Quantity
	}
	if strings.TrimSpace(sel.Unit) != "" {
		cur.Unit = strings.TrimSpace(sel.Unit)
	}
	if sel.Count > 0 {
		cur.Count = sel.Count
	}
	return *cur
}

// SetStagingUnit writes a resolved unit of measure and advances focus to the
// count field.
func (s *Session) SetStagingUnit(c entities.Category, unit string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staging[c].Unit = unit
	s.state.Apply(Event{Kind: EventUnitResolved, Category: c})
}

// LineAppended clears every staging field and reveals the category's table.
func (s *Session) LineAppended(c entities.Category) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cat := range entities.Categories() {
		*s.staging[cat] = StagingSelection{}
	}
	s.state.Apply(Event{Kind: EventLineAppended, Category: c})
	return s.stateSnapshotLocked()
}

func (s *Session) stateSnapshotLocked() State {
	snap := s.state
	snap.TableVisible = map[entities.Category]bool{}
	for c, v := range s.state.TableVisible {
		snap.TableVisible[c] = v
	}
	return snap
}
