package usecase

import (
	"context"
	"errors"
	"log"
	"sync"

	"managefarms/internal/domain/entities"
	"managefarms/internal/domain/form"
	"managefarms/internal/usecase/interfaces"
)

var (
	ErrSessionNotFound = errors.New("form session not found")
	ErrInvalidCategory = errors.New("invalid category")
)

// IFormSessionUseCase exposes form session state to the HTTP layer.

type IFormSessionUseCase interface {
	State(docName string) (form.State, error)
	ActivateSection(docName string, category entities.Category) (form.State, error)
}

// FormSessionUseCase is the registry of open form sessions. It also owns the
// pdf_generated subscription: when the event names an open document the
// session's working copy is reloaded and a success alert is raised.

type FormSessionUseCase struct {
	repo     interfaces.IWorkOrderRepository
	notifier interfaces.INotifier

	mu       sync.Mutex
	sessions map[string]*form.Session

	unsubscribe func()
}

var (
	_ IFormSessionUseCase      = (*FormSessionUseCase)(nil)
	_ interfaces.IFormSessions = (*FormSessionUseCase)(nil)
)

func NewFormSessionUseCase(repo interfaces.IWorkOrderRepository, bus interfaces.IRealtimeBus, notifier interfaces.INotifier) *FormSessionUseCase {
	u := &FormSessionUseCase{
		repo:     repo,
		notifier: notifier,
		sessions: map[string]*form.Session{},
	}
	if bus != nil {
		u.unsubscribe = bus.Subscribe(interfaces.EventPDFGenerated, u.onPDFGenerated)
	}
	return u
}

// Open registers a session for the document, replacing any previous one.
func (u *FormSessionUseCase) Open(_ context.Context, order entities.WorkOrder, persisted bool) (*form.Session, error) {
	if order.ID == "" {
		return nil, ErrWorkOrderNotFound
	}
	sess := form.NewSession(order, persisted)
	u.mu.Lock()
	u.sessions[order.ID] = sess
	u.mu.Unlock()
	return sess, nil
}

func (u *FormSessionUseCase) Lookup(docName string) (*form.Session, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	sess, ok := u.sessions[docName]
	return sess, ok
}

// Close tears the session down. In-flight events for the document become
// no-ops afterwards.
func (u *FormSessionUseCase) Close(docName string) {
	u.mu.Lock()
	delete(u.sessions, docName)
	u.mu.Unlock()
}

// Shutdown detaches the realtime subscription.
func (u *FormSessionUseCase) Shutdown() {
	if u.unsubscribe != nil {
		u.unsubscribe()
	}
}

func (u *FormSessionUseCase) State(docName string) (form.State, error) {
	sess, ok := u.Lookup(docName)
	if !ok {
		return form.State{}, ErrSessionNotFound
	}
	return sess.State(), nil
}

func (u *FormSessionUseCase) ActivateSection(docName string, category entities.Category) (form.State, error) {
	if !category.Valid() {
		return form.State{}, ErrInvalidCategory
	}
	sess, ok := u.Lookup(docName)
	if !ok {
		return form.State{}, ErrSessionNotFound
	}
	return sess.ActivateSection(category), nil
}

func (u *FormSessionUseCase) onPDFGenerated(payload map[string]any) {
	docName, _ := payload["doc_name"].(string)
	if docName == "" {
		return
	}
	sess, ok := u.Lookup(docName)
	if !ok {
		// Event for a document nobody has open; ignore.
		return
	}

	if sess.Persisted() {
		order, err := u.repo.GetByID(context.Background(), docName)
		if err != nil {
			log.Printf("[form][usecase] reload after pdf_generated failed doc=%s err=%v", docName, err)
			return
		}
		if order.ID != "" {
			sess.SetOrder(order)
		}
	}
	if u.notifier != nil {
		u.notifier.ShowAlert("PDF generated successfully!", "green", 2)
	}
}
