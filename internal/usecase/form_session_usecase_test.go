package usecase

import (
	"context"
	"errors"
	"testing"

	"managefarms/internal/domain/entities"
	"managefarms/internal/domain/form"
	"managefarms/internal/infrastructure/events"
	mock_interfaces "managefarms/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFormSessionUseCase_OpenLookupClose(t *testing.T) {
	uc := NewFormSessionUseCase(nil, nil, nil)

	t.Run("open requires a document id", func(t *testing.T) {
		if _, err := uc.Open(context.Background(), entities.WorkOrder{}, false); !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("open then lookup then close", func(t *testing.T) {
		order := entities.WorkOrder{ID: "wo-1", Status: entities.WorkOrderStatusDraft}
		sess, err := uc.Open(context.Background(), order, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, ok := uc.Lookup("wo-1")
		if !ok || got != sess {
			t.Fatal("expected lookup to return the opened session")
		}
		uc.Close("wo-1")
		if _, ok := uc.Lookup("wo-1"); ok {
			t.Fatal("expected session gone after close")
		}
	})
}

func TestFormSessionUseCase_State(t *testing.T) {
	uc := NewFormSessionUseCase(nil, nil, nil)

	if _, err := uc.State("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	order := entities.WorkOrder{
		ID:       "wo-1",
		Status:   entities.WorkOrderStatusDraft,
		Material: []entities.LineItem{{ItemID: "mt-1"}},
	}
	if _, err := uc.Open(context.Background(), order, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st, err := uc.State("wo-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !st.TableVisible[entities.CategoryMaterial] {
		t.Fatal("expected material table visible")
	}
}

func TestFormSessionUseCase_ActivateSection(t *testing.T) {
	uc := NewFormSessionUseCase(nil, nil, nil)
	order := entities.WorkOrder{ID: "wo-1", Status: entities.WorkOrderStatusDraft}
	if _, err := uc.Open(context.Background(), order, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("invalid category", func(t *testing.T) {
		if _, err := uc.ActivateSection("wo-1", entities.Category("tools")); !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		if _, err := uc.ActivateSection("missing", entities.CategoryLabor); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("activates the staging group", func(t *testing.T) {
		st, err := uc.ActivateSection("wo-1", entities.CategoryLabor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.Active != entities.CategoryLabor || st.Focus != form.FocusItem {
			t.Fatalf("unexpected state: %+v", st)
		}
	})
}

func TestFormSessionUseCase_PDFGenerated(t *testing.T) {
	t.Run("reloads the open document and raises the alert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		bus := events.NewMemoryBus()

		uc := NewFormSessionUseCase(repo, bus, notifier)
		defer uc.Shutdown()

		order := entities.WorkOrder{ID: "wo-1", Status: entities.WorkOrderStatusDraft, Description: "old"}
		if _, err := uc.Open(context.Background(), order, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reloaded := order
		reloaded.Description = "new"
		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(reloaded, nil)
		notifier.EXPECT().ShowAlert("PDF generated successfully!", "green", 2)

		bus.Publish("pdf_generated", map[string]any{"doc_name": "wo-1"})

		sess, _ := uc.Lookup("wo-1")
		if got := sess.Order(); got.Description != "new" {
			t.Fatalf("expected reloaded order, got %q", got.Description)
		}
	})

	t.Run("event for an unopened document is ignored", func(t *testing.T) {
		bus := events.NewMemoryBus()
		uc := NewFormSessionUseCase(nil, bus, nil)
		defer uc.Shutdown()

		// Must not panic or hit the nil repo.
		bus.Publish("pdf_generated", map[string]any{"doc_name": "ghost"})
	})

	t.Run("unpersisted draft skips the reload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		bus := events.NewMemoryBus()

		uc := NewFormSessionUseCase(nil, bus, notifier)
		defer uc.Shutdown()

		order := entities.WorkOrder{ID: "wo-2", Status: entities.WorkOrderStatusDraft}
		if _, err := uc.Open(context.Background(), order, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		notifier.EXPECT().ShowAlert("PDF generated successfully!", "green", 2)
		bus.Publish("pdf_generated", map[string]any{"doc_name": "wo-2"})
	})
}
