package request

import (
	"errors"
	"testing"
	"time"
)

func TestCreateWorkOrderRequest_ResolveWorkDate(t *testing.T) {
	r := CreateWorkOrderRequest{WorkDate: "2025-06-15"}
	got, err := r.ResolveWorkDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", got)
	}

	r2 := CreateWorkOrderRequest{WorkDate: "2025-06-15T10:30:00Z"}
	got, err = r2.ResolveWorkDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 10 {
		t.Fatalf("unexpected time: %v", got)
	}

	r3 := CreateWorkOrderRequest{WorkDate: "   "}
	got, err = r3.ResolveWorkDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("expected zero date for empty input, got %v", got)
	}

	r4 := CreateWorkOrderRequest{WorkDate: "15/06/2025"}
	if _, err = r4.ResolveWorkDate(); !errors.Is(err, ErrInvalidWorkDate) {
		t.Fatalf("expected ErrInvalidWorkDate, got %v", err)
	}
}

func TestLineItemRequest_ResolveCategory(t *testing.T) {
	r := LineItemRequest{Category: "  Equipment "}
	if got := r.ResolveCategory(); string(got) != "equipment" {
		t.Fatalf("expected equipment, got %q", got)
	}
}

func TestLineItemRequest_ToStagingSelection(t *testing.T) {
	r := LineItemRequest{ItemID: " eq-1 ", Quantity: 2, Unit: " Hour ", Count: 3}
	sel := r.ToStagingSelection()
	if sel.ItemID != "eq-1" || sel.Unit != "Hour" || sel.Quantity != 2 || sel.Count != 3 {
		t.Fatalf("unexpected selection: %+v", sel)
	}
}

func TestSaveWorkOrderRequest_ResolveDecision(t *testing.T) {
	cases := map[string]string{
		"":        "unasked",
		"unasked": "unasked",
		"YES":     "yes",
		" no ":    "no",
	}
	for in, want := range cases {
		got, err := SaveWorkOrderRequest{Decision: in}.ResolveDecision()
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("expected %q for %q, got %q", want, in, got)
		}
	}

	if _, err := (SaveWorkOrderRequest{Decision: "maybe"}).ResolveDecision(); !errors.Is(err, ErrInvalidDecision) {
		t.Fatalf("expected ErrInvalidDecision, got %v", err)
	}
}
