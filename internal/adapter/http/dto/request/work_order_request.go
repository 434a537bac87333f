package request

import (
	"errors"
	"strings"
	"time"

	"managefarms/internal/domain/entities"
	"managefarms/internal/domain/form"
)

var (
	ErrInvalidWorkDate = errors.New("invalid work date")
	ErrInvalidDecision = errors.New("invalid save decision")
)

// CreateWorkOrderRequest carries the header fields of a new draft.
type CreateWorkOrderRequest struct {
	PlotID      string `json:"plot_id"`
	CustomerID  string `json:"customer_id"`
	WorkTypeID  string `json:"work_type_id"`
	WorkDate    string `json:"work_date"`
	Description string `json:"description"`
}

// ResolveWorkDate parses the work date, accepting a plain date or RFC3339.
// Empty means "default to today" downstream.
func (r CreateWorkOrderRequest) ResolveWorkDate() (time.Time, error) {
	v := strings.TrimSpace(r.WorkDate)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidWorkDate
}

// LineItemRequest is one staging selection for a category. Partial payloads
// are allowed: omitted fields keep whatever the staging group already holds.
type LineItemRequest struct {
	Category string  `json:"category" binding:"required"`
	ItemID   string  `json:"item_id"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Count    int     `json:"count"`
}

func (r LineItemRequest) ResolveCategory() entities.Category {
	return entities.Category(strings.ToLower(strings.TrimSpace(r.Category)))
}

func (r LineItemRequest) ToStagingSelection() form.StagingSelection {
	return form.StagingSelection{
		ItemID:   strings.TrimSpace(r.ItemID),
		Quantity: r.Quantity,
		Unit:     strings.TrimSpace(r.Unit),
		Count:    r.Count,
	}
}

// SaveWorkOrderRequest carries the caller's answer to the budget
// confirmation. An absent decision means the question has not been asked.
type SaveWorkOrderRequest struct {
	Decision string `json:"decision"`
}

func (r SaveWorkOrderRequest) ResolveDecision() (string, error) {
	v := strings.ToLower(strings.TrimSpace(r.Decision))
	switch v {
	case "":
		return "unasked", nil
	case "unasked", "yes", "no":
		return v, nil
	}
	return "", ErrInvalidDecision
}
