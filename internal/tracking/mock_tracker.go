package tracking

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/nikolayk812/tipkart/internal/domain"
	"github.com/nikolayk812/tipkart/internal/port"
	"gopkg.in/yaml.v3"
)

var ErrOrderNumberRequired = errors.New("order number is required")

//go:embed timeline.yaml
var defaultTimeline []byte

type timelineFile struct {
	Status            string           `yaml:"status"`
	EstimatedDelivery string           `yaml:"estimated_delivery"`
	CurrentLocation   string           `yaml:"current_location"`
	Updates           []timelineUpdate `yaml:"updates"`
}

type timelineUpdate struct {
	ID        int    `yaml:"id"`
	Status    string `yaml:"status"`
	Location  string `yaml:"location"`
	Timestamp string `yaml:"timestamp"`
	Completed bool   `yaml:"completed"`
}

type mockTracker struct {
	timeline domain.Tracking
}

// NewMock returns a tracker that answers every order number with the same
// shipment timeline. Orders are never persisted, so there is nothing real
// to look up.
func NewMock() (port.OrderTracker, error) {
	var file timelineFile

	dec := yaml.NewDecoder(bytes.NewReader(defaultTimeline))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("dec.Decode: %w", err)
	}

	return &mockTracker{timeline: mapTimelineToDomain(file)}, nil
}

func (t *mockTracker) Track(_ context.Context, orderNumber string) (domain.Tracking, error) {
	orderNumber = normalizeOrderNumber(orderNumber)
	if orderNumber == "" {
		return domain.Tracking{}, ErrOrderNumberRequired
	}

	result := t.timeline
	result.OrderNumber = orderNumber
	result.Updates = slices.Clone(t.timeline.Updates)

	return result, nil
}

// normalizeOrderNumber accepts "#tip123", " TIP123 " and "# tip123" alike.
func normalizeOrderNumber(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	return strings.ToUpper(strings.TrimSpace(s))
}

func mapTimelineToDomain(file timelineFile) domain.Tracking {
	updates := make([]domain.TrackingUpdate, 0, len(file.Updates))
	for _, u := range file.Updates {
		updates = append(updates, domain.TrackingUpdate{
			ID:        u.ID,
			Status:    u.Status,
			Location:  u.Location,
			Timestamp: u.Timestamp,
			Completed: u.Completed,
		})
	}

	return domain.Tracking{
		Status:            file.Status,
		EstimatedDelivery: file.EstimatedDelivery,
		CurrentLocation:   file.CurrentLocation,
		Updates:           updates,
	}
}
