package domain

import "strings"

type Tracking struct {
	OrderNumber       string
	Status            string
	EstimatedDelivery string
	CurrentLocation   string
	Updates           []TrackingUpdate
}

type TrackingUpdate struct {
	ID        int
	Status    string
	Location  string
	Timestamp string
	Completed bool
}

// StatusLabel renders a status key such as "in_transit" as "IN TRANSIT".
func (t Tracking) StatusLabel() string {
	return strings.ToUpper(strings.ReplaceAll(t.Status, "_", " "))
}

func (t Tracking) Progress() (completed, total int) {
	for _, u := range t.Updates {
		if u.Completed {
			completed++
		}
	}
	return completed, len(t.Updates)
}
