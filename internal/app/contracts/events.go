package contracts

import (
	"context"
	"time"
)

// TimetableEvent is the change notification handed to the external
// notification service. Publishing is fire-and-forget; a failed publish is
// logged and never fails the request that produced it.
type TimetableEvent struct {
	Name       string    `json:"name"`
	ClassID    string    `json:"classId"`
	Day        string    `json:"day,omitempty"`
	Period     int       `json:"period,omitempty"`
	SlotID     string    `json:"slotId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

type TimetableEventPublisher interface {
	Publish(ctx context.Context, event TimetableEvent) error
}
