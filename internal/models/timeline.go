package models

import "time"

// TimelineEvent is an entry on the wedding schedule.
type TimelineEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"notblank"`
	Description string    `json:"description,omitempty"`
	EventDate   time.Time `json:"eventDate" validate:"notzero"`

	// StartTime and EndTime are wall-clock "HH:MM" strings, empty if unset.
	StartTime string `json:"startTime,omitempty" validate:"opt_clock"`
	EndTime   string `json:"endTime,omitempty" validate:"opt_clock"`

	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TimelineEventPatch describes a partial update of a timeline event.
type TimelineEventPatch struct {
	Title       *string    `json:"title,omitempty" validate:"omitnil,notblank"`
	Description *string    `json:"description,omitempty"`
	EventDate   *time.Time `json:"eventDate,omitempty" validate:"omitnil,notzero"`
	StartTime   *string    `json:"startTime,omitempty" validate:"omitnil,opt_clock"`
	EndTime     *string    `json:"endTime,omitempty" validate:"omitnil,opt_clock"`
	Location    *string    `json:"location,omitempty"`
}
