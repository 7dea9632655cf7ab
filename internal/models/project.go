package models

import "time"

// ProjectID is the identifier of the singleton wedding project.
const ProjectID = "main"

// Values a lazily created project starts with.
const (
	DefaultProjectName = "Our wedding"
	DefaultCurrency    = "PLN"
)

// Project holds the settings shared by every screen of the planner.
type Project struct {
	// ID is always ProjectID.
	ID string `json:"id"`

	// Name is the display name of the wedding (e.g., "Anna & Tom 2027").
	Name string `json:"name"`

	// WeddingDate is the day of the ceremony, if already fixed.
	WeddingDate *time.Time `json:"weddingDate,omitempty"`

	// OwnersNote is free text shown on the dashboard.
	OwnersNote string `json:"ownersNote"`

	// Currency is the ISO 4217 code used to display amounts.
	Currency string `json:"currency"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProjectPatch describes a partial update of the project.
type ProjectPatch struct {
	Name             *string    `json:"name,omitempty" validate:"omitnil,notblank"`
	WeddingDate      *time.Time `json:"weddingDate,omitempty"`
	ClearWeddingDate bool       `json:"clearWeddingDate,omitempty"`
	OwnersNote       *string    `json:"ownersNote,omitempty"`
	Currency         *string    `json:"currency,omitempty" validate:"omitnil,len=3,alpha"`
}
