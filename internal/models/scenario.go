package models

import "time"

// BudgetScenario is a named budget variant (e.g., "Small wedding", "Castle").
// Expenses reference exactly one scenario.
//
// At most one scenario is active at any time; the store enforces this by
// deactivating the others in the same transaction that activates one.
type BudgetScenario struct {
	// ID is the unique identifier for the scenario (UUID format).
	ID string `json:"id"`

	// Name is the display name of the scenario.
	Name string `json:"name" validate:"notblank"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// IsActive marks the scenario used by default in budget views.
	IsActive bool `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScenarioPatch describes a partial update of a scenario.
// Setting IsActive to true deactivates every other scenario.
type ScenarioPatch struct {
	Name        *string `json:"name,omitempty" validate:"omitnil,notblank"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}
