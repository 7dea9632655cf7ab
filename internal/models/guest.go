package models

import (
	"strings"
	"time"
)

// GuestSide is the side of the couple that invited a guest.
type GuestSide string

const (
	SideBride GuestSide = "bride"
	SideGroom GuestSide = "groom"
)

// RSVPStatus is the state of a guest's invitation.
type RSVPStatus string

const (
	RSVPNotSent RSVPStatus = "not_sent"
	RSVPSent    RSVPStatus = "sent"
	RSVPYes     RSVPStatus = "yes"
	RSVPNo      RSVPStatus = "no"
)

// Guest is an invitee.
type Guest struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName" validate:"notblank"`
	LastName  string     `json:"lastName,omitempty"`
	Email     string     `json:"email,omitempty" validate:"opt_email"`
	Phone     string     `json:"phone,omitempty"`
	Side      GuestSide  `json:"side" validate:"oneof=bride groom"`
	RSVP      RSVPStatus `json:"rsvp" validate:"oneof=not_sent sent yes no"`

	// HasCompanion marks a plus-one; such a guest counts as two attendees.
	HasCompanion bool `json:"hasCompanion,omitempty"`

	DietaryRestrictions string `json:"dietaryRestrictions,omitempty"`
	Notes               string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName joins first and last name.
func (g *Guest) FullName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}

// HeadCount is the number of attendees this guest represents.
func (g *Guest) HeadCount() int {
	if g.HasCompanion {
		return 2
	}
	return 1
}

// GuestPatch describes a partial update of a guest.
type GuestPatch struct {
	FirstName           *string     `json:"firstName,omitempty" validate:"omitnil,notblank"`
	LastName            *string     `json:"lastName,omitempty"`
	Email               *string     `json:"email,omitempty" validate:"omitnil,opt_email"`
	Phone               *string     `json:"phone,omitempty"`
	Side                *GuestSide  `json:"side,omitempty" validate:"omitnil,oneof=bride groom"`
	RSVP                *RSVPStatus `json:"rsvp,omitempty" validate:"omitnil,oneof=not_sent sent yes no"`
	HasCompanion        *bool       `json:"hasCompanion,omitempty"`
	DietaryRestrictions *string     `json:"dietaryRestrictions,omitempty"`
	Notes               *string     `json:"notes,omitempty"`
}
