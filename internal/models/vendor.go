package models

import "time"

// VendorStatus is the booking state of a vendor.
type VendorStatus string

const (
	VendorConsidering VendorStatus = "considering"
	VendorBooked      VendorStatus = "booked"
	VendorRejected    VendorStatus = "rejected"
)

// Vendor is a service provider (photographer, band, caterer...).
type Vendor struct {
	ID          string       `json:"id"`
	Name        string       `json:"name" validate:"notblank"`
	Category    string       `json:"category" validate:"notblank"`
	ContactName string       `json:"contactName,omitempty"`
	Email       string       `json:"email,omitempty" validate:"opt_email"`
	Phone       string       `json:"phone,omitempty"`
	Website     string       `json:"website,omitempty" validate:"opt_url"`
	Status      VendorStatus `json:"status" validate:"oneof=considering booked rejected"`
	Notes       string       `json:"notes,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// VendorPatch describes a partial update of a vendor.
type VendorPatch struct {
	Name        *string       `json:"name,omitempty" validate:"omitnil,notblank"`
	Category    *string       `json:"category,omitempty" validate:"omitnil,notblank"`
	ContactName *string       `json:"contactName,omitempty"`
	Email       *string       `json:"email,omitempty" validate:"omitnil,opt_email"`
	Phone       *string       `json:"phone,omitempty"`
	Website     *string       `json:"website,omitempty" validate:"omitnil,opt_url"`
	Status      *VendorStatus `json:"status,omitempty" validate:"omitnil,oneof=considering booked rejected"`
	Notes       *string       `json:"notes,omitempty"`
}
