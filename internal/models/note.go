package models

import "time"

// Note is a free-form text entry.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" validate:"notblank"`
	Content   string    `json:"content" validate:"notblank"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NotePatch describes a partial update of a note. A non-nil Tags replaces
// the whole tag list.
type NotePatch struct {
	Title   *string   `json:"title,omitempty" validate:"omitnil,notblank"`
	Content *string   `json:"content,omitempty" validate:"omitnil,notblank"`
	Tags    *[]string `json:"tags,omitempty"`
}
