package Models

import "gorm.io/gorm"

// DashboardNote is a free-text note pinned to a calendar date.
type DashboardNote struct {
	gorm.Model
	NoteDate string `json:"note_date" gorm:"index"` // YYYY-MM-DD
	Note     string `json:"note"`
}
