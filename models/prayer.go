package models

import "time"

const DefaultCategory = "Other"

var Categories = []string{"Faith", "Health", "Relationships", "Work", "Other"}

type Prayer struct {
	Prayer_ID     string    `json:"id" db:"id"`
	Content       string    `json:"content" db:"content"`
	Category      string    `json:"category" db:"category"`
	Is_Anonymous  bool      `json:"isAnonymous" db:"is_anonymous"`
	Author_Name   *string   `json:"authorName" db:"author_name"`
	Lift_Up_Count int       `json:"liftUpCount" db:"lift_up_count"`
	Is_Moderated  bool      `json:"isModerated" db:"is_moderated"`
	Created_At    time.Time `json:"createdAt" db:"created_at"`
}

// PrayerCreate is the request body for submitting a prayer. Everything else on
// Prayer is assigned by the server. Category may be omitted, but an explicit
// empty string is not a category.
type PrayerCreate struct {
	Content     string  `json:"content" binding:"required,min=10,max=1000"`
	Category    *string `json:"category" binding:"omitempty,oneof=Faith Health Relationships Work Other"`
	Author_Name *string `json:"authorName" binding:"omitempty,max=100"`
}

// CategoryOrDefault returns the requested category, falling back to Other.
func (p PrayerCreate) CategoryOrDefault() string {
	if p.Category == nil {
		return DefaultCategory
	}
	return *p.Category
}
