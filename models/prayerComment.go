package models

import "time"

// PrayerComment is a word of encouragement left on a prayer.
type PrayerComment struct {
	Comment_ID   string    `json:"id" db:"id"`
	Prayer_ID    string    `json:"prayerId" db:"prayer_id"`
	Content      string    `json:"content" db:"content"`
	Is_Anonymous bool      `json:"isAnonymous" db:"is_anonymous"`
	Author_Name  *string   `json:"authorName" db:"author_name"`
	Is_Moderated bool      `json:"isModerated" db:"is_moderated"`
	Created_At   time.Time `json:"createdAt" db:"created_at"`
}
