package models

import "time"

// LiftUp records that a session prayed for a prayer. At most one per
// (prayer, session) pair.
type LiftUp struct {
	Lift_Up_ID string    `json:"id" db:"id"`
	Prayer_ID  string    `json:"prayerId" db:"prayer_id"`
	Session_ID string    `json:"sessionId" db:"session_id"`
	Created_At time.Time `json:"createdAt" db:"created_at"`
}

type LiftUpCreate struct {
	Prayer_ID  string `json:"prayerId" binding:"required,notblank"`
	Session_ID string `json:"sessionId" binding:"required,notblank"`
}

type LiftUpResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

type PrayerStatus struct {
	Has_Lifted   bool `json:"hasLifted"`
	Has_Bookmark bool `json:"hasBookmark"`
}
