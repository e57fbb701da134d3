package models

import "time"

type Bookmark struct {
	Bookmark_ID string    `json:"id" db:"id"`
	Prayer_ID   string    `json:"prayerId" db:"prayer_id"`
	Session_ID  string    `json:"sessionId" db:"session_id"`
	Created_At  time.Time `json:"createdAt" db:"created_at"`
}

type BookmarkCreate struct {
	Prayer_ID  string `json:"prayerId" binding:"required,notblank"`
	Session_ID string `json:"sessionId" binding:"required,notblank"`
}
