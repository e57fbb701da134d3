package models

import "time"

type Question struct {
	Question_ID  string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Content      string    `json:"content" db:"content"`
	Is_Anonymous bool      `json:"isAnonymous" db:"is_anonymous"`
	Author_Name  *string   `json:"authorName" db:"author_name"`
	Is_Moderated bool      `json:"isModerated" db:"is_moderated"`
	Created_At   time.Time `json:"createdAt" db:"created_at"`
}

type QuestionCreate struct {
	Title       string  `json:"title" binding:"required,min=5,max=200"`
	Content     string  `json:"content" binding:"required,min=10,max=2000"`
	Author_Name *string `json:"authorName" binding:"omitempty,max=100"`
}
