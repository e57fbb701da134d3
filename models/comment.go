package models

import "time"

// Comment is a reply to a question.
type Comment struct {
	Comment_ID   string    `json:"id" db:"id"`
	Question_ID  string    `json:"questionId" db:"question_id"`
	Content      string    `json:"content" db:"content"`
	Is_Anonymous bool      `json:"isAnonymous" db:"is_anonymous"`
	Author_Name  *string   `json:"authorName" db:"author_name"`
	Is_Moderated bool      `json:"isModerated" db:"is_moderated"`
	Created_At   time.Time `json:"createdAt" db:"created_at"`
}

// CommentCreate is the request body shared by question and prayer comments.
// The parent id always comes from the URL.
type CommentCreate struct {
	Content     string  `json:"content" binding:"required,min=1,max=1000"`
	Author_Name *string `json:"authorName" binding:"omitempty,max=100"`
}
