package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const InvalidBodyMessage = "Invalid request body"

// notblank rejects whitespace-only identifiers, the same rule applied to the
// sessionId query parameter.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
}

// validationMessages maps "<Struct>.<Field>.<tag>" to the message shown to the
// client when that constraint is the first one violated.
var validationMessages = map[string]string{
	"PrayerCreate.Content.required": "Prayer must be at least 10 characters",
	"PrayerCreate.Content.min":      "Prayer must be at least 10 characters",
	"PrayerCreate.Content.max":      "Prayer must be less than 1000 characters",
	"PrayerCreate.Category.oneof":   "Category must be one of " + strings.Join(Categories, ", "),

	"QuestionCreate.Title.required":   "Title must be at least 5 characters",
	"QuestionCreate.Title.min":        "Title must be at least 5 characters",
	"QuestionCreate.Title.max":        "Title must be at most 200 characters",
	"QuestionCreate.Content.required": "Question must be at least 10 characters",
	"QuestionCreate.Content.min":      "Question must be at least 10 characters",
	"QuestionCreate.Content.max":      "Question must be at most 2000 characters",

	"CommentCreate.Content.required": "Comment cannot be empty",
	"CommentCreate.Content.min":      "Comment cannot be empty",
	"CommentCreate.Content.max":      "Comment must be at most 1000 characters",

	"LiftUpCreate.Prayer_ID.required":    "prayerId is required",
	"LiftUpCreate.Prayer_ID.notblank":    "prayerId is required",
	"LiftUpCreate.Session_ID.required":   "sessionId is required",
	"LiftUpCreate.Session_ID.notblank":   "sessionId is required",
	"BookmarkCreate.Prayer_ID.required":  "prayerId is required",
	"BookmarkCreate.Prayer_ID.notblank":  "prayerId is required",
	"BookmarkCreate.Session_ID.required": "sessionId is required",
	"BookmarkCreate.Session_ID.notblank": "sessionId is required",

	"DailyInspirationCreate.Content.required":     "Inspiration content is required",
	"DailyInspirationCreate.Attribution.required": "Inspiration attribution is required",
	"DailyInspirationCreate.Type.required":        "Inspiration type is required",
	"DailyInspirationCreate.Type.oneof":           "Inspiration type must be one of " + strings.Join(InspirationTypes, ", "),
}

// ValidationMessage turns a binding error into a single client-facing message.
// Only the first violated constraint is reported.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return InvalidBodyMessage
	}

	fe := verrs[0]
	key := fe.StructNamespace() + "." + fe.Tag()
	if msg, ok := validationMessages[key]; ok {
		return msg
	}
	if fe.StructField() == "Author_Name" && fe.Tag() == "max" {
		return "Name must be at most 100 characters"
	}
	return fmt.Sprintf("Invalid value for %s", fe.Field())
}

// IsAnonymousName reports whether a submission without a usable author name
// should be shown as anonymous.
func IsAnonymousName(name *string) bool {
	return name == nil || strings.TrimSpace(*name) == ""
}

// AuthorOrNil drops blank author names so anonymous records never carry one.
func AuthorOrNil(name *string) *string {
	if IsAnonymousName(name) {
		return nil
	}
	n := *name
	return &n
}
