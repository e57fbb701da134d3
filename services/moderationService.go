package services

import (
	"regexp"
	"strings"

	"github.com/PrayerWall/apperror"
)

const (
	ContentModerationMessage = "Content moderation failed. Please ensure your message is respectful and appropriate."
	NameModerationMessage    = "Please use an appropriate name."
)

var deniedWords = []string{
	"hate", "kill", "murder", "die", "death", "violence", "attack",
	"racist", "sexist", "discrimination", "harassment", "abuse",
	"curse", "damn", "hell", "bastard", "bitch", "ass", "shit", "fuck",
	"crap", "piss", "asshole", "dick", "cock", "pussy", "whore", "slut",
}

// deniedPatterns match whole words only, so "class" or "skill" pass.
var deniedPatterns = compileDenylist(deniedWords)

func compileDenylist(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return patterns
}

// IsProfane reports whether text contains any denylisted word.
func IsProfane(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, p := range deniedPatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

// ModerateContent rejects profane user text.
func ModerateContent(text string) error {
	if IsProfane(text) {
		return apperror.Moderation(ContentModerationMessage)
	}
	return nil
}

// ModerateAuthorName rejects profane display names. A nil name is fine.
func ModerateAuthorName(name *string) error {
	if name != nil && IsProfane(*name) {
		return apperror.Moderation(NameModerationMessage)
	}
	return nil
}
