package models

import "time"

var InspirationTypes = []string{"verse", "quote", "thought"}

type DailyInspiration struct {
	Inspiration_ID string `json:"id" db:"id"`
	Seq            int    `json:"-" db:"seq"`
	Content        string `json:"content" db:"content"`
	Attribution    string `json:"attribution" db:"attribution"`
	Type           string `json:"type" db:"type"`
}

type DailyInspirationCreate struct {
	Content     string `json:"content" binding:"required"`
	Attribution string `json:"attribution" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=verse quote thought"`
}

// PickDailyInspiration selects the entry for day by cycling through list with
// the day of the year (1 on January 1st). The same list and calendar day always
// yield the same entry.
func PickDailyInspiration(list []DailyInspiration, day time.Time) (DailyInspiration, bool) {
	if len(list) == 0 {
		return DailyInspiration{}, false
	}
	return list[day.YearDay()%len(list)], true
}
