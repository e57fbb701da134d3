package models

// StorageCounts reports how many records each collection currently holds.
type StorageCounts struct {
	Prayers           int `json:"prayers"`
	Questions         int `json:"questions"`
	Prayer_Comments   int `json:"prayerComments"`
	Question_Comments int `json:"questionComments"`
	Bookmarks         int `json:"bookmarks"`
	Lift_Ups          int `json:"liftUps"`
	Inspirations      int `json:"inspirations"`
}

type HealthResponse struct {
	Storage string        `json:"storage"`
	Counts  StorageCounts `json:"counts"`
}
