package services

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/PrayerWall/models"
	"github.com/PrayerWall/storage"
)

// DefaultInspirations are inserted, in this order, into a store that has none.
var DefaultInspirations = []models.DailyInspirationCreate{
	{
		Content:     "The Lord is my shepherd; I shall not want.",
		Attribution: "Psalm 23:1",
		Type:        "verse",
	},
	{
		Content:     "For I know the plans I have for you, declares the Lord, plans for welfare and not for evil, to give you a future and a hope.",
		Attribution: "Jeremiah 29:11",
		Type:        "verse",
	},
	{
		Content:     "Peace begins with a smile.",
		Attribution: "Mother Teresa",
		Type:        "quote",
	},
	{
		Content:     "Prayer is not asking. Prayer is putting oneself in the hands of God.",
		Attribution: "Mother Teresa",
		Type:        "quote",
	},
	{
		Content:     "Be still, and know that I am God.",
		Attribution: "Psalm 46:10",
		Type:        "verse",
	},
	{
		Content:     "In moments of stillness, we find God's voice speaking to our hearts.",
		Attribution: "Anonymous",
		Type:        "thought",
	},
	{
		Content:     "Cast all your anxiety on him because he cares for you.",
		Attribution: "1 Peter 5:7",
		Type:        "verse",
	},
}

// SeedDailyInspirations fills an empty inspiration set with the defaults and
// returns how many were inserted. A store that already has entries is left
// alone. Individual insert failures are logged and skipped.
func SeedDailyInspirations(ctx context.Context, store storage.InspirationStore) (int, error) {
	_, err := store.GetDailyInspiration(ctx)
	if err == nil {
		return 0, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return 0, fmt.Errorf("check daily inspirations: %w", err)
	}

	seeded := 0
	for _, in := range DefaultInspirations {
		if _, err := store.CreateDailyInspiration(ctx, in); err != nil {
			log.Warnf("Failed to seed daily inspiration %q: %v", in.Attribution, err)
			continue
		}
		seeded++
	}

	log.Printf("Seeded %d default daily inspirations", seeded)
	return seeded, nil
}
