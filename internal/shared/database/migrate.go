package database

import (
	"majestic/internal/affiche"
	"majestic/internal/events"
	"majestic/internal/homehero"
	"majestic/internal/languages"
	"majestic/internal/pricing"
	"majestic/internal/rooms"
	"majestic/internal/sessions"
	"majestic/internal/sessiontimes"
	"majestic/internal/showtypes"
	"majestic/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&rooms.Room{},
		&events.Event{},
		&sessions.Session{},
		&pricing.Pricing{},
		&languages.Language{},
		&showtypes.ShowType{},
		&sessiontimes.SessionTime{},
		&homehero.HeroItem{},
		&affiche.AfficheItem{},
	)
}
