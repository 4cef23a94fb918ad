package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"majestic/internal/events"
	"majestic/internal/homehero"
	"majestic/internal/languages"
	"majestic/internal/pricing"
	"majestic/internal/rooms"
	"majestic/internal/seatmap"
	"majestic/internal/sessions"
	"majestic/internal/sessiontimes"
	"majestic/internal/shared/config"
	"majestic/internal/shared/database"
	"majestic/internal/showtypes"
	"majestic/internal/users"
)

type Seeder struct {
	db *database.DB

	adminID    uuid.UUID
	pricingIDs map[string]uuid.UUID
	eventIDs   map[string]uuid.UUID
}

func main() {
	fmt.Println("🌱 Starting Majestic Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db.GetPostgreSQL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	seeder := &Seeder{
		db:         db,
		pricingIDs: make(map[string]uuid.UUID),
		eventIDs:   make(map[string]uuid.UUID),
	}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"affiche_items",
		"hero_items",
		"sessions",
		"events",
		"rooms",
		"pricings",
		"session_times",
		"show_types",
		"languages",
		"users",
	}

	for _, table := range tables {
		if err := s.db.GetPostgreSQL().Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			// Table may not exist on a fresh database
			log.Printf("warning: could not truncate %s: %v", table, err)
		}
	}
	return nil
}

func (s *Seeder) SeedAll() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"users", s.seedUsers},
		{"catalogs", s.seedCatalogs},
		{"pricing", s.seedPricing},
		{"rooms", s.seedRooms},
		{"events", s.seedEvents},
		{"sessions", s.seedSessions},
		{"home hero", s.seedHomeHero},
	}

	for _, step := range steps {
		fmt.Printf("  • seeding %s...\n", step.name)
		if err := step.fn(); err != nil {
			return fmt.Errorf("seeding %s: %w", step.name, err)
		}
	}
	return nil
}

func (s *Seeder) seedUsers() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &users.User{
		FirstName: "Admin",
		LastName:  "Majestic",
		Email:     "admin@majestic.fr",
		Password:  string(hashed),
		Role:      users.RoleAdmin,
	}
	if err := s.db.GetPostgreSQL().Create(admin).Error; err != nil {
		return err
	}
	s.adminID = admin.ID

	staffHashed, err := bcrypt.GenerateFromPassword([]byte("caisse123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	staff := &users.User{
		FirstName: "Marie",
		LastName:  "Caisse",
		Email:     "caisse@majestic.fr",
		Password:  string(staffHashed),
		Role:      users.RoleTicketOffice,
	}
	return s.db.GetPostgreSQL().Create(staff).Error
}

func (s *Seeder) seedCatalogs() error {
	for _, name := range []string{"Français", "Anglais", "Espagnol"} {
		if err := s.db.GetPostgreSQL().Create(&languages.Language{Name: name}).Error; err != nil {
			return err
		}
	}

	for _, name := range []string{"Concert", "Théâtre", "Humour"} {
		if err := s.db.GetPostgreSQL().Create(&showtypes.ShowType{Name: name}).Error; err != nil {
			return err
		}
	}

	for _, t := range []string{"14:00", "17:00", "20:30"} {
		if err := s.db.GetPostgreSQL().Create(&sessiontimes.SessionTime{Time: t}).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedPricing() error {
	tiers := []pricing.Pricing{
		{Name: "Plein tarif", Price: 12.50},
		{Name: "Tarif réduit", Price: 9.00},
		{Name: "Moins de 14 ans", Price: 6.50},
	}
	for i := range tiers {
		if err := s.db.GetPostgreSQL().Create(&tiers[i]).Error; err != nil {
			return err
		}
		s.pricingIDs[tiers[i].Name] = tiers[i].ID
	}
	return nil
}

func (s *Seeder) seedRooms() error {
	layout := make([]seatmap.Cell, 0, 40)
	for _, row := range []string{"A", "B", "C", "D"} {
		for col := 1; col <= 10; col++ {
			cellType := seatmap.CellSeat
			if col == 5 {
				cellType = seatmap.CellAisle
			}
			layout = append(layout, seatmap.Cell{Row: row, Col: col, CellType: cellType})
		}
	}

	room := &rooms.Room{
		Name:     "Salle 1",
		Capacity: seatmap.SeatCount(layout),
		Layout:   layout,
		Overrides: []seatmap.Override{
			{Row: "A", Col: 1, Status: seatmap.OverrideStaff},
		},
	}
	return s.db.GetPostgreSQL().Create(room).Error
}

func (s *Seeder) seedEvents() error {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -7)
	to := now.AddDate(0, 1, 0)
	releaseDate := now.AddDate(0, -1, 0)

	items := []events.Event{
		{
			Type:              events.EventTypeMovie,
			Name:              "Le Grand Voyage",
			Description:       "Un road movie à travers les Alpes.",
			Duration:          124,
			Genres:            []string{"Drame", "Aventure"},
			AvailableVersions: []string{"VF", "VOST"},
			ReleaseDate:       &releaseDate,
			AvailableFrom:     &from,
			AvailableTo:       &to,
			Status:            events.EventStatusActive,
			CreatedBy:         s.adminID,
		},
		{
			Type:          events.EventTypeShow,
			Name:          "Concert symphonique",
			Description:   "L'orchestre en résidence joue Ravel.",
			Duration:      95,
			Genres:        []string{"Musique"},
			AvailableFrom: &from,
			AvailableTo:   &to,
			Status:        events.EventStatusActive,
			CreatedBy:     s.adminID,
		},
	}

	for i := range items {
		if err := s.db.GetPostgreSQL().Create(&items[i]).Error; err != nil {
			return err
		}
		s.eventIDs[items[i].Name] = items[i].ID
	}
	return nil
}

func (s *Seeder) seedSessions() error {
	day := time.Now().UTC().AddDate(0, 0, 1)
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	pleinTarif := s.pricingIDs["Plein tarif"]
	session := &sessions.Session{
		EventID:        s.eventIDs["Le Grand Voyage"],
		Date:           day,
		SessionTime:    "20:30",
		Version:        "VF",
		RoomID:         "Salle 1",
		TotalSeats:     36,
		AvailableSeats: 36,
		PricingLimits: []seatmap.PricingLimit{
			{PricingID: pleinTarif, MaxTickets: 30},
		},
		Status:    sessions.SessionStatusScheduled,
		CreatedBy: s.adminID,
	}
	return s.db.GetPostgreSQL().Create(session).Error
}

func (s *Seeder) seedHomeHero() error {
	eventID := s.eventIDs["Le Grand Voyage"]
	items := []homehero.HeroItem{
		{Title: "Le Grand Voyage", Subtitle: "En salle cette semaine", Poster: "/uploads/hero-voyage.jpg", EventID: &eventID, Active: true, Order: 0},
		{Title: "Concert symphonique", Subtitle: "Billetterie ouverte", Poster: "/uploads/hero-concert.jpg", Active: true, Order: 1},
	}
	for i := range items {
		if err := s.db.GetPostgreSQL().Create(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
