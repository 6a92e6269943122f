package repositories

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rohits-web03/sociogram/internal/models"
)

// Store owns the database handle. It is injected into handlers and
// middleware; there is no package-level connection.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Connect opens the postgres database, runs migrations and returns the
// ready store.
func Connect(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	store := NewStore(db)
	if err := store.Migrate(); err != nil {
		return nil, err
	}
	log.Println("Successfully connected to database")
	return store, nil
}

// Migrate creates the schema and seeds the country reference table when it
// is empty.
func (s *Store) Migrate() error {
	err := s.db.AutoMigrate(
		&models.Country{},
		&models.User{},
		&models.FriendEdge{},
		&models.Post{},
		&models.Reaction{},
	)
	if err != nil {
		return err
	}
	return s.seedCountries()
}

func (s *Store) seedCountries() error {
	var count int64
	if err := s.db.Model(&models.Country{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.db.Create(&countrySeed).Error
}
