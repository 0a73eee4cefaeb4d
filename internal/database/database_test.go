package database_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/KirkDiggler/creature-forge/internal/database"
	"github.com/KirkDiggler/creature-forge/internal/errors"
)

type DatabaseTestSuite struct {
	suite.Suite
}

func TestDatabaseSuite(t *testing.T) {
	suite.Run(t, new(DatabaseTestSuite))
}

type widget struct {
	ID   string `gorm:"primaryKey"`
	Name string
}

func (s *DatabaseTestSuite) TestOpenRunsMigrations() {
	path := filepath.Join(s.T().TempDir(), "nested", "forge.db")

	db, err := database.Open(&database.Config{DSN: path}, func(db *gorm.DB) error {
		return db.AutoMigrate(&widget{})
	})
	s.Require().NoError(err)
	defer func() { s.NoError(database.Close(db)) }()

	s.True(db.Migrator().HasTable(&widget{}))
	s.Require().NoError(db.Create(&widget{ID: "w1", Name: "sprocket"}).Error)

	var got widget
	s.Require().NoError(db.First(&got, "id = ?", "w1").Error)
	s.Equal("sprocket", got.Name)
}

func (s *DatabaseTestSuite) TestOpenRequiresDSN() {
	_, err := database.Open(&database.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = database.Open(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DatabaseTestSuite) TestMigrationFailureIsReturned() {
	_, err := database.Open(&database.Config{DSN: ":memory:"}, func(*gorm.DB) error {
		return errors.Internal("boom")
	})
	s.Error(err)
}
