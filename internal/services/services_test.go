package services

import (
	"testing"

	"github.com/eldon922/ekklesia-be/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Event{}, &models.Attendee{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createTestEvent(t *testing.T, db *gorm.DB, finished bool) *models.Event {
	t.Helper()

	event := models.Event{Name: "Youth Camp", Finished: finished}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}
	return &event
}

func createTestAttendee(t *testing.T, db *gorm.DB, eventID uint, name, phone string) *models.Attendee {
	t.Helper()

	attendee := models.Attendee{EventID: eventID, Name: name, Phone: phone, Source: models.SourceManual}
	if err := db.Create(&attendee).Error; err != nil {
		t.Fatalf("create attendee: %v", err)
	}
	return &attendee
}

func rosterCount(t *testing.T, db *gorm.DB, eventID uint) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.Attendee{}).Where("event_id = ?", eventID).Count(&count).Error; err != nil {
		t.Fatalf("count attendees: %v", err)
	}
	return count
}
