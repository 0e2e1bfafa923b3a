package services

import (
	"strings"

	"github.com/eldon922/ekklesia-be/internal/models"

	"gorm.io/gorm"
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

type EventInput struct {
	Name        string `json:"name" binding:"required,min=1,max=255" example:"Youth Camp 2026"`
	Description string `json:"description"`
	Date        string `json:"date" example:"2026-09-12"`
	Time        string `json:"time" example:"18:30"`
	Location    string `json:"location"`
	Secret      string `json:"secret,omitempty"`
}

type EventSummary struct {
	models.Event
	AttendeeCount int64 `json:"attendee_count"`
}

func (s *EventService) ListEvents() ([]EventSummary, error) {
	var events []models.Event
	if err := s.db.Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}

	result := make([]EventSummary, len(events))
	for i, e := range events {
		var count int64
		s.db.Model(&models.Attendee{}).Where("event_id = ?", e.ID).Count(&count)
		result[i] = EventSummary{Event: e, AttendeeCount: count}
	}
	return result, nil
}

func (s *EventService) GetEvent(eventID uint) (*models.Event, error) {
	var event models.Event
	if err := s.db.First(&event, eventID).Error; err != nil {
		return nil, ErrEventNotFound
	}
	return &event, nil
}

func (s *EventService) CreateEvent(input EventInput) (*models.Event, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	event := models.Event{
		Name:        name,
		Description: input.Description,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
	}
	if input.Secret != "" {
		hash, err := HashSecret(input.Secret)
		if err != nil {
			return nil, err
		}
		event.SecretHash = hash
	}

	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}
	event.Protected = event.SecretHash != ""
	return &event, nil
}

// UpdateEvent changes event details. A non-empty secret replaces the
// hash; ClearSecret removes protection entirely.
func (s *EventService) UpdateEvent(eventID uint, input EventInput, clearSecret bool) (*models.Event, error) {
	var event models.Event
	if err := s.db.First(&event, eventID).Error; err != nil {
		return nil, ErrEventNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	event.Name = name
	event.Description = input.Description
	event.Date = input.Date
	event.Time = input.Time
	event.Location = input.Location

	if clearSecret {
		event.SecretHash = ""
	} else if input.Secret != "" {
		hash, err := HashSecret(input.Secret)
		if err != nil {
			return nil, err
		}
		event.SecretHash = hash
	}

	if err := s.db.Save(&event).Error; err != nil {
		return nil, err
	}
	event.Protected = event.SecretHash != ""
	return &event, nil
}

// DeleteEvent removes the event; its attendees go with it through the
// foreign-key cascade.
func (s *EventService) DeleteEvent(eventID uint) error {
	result := s.db.Delete(&models.Event{}, eventID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

// FinishEvent closes the event for roster mutations.
func (s *EventService) FinishEvent(eventID uint) (*models.Event, error) {
	return s.setFinished(eventID, true)
}

// RestartEvent reopens a finished event.
func (s *EventService) RestartEvent(eventID uint) (*models.Event, error) {
	return s.setFinished(eventID, false)
}

func (s *EventService) setFinished(eventID uint, finished bool) (*models.Event, error) {
	var event models.Event
	if err := s.db.First(&event, eventID).Error; err != nil {
		return nil, ErrEventNotFound
	}
	event.Finished = finished
	if err := s.db.Save(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}
