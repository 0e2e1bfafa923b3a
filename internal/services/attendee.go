package services

import (
	"strings"
	"time"

	"github.com/eldon922/ekklesia-be/internal/models"

	"gorm.io/gorm"
)

type AttendeeService struct {
	db *gorm.DB
}

func NewAttendeeService(db *gorm.DB) *AttendeeService {
	return &AttendeeService{db: db}
}

type AttendeeInput struct {
	Name        string `json:"name" binding:"required,min=1,max=255" example:"Jane Doe"`
	Phone       string `json:"phone" example:"0812345678"`
	Affiliation string `json:"affiliation" example:"GKI"`
}

type AttendeeFilter struct {
	Search    string
	CheckedIn *bool
}

// CheckInResult reports a check-in attempt. AlreadyCheckedIn marks the
// conflict case: the record is returned unchanged so the caller can
// tell "done just now" from "already was".
type CheckInResult struct {
	Attendee         models.Attendee `json:"attendee"`
	AlreadyCheckedIn bool            `json:"already_checked_in"`
}

// assertMutable is the lifecycle gate: a finished event rejects every
// roster mutation until it is restarted.
func assertMutable(db *gorm.DB, eventID uint) (*models.Event, error) {
	var event models.Event
	if err := db.First(&event, eventID).Error; err != nil {
		return nil, ErrEventNotFound
	}
	if event.Finished {
		return nil, ErrEventFinished
	}
	return &event, nil
}

func (s *AttendeeService) ListAttendees(eventID uint, filter AttendeeFilter) ([]models.Attendee, error) {
	if err := s.db.First(&models.Event{}, eventID).Error; err != nil {
		return nil, ErrEventNotFound
	}

	q := s.db.Where("event_id = ?", eventID)
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ?", pattern, "%"+search+"%")
	}
	if filter.CheckedIn != nil {
		q = q.Where("checked_in = ?", *filter.CheckedIn)
	}

	var attendees []models.Attendee
	if err := q.Order("name ASC").Find(&attendees).Error; err != nil {
		return nil, err
	}
	return attendees, nil
}

func (s *AttendeeService) AddAttendee(eventID uint, input AttendeeInput) (*models.Attendee, error) {
	if _, err := assertMutable(s.db, eventID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	attendee := models.Attendee{
		EventID:     eventID,
		Name:        name,
		Phone:       input.Phone,
		Affiliation: input.Affiliation,
		Source:      models.SourceManual,
	}
	if err := s.db.Create(&attendee).Error; err != nil {
		return nil, err
	}
	return &attendee, nil
}

// CheckIn moves an attendee to checked-in and stamps the time. Checking
// in an already-checked-in attendee is reported as a conflict with the
// record untouched, not as an error.
func (s *AttendeeService) CheckIn(eventID, attendeeID uint) (*CheckInResult, error) {
	if _, err := assertMutable(s.db, eventID); err != nil {
		return nil, err
	}

	var attendee models.Attendee
	if err := s.db.Where("id = ? AND event_id = ?", attendeeID, eventID).First(&attendee).Error; err != nil {
		return nil, ErrAttendeeNotFound
	}

	if attendee.CheckedIn {
		return &CheckInResult{Attendee: attendee, AlreadyCheckedIn: true}, nil
	}

	now := time.Now()
	attendee.CheckedIn = true
	attendee.CheckedInAt = &now
	if err := s.db.Save(&attendee).Error; err != nil {
		return nil, err
	}
	return &CheckInResult{Attendee: attendee}, nil
}

// UndoCheckIn clears the check-in flag and timestamp. It is not gated
// on the event lifecycle: corrections stay possible after an event is
// finished.
func (s *AttendeeService) UndoCheckIn(eventID, attendeeID uint) (*models.Attendee, error) {
	if err := s.db.First(&models.Event{}, eventID).Error; err != nil {
		return nil, ErrEventNotFound
	}

	var attendee models.Attendee
	if err := s.db.Where("id = ? AND event_id = ?", attendeeID, eventID).First(&attendee).Error; err != nil {
		return nil, ErrAttendeeNotFound
	}

	attendee.CheckedIn = false
	attendee.CheckedInAt = nil
	if err := s.db.Save(&attendee).Error; err != nil {
		return nil, err
	}
	return &attendee, nil
}

func (s *AttendeeService) DeleteAttendee(eventID, attendeeID uint) error {
	if _, err := assertMutable(s.db, eventID); err != nil {
		return err
	}

	result := s.db.Where("id = ? AND event_id = ?", attendeeID, eventID).Delete(&models.Attendee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAttendeeNotFound
	}
	return nil
}

// ClearAttendees wipes the whole roster of an event.
func (s *AttendeeService) ClearAttendees(eventID uint) (int64, error) {
	if _, err := assertMutable(s.db, eventID); err != nil {
		return 0, err
	}

	result := s.db.Where("event_id = ?", eventID).Delete(&models.Attendee{})
	return result.RowsAffected, result.Error
}

// GetStats recomputes the roster summary from scratch; nothing is
// cached between calls.
func (s *AttendeeService) GetStats(eventID uint) (*models.Stats, error) {
	if err := s.db.First(&models.Event{}, eventID).Error; err != nil {
		return nil, ErrEventNotFound
	}
	return computeStats(s.db, eventID)
}

func computeStats(db *gorm.DB, eventID uint) (*models.Stats, error) {
	var stats models.Stats
	if err := db.Model(&models.Attendee{}).Where("event_id = ?", eventID).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Attendee{}).Where("event_id = ? AND checked_in = ?", eventID, true).Count(&stats.CheckedIn).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
