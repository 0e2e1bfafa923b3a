package services

import (
	"errors"
	"testing"

	"github.com/eldon922/ekklesia-be/internal/models"
)

func TestAddAttendee(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db, false)
	svc := NewAttendeeService(db)

	attendee, err := svc.AddAttendee(event.ID, AttendeeInput{Name: "  Jane Doe  ", Phone: "0811111111"})
	if err != nil {
		t.Fatalf("AddAttendee: %v", err)
	}
	if attendee.Name != "Jane Doe" {
		t.Errorf("name not trimmed: %q", attendee.Name)
	}
	if attendee.Source != models.SourceManual {
		t.Errorf("got source %q, want %q", attendee.Source, models.SourceManual)
	}
	if attendee.CheckedIn || attendee.CheckedInAt != nil {
		t.Error("new attendee must start not checked in")
	}
}

func TestAddAttendeeEmptyName(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db, false)
	svc := NewAttendeeService(db)

	if _, err := svc.AddAttendee(event.ID, AttendeeInput{Name: "   "}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestCheckInTwice(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db, false)
	attendee := createTestAttendee(t, db, event.ID, "Jane", "")
	svc := NewAttendeeService(db)

	first, err := svc.CheckIn(event.ID, attendee.ID)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if first.AlreadyCheckedIn {
		t.Error("first check-in must not report a conflict")
	}
	if !first.Attendee.CheckedIn || first.Attendee.CheckedInAt == nil {
		t.Fatal("first check-in must set flag and timestamp")
	}

	second, err := svc.CheckIn(event.ID, attendee.ID)
	if err != nil {
		t.Fatalf("second CheckIn: %v", err)
	}
	if !second.AlreadyCheckedIn {
		t.Error("second check-in must report a conflict")
	}
	if second.Attendee.CheckedInAt == nil ||
		!second.Attendee.CheckedInAt.Equal(*first.Attendee.CheckedInAt) {
		t.Errorf("conflict must keep the original timestamp: %v vs %v",
			second.Attendee.CheckedInAt, first.Attendee.CheckedInAt)
	}

	stats, err := svc.GetStats(event.ID)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.Total != 1 || stats.CheckedIn != 1 {
		t.Errorf("got stats %+v, want {1 1}", stats)
	}
}

func TestUndoCheckIn(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db, false)
	attendee := createTestAttendee(t, db, event.ID, "Jane", "")
	svc := NewAttendeeService(db)

	if _, err := svc.CheckIn(event.ID, attendee.ID); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	undone, err := svc.UndoCheckIn(event.ID, attendee.ID)
	if err != nil {
		t.Fatalf("UndoCheckIn: %v", err)
	}
	if undone.CheckedIn || undone.CheckedInAt != nil {
		t.Errorf("undo must clear flag and timestamp: %+v", undone)
	}

	// Undo on a pending attendee is a data-level no-op, not an error.
	if _, err := svc.UndoCheckIn(event.ID, attendee.ID); err != nil {
		t.Fatalf("second UndoCheckIn: %v", err)
	}
}

// The lifecycle gate blocks every roster mutation on a finished event
// except undo-check-in, which stays available for corrections.
func TestFinishedEventGate(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db, false)
	attendee := createTestAttendee(t, db, event.ID, "Jane", "")
	svc := NewAttendeeService(db)

	if _, err := svc.CheckIn(event.ID, attendee.ID); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	db.Model(&models.Event{}).Where("id = ?", event.ID).Update("finished", true)

	before, err := svc.GetStats(event.ID)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if _, err := svc.AddAttendee(event.ID, AttendeeInput{Name: "Budi"}); !errors.Is(err, ErrEventFinished) {
		t.Errorf("AddAttendee: expected ErrEventFinished, got %v", err)
	}
	if _, err := svc.CheckIn(event.ID, attendee.ID); !errors.Is(err, ErrEventFinished) {
		t.Errorf("CheckIn: expected ErrEventFinished, got %v", err)
	}
	if err := svc.DeleteAttendee(event.ID, attendee.ID); !errors.Is(err, ErrEventFinished) {
		t.Errorf("DeleteAttendee: expected ErrEventFinished, got %v", err)
	}
	if _, err := svc.ClearAttendees(event.ID); !errors.Is(err, ErrEventFinished) {
		t.Errorf("ClearAttendees: expected ErrEventFinished, got %v", err)
	}

	after, err := svc.GetStats(event.ID)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if *before != *after {
		t.Errorf("blocked mutations changed stats: %+v vs %+v", before, after)
	}

	// Undo-check-in is deliberately exempt from the gate.
	undone, err := svc.UndoCheckIn(event.ID, attendee.ID)
	if err != nil {
		t.Fatalf("UndoCheckIn on finished event: %v", err)
	}
	if undone.CheckedIn {
		t.Error("undo on finished event must still clear the flag")
	}
}

func TestListAttendeesFilter(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db, false)
	createTestAttendee(t, db, event.ID, "Jane Doe", "0811111111")
	budi := createTestAttendee(t, db, event.ID, "Budi Santoso", "0822222222")
	svc := NewAttendeeService(db)

	if _, err := svc.CheckIn(event.ID, budi.ID); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	bySearch, err := svc.ListAttendees(event.ID, AttendeeFilter{Search: "jane"})
	if err != nil {
		t.Fatalf("ListAttendees: %v", err)
	}
	if len(bySearch) != 1 || bySearch[0].Name != "Jane Doe" {
		t.Errorf("search filter returned %v", bySearch)
	}

	byPhone, err := svc.ListAttendees(event.ID, AttendeeFilter{Search: "0822"})
	if err != nil {
		t.Fatalf("ListAttendees: %v", err)
	}
	if len(byPhone) != 1 || byPhone[0].Name != "Budi Santoso" {
		t.Errorf("phone search returned %v", byPhone)
	}

	checkedIn := true
	byState, err := svc.ListAttendees(event.ID, AttendeeFilter{CheckedIn: &checkedIn})
	if err != nil {
		t.Fatalf("ListAttendees: %v", err)
	}
	if len(byState) != 1 || byState[0].ID != budi.ID {
		t.Errorf("checked_in filter returned %v", byState)
	}
}

func TestDeleteAndClearAttendees(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db, false)
	jane := createTestAttendee(t, db, event.ID, "Jane", "")
	createTestAttendee(t, db, event.ID, "Budi", "")
	svc := NewAttendeeService(db)

	if err := svc.DeleteAttendee(event.ID, jane.ID); err != nil {
		t.Fatalf("DeleteAttendee: %v", err)
	}
	if err := svc.DeleteAttendee(event.ID, jane.ID); !errors.Is(err, ErrAttendeeNotFound) {
		t.Errorf("expected ErrAttendeeNotFound, got %v", err)
	}

	deleted, err := svc.ClearAttendees(event.ID)
	if err != nil {
		t.Fatalf("ClearAttendees: %v", err)
	}
	if deleted != 1 {
		t.Errorf("got %d deleted, want 1", deleted)
	}
	if rosterCount(t, db, event.ID) != 0 {
		t.Error("roster must be empty after clear")
	}
}
