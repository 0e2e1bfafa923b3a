package handlers

import (
	"net/http"
	"strconv"

	"github.com/eldon922/ekklesia-be/internal/metrics"
	"github.com/eldon922/ekklesia-be/internal/services"
	"github.com/eldon922/ekklesia-be/internal/ws"

	"github.com/gin-gonic/gin"
)

type AttendeeHandler struct {
	attendeeService *services.AttendeeService
	hub             *ws.Hub
}

func NewAttendeeHandler(attendeeService *services.AttendeeService, hub *ws.Hub) *AttendeeHandler {
	return &AttendeeHandler{attendeeService: attendeeService, hub: hub}
}

// broadcast publishes a roster change with fresh stats. It runs on its
// own goroutine: the HTTP response does not wait for subscribers.
func (h *AttendeeHandler) broadcast(eventID uint, msgType string, data gin.H) {
	stats, err := h.attendeeService.GetStats(eventID)
	if err != nil {
		return
	}
	data["event_id"] = eventID
	data["stats"] = stats
	go h.hub.Broadcast(eventID, ws.WSMessage{Type: msgType, Data: data})
}

// ListAttendees godoc
// @Summary      List attendees of an event
// @Tags         attendees
// @Produce      json
// @Param        id path int true "Event ID"
// @Param        search query string false "Filter by name or phone"
// @Param        checked_in query bool false "Filter by check-in state"
// @Success      200 {array} models.Attendee
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/events/{id}/attendees [get]
func (h *AttendeeHandler) ListAttendees(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	filter := services.AttendeeFilter{Search: c.Query("search")}
	if v := c.Query("checked_in"); v != "" {
		checkedIn, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid checked_in"})
			return
		}
		filter.CheckedIn = &checkedIn
	}

	attendees, err := h.attendeeService.ListAttendees(eventID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attendees)
}

// AddAttendee godoc
// @Summary      Add an attendee manually
// @Tags         attendees
// @Accept       json
// @Produce      json
// @Param        id path int true "Event ID"
// @Param        request body services.AttendeeInput true "Attendee data"
// @Success      201 {object} models.Attendee
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/events/{id}/attendees [post]
func (h *AttendeeHandler) AddAttendee(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.AttendeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	attendee, err := h.attendeeService.AddAttendee(eventID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.broadcast(eventID, ws.EventAttendeeAdded, gin.H{"attendee": attendee})
	c.JSON(http.StatusCreated, attendee)
}

// CheckIn godoc
// @Summary      Check an attendee in
// @Description  Returns 409 with the unchanged record when already checked in
// @Tags         attendees
// @Produce      json
// @Param        id path int true "Event ID"
// @Param        attendeeId path int true "Attendee ID"
// @Success      200 {object} services.CheckInResult
// @Failure      409 {object} services.CheckInResult
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/events/{id}/attendees/{attendeeId}/checkin [post]
func (h *AttendeeHandler) CheckIn(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}
	attendeeID, ok := parseID(c, "attendeeId")
	if !ok {
		return
	}

	result, err := h.attendeeService.CheckIn(eventID, attendeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.AlreadyCheckedIn {
		c.JSON(http.StatusConflict, result)
		return
	}

	metrics.CheckIns.Inc()
	h.broadcast(eventID, ws.EventAttendeeCheckedIn, gin.H{"attendee": result.Attendee})
	c.JSON(http.StatusOK, result)
}

// UndoCheckIn godoc
// @Summary      Undo a check-in
// @Description  Allowed even on finished events
// @Tags         attendees
// @Produce      json
// @Param        id path int true "Event ID"
// @Param        attendeeId path int true "Attendee ID"
// @Success      200 {object} models.Attendee
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/events/{id}/attendees/{attendeeId}/checkin [delete]
func (h *AttendeeHandler) UndoCheckIn(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}
	attendeeID, ok := parseID(c, "attendeeId")
	if !ok {
		return
	}

	attendee, err := h.attendeeService.UndoCheckIn(eventID, attendeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.broadcast(eventID, ws.EventAttendeeUnchecked, gin.H{"attendee": attendee})
	c.JSON(http.StatusOK, attendee)
}

// DeleteAttendee godoc
// @Summary      Delete one attendee
// @Tags         attendees
// @Produce      json
// @Param        id path int true "Event ID"
// @Param        attendeeId path int true "Attendee ID"
// @Success      200 {object} MessageResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/events/{id}/attendees/{attendeeId} [delete]
func (h *AttendeeHandler) DeleteAttendee(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}
	attendeeID, ok := parseID(c, "attendeeId")
	if !ok {
		return
	}

	if err := h.attendeeService.DeleteAttendee(eventID, attendeeID); err != nil {
		respondError(c, err)
		return
	}

	h.broadcast(eventID, ws.EventAttendeeDeleted, gin.H{"attendee_id": attendeeID})
	c.JSON(http.StatusOK, MessageResponse{Message: "attendee deleted"})
}

// ClearAttendees godoc
// @Summary      Delete every attendee of an event
// @Tags         attendees
// @Produce      json
// @Param        id path int true "Event ID"
// @Success      200 {object} MessageResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/events/{id}/attendees [delete]
func (h *AttendeeHandler) ClearAttendees(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.attendeeService.ClearAttendees(eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.broadcast(eventID, ws.EventAttendeesCleared, gin.H{"deleted": deleted})
	c.JSON(http.StatusOK, MessageResponse{Message: "attendees cleared"})
}

// GetStats godoc
// @Summary      Roster statistics
// @Tags         attendees
// @Produce      json
// @Param        id path int true "Event ID"
// @Success      200 {object} models.Stats
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/events/{id}/stats [get]
func (h *AttendeeHandler) GetStats(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	stats, err := h.attendeeService.GetStats(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
