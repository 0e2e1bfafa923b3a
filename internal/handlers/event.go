package handlers

import (
	"net/http"

	"github.com/eldon922/ekklesia-be/internal/services"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService *services.EventService
	authService  *services.AuthService
}

func NewEventHandler(eventService *services.EventService, authService *services.AuthService) *EventHandler {
	return &EventHandler{eventService: eventService, authService: authService}
}

type UpdateEventRequest struct {
	services.EventInput
	ClearSecret bool `json:"clear_secret"`
}

type UnlockRequest struct {
	Secret string `json:"secret"`
}

type UnlockResponse struct {
	Token string `json:"token"`
}

// ListEvents godoc
// @Summary      List events
// @Tags         events
// @Produce      json
// @Success      200 {array} services.EventSummary
// @Router       /api/v1/events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// CreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request body services.EventInput true "Event data"
// @Success      201 {object} models.Event
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var input services.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// GetEvent godoc
// @Summary      Get one event
// @Tags         events
// @Produce      json
// @Param        id path int true "Event ID"
// @Success      200 {object} models.Event
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.GetEvent(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id path int true "Event ID"
// @Param        request body UpdateEventRequest true "Event data"
// @Success      200 {object} models.Event
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(eventID, req.EventInput, req.ClearSecret)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary      Delete an event and its attendees
// @Tags         events
// @Produce      json
// @Param        id path int true "Event ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(eventID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "event deleted"})
}

// FinishEvent godoc
// @Summary      Mark an event finished
// @Description  A finished event rejects roster mutations until restarted
// @Tags         events
// @Produce      json
// @Param        id path int true "Event ID"
// @Success      200 {object} models.Event
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/events/{id}/finish [post]
func (h *EventHandler) FinishEvent(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.FinishEvent(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// RestartEvent godoc
// @Summary      Reopen a finished event
// @Tags         events
// @Produce      json
// @Param        id path int true "Event ID"
// @Success      200 {object} models.Event
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/events/{id}/restart [post]
func (h *EventHandler) RestartEvent(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.RestartEvent(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// UnlockEvent godoc
// @Summary      Unlock a protected event
// @Description  Exchange the shared event secret for an access token
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id path int true "Event ID"
// @Param        request body UnlockRequest true "Event secret"
// @Success      200 {object} UnlockResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/events/{id}/unlock [post]
func (h *EventHandler) UnlockEvent(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.authService.Unlock(eventID, req.Secret)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UnlockResponse{Token: token})
}
