package handlers

import (
	"io"
	"net/http"

	"github.com/eldon922/ekklesia-be/internal/metrics"
	"github.com/eldon922/ekklesia-be/internal/models"
	"github.com/eldon922/ekklesia-be/internal/services"
	"github.com/eldon922/ekklesia-be/internal/ws"

	"github.com/gin-gonic/gin"
)

// maxImportSize caps uploaded roster files at 8 MiB.
const maxImportSize = 8 << 20

type ImportHandler struct {
	importService   *services.ImportService
	attendeeService *services.AttendeeService
	hub             *ws.Hub
}

func NewImportHandler(importService *services.ImportService, attendeeService *services.AttendeeService, hub *ws.Hub) *ImportHandler {
	return &ImportHandler{importService: importService, attendeeService: attendeeService, hub: hub}
}

type ConfirmImportRequest struct {
	Candidates []models.DuplicateCandidate `json:"candidates" binding:"required"`
}

// ImportAttendees godoc
// @Summary      Bulk-import attendees from a CSV/XLS/XLSX file
// @Description  Rows matching existing attendees are returned as duplicate candidates instead of being inserted
// @Tags         import
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "Event ID"
// @Param        file formData file true "Roster file with a header row"
// @Success      200 {object} services.ImportResult
// @Failure      422 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/events/{id}/attendees/import [post]
func (h *ImportHandler) ImportAttendees(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file required"})
		return
	}
	defer file.Close()

	if header.Size > maxImportSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file too large"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot read file"})
		return
	}

	result, err := h.importService.ImportAttendees(eventID, header.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.AttendeesImported.Add(float64(result.Imported))
	metrics.ImportDuplicates.Add(float64(len(result.Duplicates)))

	// Duplicates are not broadcast: they are not part of the roster yet.
	go h.hub.Broadcast(eventID, ws.WSMessage{Type: ws.EventAttendeesImported, Data: gin.H{
		"event_id": eventID,
		"imported": result.Imported,
		"skipped":  result.Skipped,
		"stats":    result.Stats,
	}})

	c.JSON(http.StatusOK, result)
}

// ConfirmImport godoc
// @Summary      Import duplicate candidates the client chose to keep
// @Description  The candidate list is the subset of the previous import response the user confirmed
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        id path int true "Event ID"
// @Param        request body ConfirmImportRequest true "Chosen duplicate candidates"
// @Success      200 {object} services.ImportResult
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/events/{id}/attendees/import/confirm [post]
func (h *ImportHandler) ConfirmImport(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ConfirmImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.importService.ConfirmDuplicateImport(eventID, req.Candidates)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.AttendeesImported.Add(float64(result.Imported))

	go h.hub.Broadcast(eventID, ws.WSMessage{Type: ws.EventAttendeesImported, Data: gin.H{
		"event_id": eventID,
		"imported": result.Imported,
		"skipped":  0,
		"stats":    result.Stats,
	}})

	c.JSON(http.StatusOK, result)
}
