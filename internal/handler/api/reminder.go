package api

import (
	"errors"
	"net/http"

	"recruit-reminders/internal/domain/reminder"
	reqdto "recruit-reminders/internal/handler/dto/request"
	resdto "recruit-reminders/internal/handler/dto/response"
	"recruit-reminders/internal/handler/httperr"
	"recruit-reminders/internal/handler/middleware"
	"recruit-reminders/internal/usecase/commands"
	"recruit-reminders/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReminderHandler struct {
	cmds commands.ReminderCommands
	q    queries.ReminderQueries
}

func NewReminderHandler(cmds commands.ReminderCommands, q queries.ReminderQueries) *ReminderHandler {
	return &ReminderHandler{cmds: cmds, q: q}
}

// @Summary Create reminder
// @Description Create a reminder task for the authenticated employer
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employer_id path string true "Employer ID"
// @Param request body reqdto.CreateReminderRequest true "Create reminder request"
// @Success 201 {object} resdto.ReminderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /employers/{employer_id}/reminders [post]
func (h *ReminderHandler) Create(c *gin.Context) {
	employerID, ok := h.pathEmployer(c)
	if !ok {
		return
	}

	var req reqdto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand(employerID))
	if err != nil {
		h.abortReminderError(c, err, "Create reminder failed")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.ReminderID, employerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reminder", nil)
		return
	}

	c.Header("Location", "/api/reminders/"+result.ReminderID.String())
	c.JSON(http.StatusCreated, resdto.FromReminderView(view))
}

// @Summary List reminders
// @Description List the employer's reminder tasks, optionally filtered by status
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Param employer_id path string true "Employer ID"
// @Param status query string false "Filter by status (pending, done, ignored)"
// @Success 200 {array} resdto.ReminderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /employers/{employer_id}/reminders [get]
func (h *ReminderHandler) ListByEmployer(c *gin.Context) {
	employerID, ok := h.pathEmployer(c)
	if !ok {
		return
	}

	var statusFilter *string
	if v, exists := c.GetQuery("status"); exists {
		statusFilter = &v
	}

	actorID, _ := middleware.GetEmployerID(c)
	views, err := h.q.ListByEmployer(c.Request.Context(), employerID, statusFilter, actorID)
	if err != nil {
		h.abortReminderError(c, err, "List reminders failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminders": resdto.FromReminderList(views)})
}

// @Summary Get reminder
// @Description Get a reminder task by ID
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder ID"
// @Success 200 {object} resdto.ReminderResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reminders/{id} [get]
func (h *ReminderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	actorID, _ := middleware.GetEmployerID(c)
	view, err := h.q.GetByID(c.Request.Context(), id, actorID)
	if err != nil {
		h.abortReminderError(c, err, "Get reminder failed")
		return
	}

	c.JSON(http.StatusOK, resdto.FromReminderView(view))
}

// @Summary Update reminder
// @Description Partially update a reminder task (title, type, url, links, due time, status)
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder ID"
// @Param request body reqdto.UpdateReminderRequest true "Update reminder request"
// @Success 200 {object} resdto.ReminderResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reminders/{id} [patch]
func (h *ReminderHandler) Update(c *gin.Context) {
	h.mutate(c, func(c *gin.Context, id, actorID uuid.UUID) error {
		var req reqdto.UpdateReminderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return errAborted
		}
		return h.cmds.Update(c.Request.Context(), id, req.ToCommand(), actorID)
	})
}

// @Summary Update reminder status
// @Description Set a reminder's status (pending, done, ignored)
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder ID"
// @Param request body reqdto.UpdateStatusRequest true "Update status request"
// @Success 200 {object} resdto.ReminderResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reminders/{id}/status [patch]
func (h *ReminderHandler) UpdateStatus(c *gin.Context) {
	h.mutate(c, func(c *gin.Context, id, actorID uuid.UUID) error {
		var req reqdto.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return errAborted
		}
		return h.cmds.UpdateStatus(c.Request.Context(), id, req.Status, actorID)
	})
}

// @Summary Reschedule reminder
// @Description Move or clear a reminder's due time
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder ID"
// @Param request body reqdto.RescheduleRequest true "Reschedule request"
// @Success 200 {object} resdto.ReminderResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reminders/{id}/due-at [patch]
func (h *ReminderHandler) Reschedule(c *gin.Context) {
	h.mutate(c, func(c *gin.Context, id, actorID uuid.UUID) error {
		var req reqdto.RescheduleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return errAborted
		}
		return h.cmds.Reschedule(c.Request.Context(), id, req.DueAt, actorID)
	})
}

// errAborted signals that the step already wrote a response.
var errAborted = errors.New("request aborted")

func (h *ReminderHandler) mutate(c *gin.Context, fn func(c *gin.Context, id, actorID uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	actorID, _ := middleware.GetEmployerID(c)

	if err := fn(c, id, actorID); err != nil {
		if !errors.Is(err, errAborted) {
			h.abortReminderError(c, err, "Update reminder failed")
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, actorID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reminder", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReminderView(view))
}

func (h *ReminderHandler) pathEmployer(c *gin.Context) (uuid.UUID, bool) {
	employerID, err := uuid.Parse(c.Param("employer_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid employer id", nil)
		return uuid.Nil, false
	}

	actorID, ok := middleware.GetEmployerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return uuid.Nil, false
	}
	if actorID != employerID {
		httperr.AbortWithError(c, http.StatusForbidden, queries.ErrReminderAccess, "You are not allowed to access these reminders", nil)
		return uuid.Nil, false
	}
	return employerID, true
}

func (h *ReminderHandler) abortReminderError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrReminderNotFound), errors.Is(err, queries.ErrReminderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reminder not found", nil)
	case errors.Is(err, commands.ErrReminderNotOwned), errors.Is(err, queries.ErrReminderAccess):
		httperr.AbortWithError(c, http.StatusForbidden, err, "You are not allowed to modify this reminder", nil)
	case errors.Is(err, queries.ErrInvalidStatusFilter),
		errors.Is(err, reminder.ErrInvalidStatus),
		errors.Is(err, reminder.ErrInvalidTaskType),
		errors.Is(err, reminder.ErrEmptyTitle),
		errors.Is(err, reminder.ErrTitleTooLong),
		errors.Is(err, reminder.ErrEmptyRedirectURL),
		errors.Is(err, reminder.ErrRedirectURLTooLong),
		errors.Is(err, reminder.ErrMissingEmployer):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}
