//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"recruit-reminders/internal/handler/api"
	resdto "recruit-reminders/internal/handler/dto/response"
	"recruit-reminders/internal/usecase/commands"
	"recruit-reminders/internal/usecase/queries"
	"recruit-reminders/tests/common/builder"
	"recruit-reminders/tests/common/fake"
	"recruit-reminders/tests/common/httptest"
	"recruit-reminders/tests/common/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ReminderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	fakeCommands *fake.ReminderCommands
	fakeQueries  *fake.ReminderQueries
	handler      *api.ReminderHandler
	employerID   uuid.UUID
}

func (s *ReminderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.employerID = uuid.New()

	s.fakeCommands = &fake.ReminderCommands{}
	s.fakeQueries = &fake.ReminderQueries{}
	s.handler = api.NewReminderHandler(s.fakeCommands, s.fakeQueries)

	// stand-in for the JWT middleware
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("employer_id", s.employerID)
		c.Next()
	}

	s.router.POST("/api/employers/:employer_id/reminders", authMiddleware, s.handler.Create)
	s.router.GET("/api/employers/:employer_id/reminders", authMiddleware, s.handler.ListByEmployer)
	s.router.GET("/api/reminders/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/api/reminders/:id", authMiddleware, s.handler.Update)
	s.router.PATCH("/api/reminders/:id/status", authMiddleware, s.handler.UpdateStatus)
	s.router.PATCH("/api/reminders/:id/due-at", authMiddleware, s.handler.Reschedule)
}

func TestReminderHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReminderHandlerTestSuite))
}

type testCaseReminder struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReminderHandlerTestSuite) TestCreate() {
	url := "/api/employers/" + s.employerID.String() + "/reminders"

	reqBody := builder.NewReminderBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReminderBuilder().WithEmployerID(s.employerID).BuildView()

	stubSuccess := func() {
		s.fakeCommands.CreateFn = func(_ context.Context, req commands.CreateReminderRequest) (*commands.CreateReminderResult, error) {
			s.Equal(s.employerID, req.EmployerID)
			return &commands.CreateReminderResult{ReminderID: returnView.ID}, nil
		}
		s.fakeQueries.GetByIDFn = func(_ context.Context, id uuid.UUID, actorID uuid.UUID) (*queries.ReminderView, error) {
			s.Equal(returnView.ID, id)
			s.Equal(s.employerID, actorID)
			return returnView, nil
		}
	}

	s.Run("success: returns 201 Created with Location header", func() {
		stubSuccess()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReminderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.TaskTitle, response.TaskTitle)
		s.Equal("pending", response.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reminders/" + returnView.ID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validationCases := []testCaseReminder{
			{name: "title length OK (255 chars)", mutate: testutil.Field("task_title", strings.Repeat("a", 255)), expectCode: http.StatusCreated},
			{name: "title length invalid (256 chars)", mutate: testutil.Field("task_title", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
			{name: "missing field: task_title", mutate: testutil.Field("task_title", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: task_type", mutate: testutil.Field("task_type", nil), expectCode: http.StatusBadRequest},
			{name: "unknown task_type", mutate: testutil.Field("task_type", "phone_call"), expectCode: http.StatusBadRequest},
			{name: "missing field: redirect_url", mutate: testutil.Field("redirect_url", nil), expectCode: http.StatusBadRequest},
			{name: "url length invalid (1025 chars)", mutate: testutil.Field("redirect_url", strings.Repeat("a", 1025)), expectCode: http.StatusBadRequest},
			{name: "absent due_at is allowed", mutate: testutil.Field("due_at", nil), expectCode: http.StatusCreated},
		}

		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				stubSuccess()
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 403 Forbidden for a foreign employer path", func() {
		foreignURL := "/api/employers/" + uuid.NewString() + "/reminders"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, foreignURL, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not allowed")
	})

	s.Run("error: 400 Bad Request for invalid employer UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/employers/invalid-uuid/reminders", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid employer id")
	})

	s.Run("error: 500 Internal Server Error on command failure", func() {
		s.fakeCommands.CreateFn = func(_ context.Context, _ commands.CreateReminderRequest) (*commands.CreateReminderResult, error) {
			return nil, errors.New("database error")
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Create reminder failed")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReminderHandlerTestSuite) TestGet() {
	reminderID := uuid.New()
	url := "/api/reminders/" + reminderID.String()

	returnView := builder.NewReminderBuilder().WithEmployerID(s.employerID).BuildView()

	s.Run("success: returns 200 OK with ReminderResponse", func() {
		returnView.ID = reminderID
		s.fakeQueries.GetByIDFn = func(_ context.Context, id uuid.UUID, actorID uuid.UUID) (*queries.ReminderView, error) {
			s.Equal(reminderID, id)
			s.Equal(s.employerID, actorID)
			return returnView, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReminderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reminderID, response.ID)
		s.Equal(returnView.TaskTitle, response.TaskTitle)
		s.Equal(returnView.TaskType, response.TaskType)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reminders/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reminder not found",
				queriesError:   queries.ErrReminderNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reminder not found",
			},
			{
				name:           "reminder of another employer",
				queriesError:   queries.ErrReminderAccess,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "not allowed",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Get reminder failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.fakeQueries.GetByIDFn = func(_ context.Context, _ uuid.UUID, _ uuid.UUID) (*queries.ReminderView, error) {
					return nil, tc.queriesError
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListByEmployer
// ================================================================================

func (s *ReminderHandlerTestSuite) TestListByEmployer() {
	baseURL := "/api/employers/" + s.employerID.String() + "/reminders"

	views := []*queries.ReminderView{
		builder.NewReminderBuilder().WithEmployerID(s.employerID).BuildView(),
		builder.NewReminderBuilder().WithEmployerID(s.employerID).BuildView(),
		builder.NewReminderBuilder().WithEmployerID(s.employerID).BuildView(),
	}

	s.Run("success: returns the employer's reminders", func() {
		s.fakeQueries.ListByEmployerFn = func(_ context.Context, employerID uuid.UUID, statusFilter *string, actorID uuid.UUID) ([]*queries.ReminderView, error) {
			s.Equal(s.employerID, employerID)
			s.Equal(s.employerID, actorID)
			s.Nil(statusFilter)
			return views, nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		reminders, ok := response["reminders"].([]any)
		s.True(ok)
		s.Equal(len(views), len(reminders))
	})

	s.Run("success: status query is forwarded", func() {
		s.fakeQueries.ListByEmployerFn = func(_ context.Context, _ uuid.UUID, statusFilter *string, _ uuid.UUID) ([]*queries.ReminderView, error) {
			s.Require().NotNil(statusFilter)
			s.Equal("pending", *statusFilter)
			return views[:1], nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?status=pending", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for an unknown status filter", func() {
		s.fakeQueries.ListByEmployerFn = func(_ context.Context, _ uuid.UUID, _ *string, _ uuid.UUID) ([]*queries.ReminderView, error) {
			return nil, queries.ErrInvalidStatusFilter
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?status=archived", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 403 Forbidden for a foreign employer path", func() {
		foreignURL := "/api/employers/" + uuid.NewString() + "/reminders"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, foreignURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not allowed")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReminderHandlerTestSuite) TestUpdate() {
	reminderID := uuid.New()
	url := "/api/reminders/" + reminderID.String()

	returnView := builder.NewReminderBuilder().WithEmployerID(s.employerID).BuildView()

	stubGet := func() {
		returnView.ID = reminderID
		s.fakeQueries.GetByIDFn = func(_ context.Context, _ uuid.UUID, _ uuid.UUID) (*queries.ReminderView, error) {
			return returnView, nil
		}
	}

	s.Run("success: returns 200 OK with the updated reminder", func() {
		stubGet()
		newTitle := "Revised follow up"
		s.fakeCommands.UpdateFn = func(_ context.Context, id uuid.UUID, req commands.UpdateReminderRequest, actorID uuid.UUID) error {
			s.Equal(reminderID, id)
			s.Equal(s.employerID, actorID)
			s.Require().NotNil(req.TaskTitle)
			s.Equal(newTitle, *req.TaskTitle)
			return nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"task_title": newTitle}, "bearer-token")

		var response resdto.ReminderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reminderID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"task_type": "phone_call"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reminder not found",
				commandsError:  commands.ErrReminderNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reminder not found",
			},
			{
				name:           "reminder not owned",
				commandsError:  commands.ErrReminderNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "not allowed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Update reminder failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.fakeCommands.UpdateFn = func(_ context.Context, _ uuid.UUID, _ commands.UpdateReminderRequest, _ uuid.UUID) error {
					return tc.commandsError
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"task_title": "x"}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *ReminderHandlerTestSuite) TestUpdateStatus() {
	reminderID := uuid.New()
	url := "/api/reminders/" + reminderID.String() + "/status"

	returnView := builder.NewReminderBuilder().WithEmployerID(s.employerID).BuildView()

	s.Run("success: returns 200 OK with the updated reminder", func() {
		returnView.ID = reminderID
		s.fakeQueries.GetByIDFn = func(_ context.Context, _ uuid.UUID, _ uuid.UUID) (*queries.ReminderView, error) {
			return returnView, nil
		}
		s.fakeCommands.UpdateStatusFn = func(_ context.Context, id uuid.UUID, status string, actorID uuid.UUID) error {
			s.Equal(reminderID, id)
			s.Equal("done", status)
			s.Equal(s.employerID, actorID)
			return nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "done"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for an unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "archived"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request for a missing status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 Not Found for a missing reminder", func() {
		s.fakeCommands.UpdateStatusFn = func(_ context.Context, _ uuid.UUID, _ string, _ uuid.UUID) error {
			return commands.ErrReminderNotFound
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "done"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reminder not found")
	})
}

// ================================================================================
// TestReschedule
// ================================================================================

func (s *ReminderHandlerTestSuite) TestReschedule() {
	reminderID := uuid.New()
	url := "/api/reminders/" + reminderID.String() + "/due-at"

	returnView := builder.NewReminderBuilder().WithEmployerID(s.employerID).BuildView()

	s.Run("success: moves the due time", func() {
		returnView.ID = reminderID
		s.fakeQueries.GetByIDFn = func(_ context.Context, _ uuid.UUID, _ uuid.UUID) (*queries.ReminderView, error) {
			return returnView, nil
		}
		newDue := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
		s.fakeCommands.RescheduleFn = func(_ context.Context, id uuid.UUID, dueAt *time.Time, actorID uuid.UUID) error {
			s.Equal(reminderID, id)
			s.Require().NotNil(dueAt)
			s.True(newDue.Equal(*dueAt))
			s.Equal(s.employerID, actorID)
			return nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"due_at": newDue}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: null due_at clears the due time", func() {
		returnView.ID = reminderID
		s.fakeQueries.GetByIDFn = func(_ context.Context, _ uuid.UUID, _ uuid.UUID) (*queries.ReminderView, error) {
			return returnView, nil
		}
		s.fakeCommands.RescheduleFn = func(_ context.Context, _ uuid.UUID, dueAt *time.Time, _ uuid.UUID) error {
			s.Nil(dueAt)
			return nil
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"due_at": nil}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found for a missing reminder", func() {
		s.fakeCommands.RescheduleFn = func(_ context.Context, _ uuid.UUID, _ *time.Time, _ uuid.UUID) error {
			return commands.ErrReminderNotFound
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"due_at": nil}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reminder not found")
	})
}
