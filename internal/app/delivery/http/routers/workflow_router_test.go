package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"labportal-service/internal/app/services/core/workflow"
	"labportal-service/internal/pkg/constvars"
	"labportal-service/internal/pkg/dto/requests"
	"labportal-service/internal/pkg/dto/responses"
	"labportal-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockWorkflowUsecase struct {
	mock.Mock
}

func (m *MockWorkflowUsecase) CheckReadiness(ctx context.Context, orderCode string, request *requests.CheckReadinessRequest) (*responses.CheckReadiness, error) {
	args := m.Called(ctx, orderCode, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CheckReadiness), args.Error(1)
}

func (m *MockWorkflowUsecase) ReserveReagents(ctx context.Context, orderCode string, request *requests.ReserveReagentsRequest) (*responses.ReserveReagents, error) {
	args := m.Called(ctx, orderCode, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ReserveReagents), args.Error(1)
}

func (m *MockWorkflowUsecase) StartExecution(ctx context.Context, orderCode string) (*responses.ExecutionStatus, error) {
	args := m.Called(ctx, orderCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ExecutionStatus), args.Error(1)
}

func (m *MockWorkflowUsecase) GetExecution(ctx context.Context, orderCode string) (*responses.ExecutionStatus, error) {
	args := m.Called(ctx, orderCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ExecutionStatus), args.Error(1)
}

func (m *MockWorkflowUsecase) SaveResult(ctx context.Context, orderCode string) (*responses.SaveResult, error) {
	args := m.Called(ctx, orderCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SaveResult), args.Error(1)
}

func (m *MockWorkflowUsecase) Teardown(ctx context.Context, orderCode string) error {
	args := m.Called(ctx, orderCode)
	return args.Error(0)
}

func newWorkflowTestRouter(mockUsecase *MockWorkflowUsecase) *chi.Mux {
	controller := workflow.NewWorkflowController(zap.NewNop(), mockUsecase)
	router := chi.NewRouter()
	attachWorkflowRoutes(router, controller)
	return router
}

func TestWorkflowRouter_Readiness(t *testing.T) {
	t.Run("Ready Instrument", func(t *testing.T) {
		mockUsecase := new(MockWorkflowUsecase)
		mockUsecase.On("CheckReadiness", mock.Anything, "ORD-9", mock.AnythingOfType("*requests.CheckReadinessRequest")).
			Return(&responses.CheckReadiness{Outcome: "ready"}, nil)
		router := newWorkflowTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(requests.CheckReadinessRequest{InstrumentID: "EQ-5"})
		req := httptest.NewRequest("POST", "/ORD-9/readiness", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "a readiness answer is a 200")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Missing Instrument ID Fails Validation", func(t *testing.T) {
		mockUsecase := new(MockWorkflowUsecase)
		router := newWorkflowTestRouter(mockUsecase)

		req := httptest.NewRequest("POST", "/ORD-9/readiness", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "an empty body must not reach the usecase")
		mockUsecase.AssertNotCalled(t, "CheckReadiness", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWorkflowRouter_Reservation(t *testing.T) {
	t.Run("Created On Success", func(t *testing.T) {
		mockUsecase := new(MockWorkflowUsecase)
		mockUsecase.On("ReserveReagents", mock.Anything, "ORD-9", mock.AnythingOfType("*requests.ReserveReagentsRequest")).
			Return(&responses.ReserveReagents{UsageRecordIDs: []string{"usage-1"}}, nil)
		router := newWorkflowTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(requests.ReserveReagentsRequest{
			Reagents: []requests.ReagentRequirement{{ReagentName: "Glucose Reagent", Quantity: 5}},
		})
		req := httptest.NewRequest("POST", "/ORD-9/reservation", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code, "a reservation is a 201")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Empty Reagent List Fails Validation", func(t *testing.T) {
		mockUsecase := new(MockWorkflowUsecase)
		router := newWorkflowTestRouter(mockUsecase)

		req := httptest.NewRequest("POST", "/ORD-9/reservation", bytes.NewBufferString(`{"reagents":[]}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "at least one reagent is required")
		mockUsecase.AssertNotCalled(t, "ReserveReagents", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Out Of Stock Maps To Conflict", func(t *testing.T) {
		mockUsecase := new(MockWorkflowUsecase)
		mockUsecase.On("ReserveReagents", mock.Anything, "ORD-9", mock.AnythingOfType("*requests.ReserveReagentsRequest")).
			Return(nil, exceptions.ErrReagentOutOfStock("Glucose Reagent", 2, 5))
		router := newWorkflowTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(requests.ReserveReagentsRequest{
			Reagents: []requests.ReagentRequirement{{ReagentName: "Glucose Reagent", Quantity: 5}},
		})
		req := httptest.NewRequest("POST", "/ORD-9/reservation", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code, "insufficient stock surfaces as 409")
	})
}

func TestWorkflowRouter_Execution(t *testing.T) {
	t.Run("Start Is Accepted", func(t *testing.T) {
		mockUsecase := new(MockWorkflowUsecase)
		mockUsecase.On("StartExecution", mock.Anything, "ORD-9").
			Return(&responses.ExecutionStatus{OrderCode: "ORD-9", Phase: "testing"}, nil)
		router := newWorkflowTestRouter(mockUsecase)

		req := httptest.NewRequest("POST", "/ORD-9/start", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusAccepted, rr.Code, "starting a run is a 202")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Status Poll", func(t *testing.T) {
		mockUsecase := new(MockWorkflowUsecase)
		mockUsecase.On("GetExecution", mock.Anything, "ORD-9").
			Return(&responses.ExecutionStatus{OrderCode: "ORD-9", Phase: "testing", Progress: 42, Step: "Reaction"}, nil)
		router := newWorkflowTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/ORD-9", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success, "a status poll is a success envelope")
		assert.Equal(t, constvars.GetExecutionSuccessMessage, body.Message)
	})

	t.Run("Unknown Session Maps To Not Found", func(t *testing.T) {
		mockUsecase := new(MockWorkflowUsecase)
		mockUsecase.On("GetExecution", mock.Anything, "ORD-404").
			Return(nil, exceptions.ErrSessionNotFound("ORD-404"))
		router := newWorkflowTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/ORD-404", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code, "no session means 404")
	})

	t.Run("Save Result Is Created", func(t *testing.T) {
		mockUsecase := new(MockWorkflowUsecase)
		mockUsecase.On("SaveResult", mock.Anything, "ORD-9").
			Return(&responses.SaveResult{}, nil)
		router := newWorkflowTestRouter(mockUsecase)

		req := httptest.NewRequest("POST", "/ORD-9/result", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code, "an accepted result is a 201")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Teardown", func(t *testing.T) {
		mockUsecase := new(MockWorkflowUsecase)
		mockUsecase.On("Teardown", mock.Anything, "ORD-9").Return(nil)
		router := newWorkflowTestRouter(mockUsecase)

		req := httptest.NewRequest("DELETE", "/ORD-9", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "teardown is a 200")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Plain Errors Become Internal Server Errors", func(t *testing.T) {
		mockUsecase := new(MockWorkflowUsecase)
		mockUsecase.On("StartExecution", mock.Anything, "ORD-9").
			Return(nil, errors.New("boom"))
		router := newWorkflowTestRouter(mockUsecase)

		req := httptest.NewRequest("POST", "/ORD-9/start", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code, "untyped errors default to 500")
	})
}
