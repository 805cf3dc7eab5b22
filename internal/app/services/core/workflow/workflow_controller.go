package workflow

import (
	"context"
	"encoding/json"
	"labportal-service/internal/app/contracts"
	"labportal-service/internal/pkg/constvars"
	"labportal-service/internal/pkg/dto/requests"
	"labportal-service/internal/pkg/exceptions"
	"labportal-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WorkflowController struct {
	Log             *zap.Logger
	WorkflowUsecase contracts.WorkflowUsecase
}

func NewWorkflowController(logger *zap.Logger, workflowUsecase contracts.WorkflowUsecase) *WorkflowController {
	return &WorkflowController{
		Log:             logger,
		WorkflowUsecase: workflowUsecase,
	}
}

func (ctrl *WorkflowController) CheckReadiness(w http.ResponseWriter, r *http.Request) {
	orderCode := chi.URLParam(r, constvars.URLParamOrderCode)

	request := new(requests.CheckReadinessRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.CheckReadiness(ctx, orderCode, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CheckReadinessSuccessMessage, response)
}

func (ctrl *WorkflowController) ReserveReagents(w http.ResponseWriter, r *http.Request) {
	orderCode := chi.URLParam(r, constvars.URLParamOrderCode)

	request := new(requests.ReserveReagentsRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.ReserveReagents(ctx, orderCode, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ReserveReagentsSuccessMessage, response)
}

func (ctrl *WorkflowController) StartExecution(w http.ResponseWriter, r *http.Request) {
	orderCode := chi.URLParam(r, constvars.URLParamOrderCode)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.StartExecution(ctx, orderCode)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.StartExecutionSuccessMessage, response)
}

func (ctrl *WorkflowController) GetExecution(w http.ResponseWriter, r *http.Request) {
	orderCode := chi.URLParam(r, constvars.URLParamOrderCode)

	response, err := ctrl.WorkflowUsecase.GetExecution(r.Context(), orderCode)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetExecutionSuccessMessage, response)
}

func (ctrl *WorkflowController) SaveResult(w http.ResponseWriter, r *http.Request) {
	orderCode := chi.URLParam(r, constvars.URLParamOrderCode)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.SaveResult(ctx, orderCode)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SaveResultSuccessMessage, response)
}

func (ctrl *WorkflowController) Teardown(w http.ResponseWriter, r *http.Request) {
	orderCode := chi.URLParam(r, constvars.URLParamOrderCode)

	err := ctrl.WorkflowUsecase.Teardown(r.Context(), orderCode)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TeardownExecutionSuccessMessage, nil)
}
