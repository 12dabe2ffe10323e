package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repairbay/internal/application/intake/usecases"
	apperrors "repairbay/internal/shared/errors"
	"repairbay/internal/shared/logger"
	"repairbay/internal/shared/utils"
)

type ReserveJobResponse struct {
	JobID     uint   `json:"job_id"`
	Status    string `json:"status"`
	StartedAt int64  `json:"started_at"`
}

type ResolveCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"max=50"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Address   string `json:"address" validate:"max=500"`
}

type FinalizeSubmissionRequest struct {
	JobID          uint    `json:"job_id" validate:"required"`
	FirstName      string  `json:"first_name" validate:"required,max=100"`
	LastName       string  `json:"last_name" validate:"required,max=100"`
	Phone          string  `json:"phone" validate:"max=50"`
	Email          string  `json:"email" validate:"required,email,max=255"`
	Address        string  `json:"address" validate:"max=500"`
	DeviceType     string  `json:"device_type" validate:"max=100"`
	DeviceModel    string  `json:"device_model" validate:"max=100"`
	Issue          string  `json:"issue" validate:"required"`
	DevicePassword *string `json:"device_password"`
	DataRetention  bool    `json:"data_retention"`
	HowHeard       string  `json:"how_heard" validate:"required,max=100"`
}

// IntakeHandler serves the public booking form endpoints.
type IntakeHandler struct {
	reserveJobUC         *usecases.ReserveJobUseCase
	resolveCustomerUC    *usecases.ResolveCustomerUseCase
	finalizeSubmissionUC *usecases.FinalizeSubmissionUseCase
	logger               logger.Interface
}

func NewIntakeHandler(
	reserveJobUC *usecases.ReserveJobUseCase,
	resolveCustomerUC *usecases.ResolveCustomerUseCase,
	finalizeSubmissionUC *usecases.FinalizeSubmissionUseCase,
) *IntakeHandler {
	return &IntakeHandler{
		reserveJobUC:         reserveJobUC,
		resolveCustomerUC:    resolveCustomerUC,
		finalizeSubmissionUC: finalizeSubmissionUC,
		logger:               logger.NewLogger(),
	}
}

// ReserveJob handles POST /api/intake/reservations
func (h *IntakeHandler) ReserveJob(c *gin.Context) {
	result, err := h.reserveJobUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ReserveJobResponse{
		JobID:     result.JobID,
		Status:    result.Status,
		StartedAt: result.StartedAt.UnixMilli(),
	}, "Job number reserved")
}

// ResolveCustomer handles POST /api/intake/customers/resolve
func (h *IntakeHandler) ResolveCustomer(c *gin.Context) {
	var req ResolveCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for resolve customer", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.resolveCustomerUC.Execute(c.Request.Context(), usecases.ResolveCustomerCommand{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Created {
		utils.CreatedResponse(c, result, "Customer created")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Customer resolved", result)
}

// FinalizeSubmission handles POST /api/intake/submissions
func (h *IntakeHandler) FinalizeSubmission(c *gin.Context) {
	var req FinalizeSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for finalize submission", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.finalizeSubmissionUC.Execute(c.Request.Context(), usecases.FinalizeSubmissionCommand{
		JobID:          req.JobID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		DeviceType:     req.DeviceType,
		DeviceModel:    req.DeviceModel,
		Issue:          req.Issue,
		DevicePassword: req.DevicePassword,
		DataRetention:  req.DataRetention,
		HowHeard:       req.HowHeard,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Submission finalized", result)
}
