package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"repairbay/internal/application/technician/usecases"
	apperrors "repairbay/internal/shared/errors"
	"repairbay/internal/shared/logger"
	"repairbay/internal/shared/utils"
)

type UpdateJobStatusRequest struct {
	Status     string  `json:"status" binding:"required"`
	Notes      *string `json:"notes"`
	Technician *string `json:"technician"`
}

type AddCommunicationRequest struct {
	Kind string `json:"kind" binding:"max=50"`
	Note string `json:"note" binding:"required"`
}

type AddCostRequest struct {
	CostType    string  `json:"cost_type" binding:"max=50"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
}

type AddOrderRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	TotalCost   float64 `json:"total_cost"`
}

type AddPaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	PaymentType string  `json:"payment_type" binding:"max=50"`
}

// JobHandler serves the technician-facing job endpoints.
type JobHandler struct {
	getJobUC          *usecases.GetJobUseCase
	updateJobStatusUC *usecases.UpdateJobStatusUseCase
	deleteJobUC       *usecases.DeleteJobUseCase
	addCommUC         *usecases.AddCommunicationUseCase
	addCostUC         *usecases.AddCostUseCase
	addOrderUC        *usecases.AddOrderUseCase
	addPaymentUC      *usecases.AddPaymentUseCase
	logger            logger.Interface
}

func NewJobHandler(
	getJobUC *usecases.GetJobUseCase,
	updateJobStatusUC *usecases.UpdateJobStatusUseCase,
	deleteJobUC *usecases.DeleteJobUseCase,
	addCommUC *usecases.AddCommunicationUseCase,
	addCostUC *usecases.AddCostUseCase,
	addOrderUC *usecases.AddOrderUseCase,
	addPaymentUC *usecases.AddPaymentUseCase,
) *JobHandler {
	return &JobHandler{
		getJobUC:          getJobUC,
		updateJobStatusUC: updateJobStatusUC,
		deleteJobUC:       deleteJobUC,
		addCommUC:         addCommUC,
		addCostUC:         addCostUC,
		addOrderUC:        addOrderUC,
		addPaymentUC:      addPaymentUC,
		logger:            logger.NewLogger(),
	}
}

// GetJob handles GET /api/jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getJobUC.Execute(c.Request.Context(), jobID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateJobStatus handles PATCH /api/jobs/:id
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update job status", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateJobStatusUC.Execute(c.Request.Context(), usecases.UpdateJobStatusCommand{
		JobID:      jobID,
		Status:     req.Status,
		Notes:      req.Notes,
		Technician: req.Technician,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job updated", result)
}

// DeleteJob handles DELETE /api/jobs/:id
func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteJobUC.Execute(c.Request.Context(), jobID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job deleted", nil)
}

// AddCommunication handles POST /api/jobs/:id/communications
func (h *JobHandler) AddCommunication(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommunicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add communication", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.addCommUC.Execute(c.Request.Context(), usecases.AddCommunicationCommand{
		JobID: jobID,
		Kind:  req.Kind,
		Note:  req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Communication added")
}

// AddCost handles POST /api/jobs/:id/costs
func (h *JobHandler) AddCost(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add cost", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.addCostUC.Execute(c.Request.Context(), usecases.AddCostCommand{
		JobID:       jobID,
		CostType:    req.CostType,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Cost added")
}

// AddOrder handles POST /api/jobs/:id/orders
func (h *JobHandler) AddOrder(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add order", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.addOrderUC.Execute(c.Request.Context(), usecases.AddOrderCommand{
		JobID:       jobID,
		Description: req.Description,
		Quantity:    req.Quantity,
		TotalCost:   req.TotalCost,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Order added")
}

// AddPayment handles POST /api/jobs/:id/payments
func (h *JobHandler) AddPayment(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add payment", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.addPaymentUC.Execute(c.Request.Context(), usecases.AddPaymentCommand{
		JobID:       jobID,
		Amount:      req.Amount,
		PaymentType: req.PaymentType,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Payment added")
}

func parseJobID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("invalid job ID")
	}
	return uint(id), nil
}
