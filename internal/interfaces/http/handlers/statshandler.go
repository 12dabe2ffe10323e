package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repairbay/internal/application/technician/usecases"
	"repairbay/internal/shared/utils"
)

type StatsHandler struct {
	howHeardStatsUC *usecases.HowHeardStatsUseCase
}

func NewStatsHandler(howHeardStatsUC *usecases.HowHeardStatsUseCase) *StatsHandler {
	return &StatsHandler{howHeardStatsUC: howHeardStatsUC}
}

// HowHeardStats handles GET /api/stats/howheard
func (h *StatsHandler) HowHeardStats(c *gin.Context) {
	result, err := h.howHeardStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
