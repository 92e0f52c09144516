package api

import (
	"net/http"

	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportQueries queries.ReportQueries
}

func NewReportHandler(reportQueries queries.ReportQueries) *ReportHandler {
	return &ReportHandler{reportQueries: reportQueries}
}

// @Summary Dashboard summary
// @Description Counts, revenue, status distribution, the last six months and the top hotels
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SummaryResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reportQueries.Summary(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSummary(summary))
}
