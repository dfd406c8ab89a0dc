package handler

import (
	"github.com/fadilmartias/career-platform/internal/middleware"
	"github.com/fadilmartias/career-platform/internal/usecase"
	"github.com/fadilmartias/career-platform/internal/util"
	"github.com/gofiber/fiber/v2"
)

type MetricsHandler struct {
	uc *usecase.MetricsUsecase
}

func NewMetricsHandler(uc *usecase.MetricsUsecase) *MetricsHandler {
	return &MetricsHandler{uc: uc}
}

func (h *MetricsHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Get("/metrics", auth, h.SchoolMetrics)
}

// SchoolMetrics reports placement metrics for the caller's school.
func (h *MetricsHandler) SchoolMetrics(c *fiber.Ctx) error {
	staff := middleware.CurrentStaff(c)

	metrics, err := h.uc.SchoolMetrics(c.Context(), staff.School)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to compute metrics",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get metrics",
		Data:    metrics,
	})
}
