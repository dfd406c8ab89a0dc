package handler

import (
	"github.com/fadilmartias/career-platform/internal/usecase"
	"github.com/fadilmartias/career-platform/internal/util"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	studentUc *usecase.StudentUsecase
	jobUc     *usecase.JobUsecase
	matchUc   *usecase.MatchUsecase
}

func NewDashboardHandler(studentUc *usecase.StudentUsecase, jobUc *usecase.JobUsecase, matchUc *usecase.MatchUsecase) *DashboardHandler {
	return &DashboardHandler{
		studentUc: studentUc,
		jobUc:     jobUc,
		matchUc:   matchUc,
	}
}

func (h *DashboardHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Get("/", auth, h.Dashboard)
}

// Dashboard returns the landing view data: students, jobs and matches.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	students, _, err := h.studentUc.GetStudents(c.Context(), 1, 100)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load dashboard",
		}, err)
	}
	jobs, _, err := h.jobUc.GetJobs(c.Context(), 1, 100)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load dashboard",
		}, err)
	}
	matches, err := h.matchUc.GetMatches(c.Context())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load dashboard",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get dashboard",
		Data: fiber.Map{
			"students": students,
			"jobs":     jobs,
			"matches":  matches,
		},
	})
}
