package handler

import (
	"errors"
	"strconv"

	"github.com/fadilmartias/career-platform/internal/response"
	"github.com/fadilmartias/career-platform/internal/usecase"
	"github.com/fadilmartias/career-platform/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App, auth, admin fiber.Handler) {
	app.Get("/jobs", auth, h.List)
	app.Get("/jobs/:id", auth, h.Get)
	app.Post("/jobs", auth, admin, h.Create)
	app.Put("/jobs/:id", auth, admin, h.Update)
	app.Delete("/jobs/:id", auth, admin, h.Delete)
}

type jobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if req.Title == "" || req.Description == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "title and description are required",
		})
	}

	job, err := h.uc.CreateJob(c.Context(), req.Title, req.Description)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to add job",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Job added",
		Data:    job,
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	job, err := h.uc.UpdateJob(c.Context(), c.Params("id"), req.Title, req.Description)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "job not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to update job",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Job updated",
		Data:    job,
	})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteJob(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "job not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to delete job",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Job deleted",
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.uc.GetJob(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "job not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get job",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get job",
		Data:    job,
	})
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	jobs, total, err := h.uc.GetJobs(c.Context(), page, limit)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list jobs",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success get jobs",
		Data:       jobs,
		Pagination: response.NewPagination(page, limit, total),
	})
}
