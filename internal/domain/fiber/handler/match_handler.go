package handler

import (
	"errors"

	"github.com/fadilmartias/career-platform/internal/usecase"
	"github.com/fadilmartias/career-platform/internal/util"
	"github.com/gofiber/fiber/v2"
)

type MatchHandler struct {
	uc *usecase.MatchUsecase
}

func NewMatchHandler(uc *usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(app *fiber.App, auth, admin fiber.Handler) {
	app.Post("/matches", auth, admin, h.Create)
	app.Post("/matches/:id/finalize", auth, admin, h.Finalize)
	app.Post("/matches/:id/archive", auth, admin, h.Archive)
	app.Get("/admin/matches", auth, admin, h.AdminMatches)
	app.Get("/jobs/:id/matches", auth, admin, h.QueuedForJob)
}

func (h *MatchHandler) Create(c *fiber.Ctx) error {
	var req struct {
		StudentID string `json:"student_id"`
		JobID     string `json:"job_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if req.StudentID == "" || req.JobID == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "student_id and job_id are required",
		})
	}

	match, err := h.uc.CreateMatch(c.Context(), req.StudentID, req.JobID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "student or job not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create match",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Match created",
		Data:    match,
	})
}

func (h *MatchHandler) Finalize(c *fiber.Ctx) error {
	match, err := h.uc.Finalize(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "match not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to finalize match",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Match finalized",
		Data:    match,
	})
}

func (h *MatchHandler) Archive(c *fiber.Ctx) error {
	match, err := h.uc.Archive(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "match not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to archive match",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Match archived",
		Data:    match,
	})
}

// AdminMatches lists every job with its queued matches, best score first.
func (h *MatchHandler) AdminMatches(c *fiber.Ctx) error {
	queues, err := h.uc.QueuedByJob(c.Context())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list matches",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get admin matches",
		Data:    queues,
	})
}

func (h *MatchHandler) QueuedForJob(c *fiber.Ctx) error {
	matches, err := h.uc.ListQueued(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "job not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list queued matches",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get queued matches",
		Data:    matches,
	})
}
