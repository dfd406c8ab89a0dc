package handler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fadilmartias/career-platform/internal/config"
	"github.com/fadilmartias/career-platform/internal/middleware"
	"github.com/fadilmartias/career-platform/internal/response"
	"github.com/fadilmartias/career-platform/internal/usecase"
	"github.com/fadilmartias/career-platform/internal/util"
	"github.com/gofiber/fiber/v2"
)

const maxResumeSize = 5 * 1024 * 1024

type StudentHandler struct {
	uc *usecase.StudentUsecase
}

func NewStudentHandler(uc *usecase.StudentUsecase) *StudentHandler {
	return &StudentHandler{uc: uc}
}

func (h *StudentHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Post("/students", auth, h.Create)
	app.Get("/students", auth, h.List)
	app.Get("/students/:id", auth, h.Get)
	app.Put("/students/:id", auth, h.Update)
	app.Delete("/students/:id", auth, h.Delete)
	app.Post("/students/import", auth, h.Import)
}

// Create takes a multipart form: name, location, experience fields plus a
// resume file. The matching pipeline only ever reads the generated summary;
// the file itself is just stored and referenced by path.
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	staff := middleware.CurrentStaff(c)

	name := c.FormValue("name")
	location := c.FormValue("location")
	experience := c.FormValue("experience")
	if name == "" || location == "" || experience == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "name, location and experience are required",
		})
	}

	resumePath, err := h.saveResume(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fe.Code,
				Message: fe.Message,
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to store resume",
		}, err)
	}

	student, err := h.uc.CreateStudent(c.Context(), usecase.StudentInput{
		Name:       name,
		Location:   location,
		Experience: experience,
		ResumePath: resumePath,
	}, staff.School)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to add student",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Student added",
		Data:    student,
	})
}

// saveResume validates and stores the uploaded file, returning the saved
// path. Validation failures come back as *fiber.Error so Create can map them
// to the right status before any student row is written.
func (h *StudentHandler) saveResume(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("resume")
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "resume file is required")
	}
	if file.Size > maxResumeSize {
		return "", fiber.NewError(fiber.StatusBadRequest, "resume file size is too large (max 5MB)")
	}

	uploadDir := config.LoadStorageConfig().UploadDir
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot prepare upload directory: %w", err)
	}
	savePath := filepath.Join(uploadDir, util.SanitizeFilename(file.Filename))
	if err := c.SaveFile(file, savePath); err != nil {
		return "", fmt.Errorf("cannot save resume file: %w", err)
	}
	return savePath, nil
}

func (h *StudentHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	students, total, err := h.uc.GetStudents(c.Context(), page, limit)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list students",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success get students",
		Data:       students,
		Pagination: response.NewPagination(page, limit, total),
	})
}

func (h *StudentHandler) Get(c *fiber.Ctx) error {
	student, err := h.uc.GetStudent(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "student not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get student",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get student",
		Data:    student,
	})
}

func (h *StudentHandler) Update(c *fiber.Ctx) error {
	var req struct {
		Name       string `json:"name"`
		Location   string `json:"location"`
		Experience string `json:"experience"`
	}
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	student, err := h.uc.UpdateStudent(c.Context(), c.Params("id"), usecase.StudentInput{
		Name:       req.Name,
		Location:   req.Location,
		Experience: req.Experience,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "student not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to update student",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Student updated",
		Data:    student,
	})
}

func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteStudent(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "student not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to delete student",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Student deleted",
	})
}

// Import bulk-creates students from an uploaded CSV (name,location,experience).
func (h *StudentHandler) Import(c *fiber.Ctx) error {
	staff := middleware.CurrentStaff(c)

	file, err := c.FormFile("csv_file")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "csv_file is required",
		}, err)
	}
	f, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot open csv file",
		}, err)
	}
	defer f.Close()

	created, err := h.uc.ImportStudents(c.Context(), f, staff.School)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fmt.Sprintf("import stopped after %d students", created),
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: fmt.Sprintf("Imported %d students", created),
		Data:    fiber.Map{"created": created},
	})
}
