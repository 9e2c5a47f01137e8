package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fitrack/fitrack-api/internal/core/ports"
)

// ClassHandler handles class management and listings.
type ClassHandler struct {
	classService ports.ClassService
}

func NewClassHandler(classService ports.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// Create adds a new class.
//
// @Summary      Create a class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClassRequest  true  "Class details"
// @Success      201   {object}  classResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /classes [post]
func (h *ClassHandler) Create(c echo.Context) error {
	var req createClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	class, err := h.classService.CreateClass(c.Request().Context(), ports.CreateClassInput{
		Name:          req.Name,
		Image:         req.Image,
		Details:       req.Details,
		TrainerEmails: req.TrainerEmails,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toClassResponse(class))
}

// List returns a paginated, searchable class listing.
//
// @Summary      List classes
// @Tags         classes
// @Produce      json
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Param        search  query     string  false  "Partial class name"
// @Success      200     {object}  listClassesResponse
// @Router       /classes [get]
func (h *ClassHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.classService.ListClasses(c.Request().Context(), ports.ListClassesFilter{
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListClassesResponse(result))
}

// Featured returns the most-booked classes.
//
// @Summary      List featured classes
// @Tags         classes
// @Produce      json
// @Success      200  {object}  featuredClassesResponse
// @Router       /classes/featured [get]
func (h *ClassHandler) Featured(c echo.Context) error {
	classes, err := h.classService.FeaturedClasses(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]classResponse, len(classes))
	for i, cl := range classes {
		out[i] = toClassResponse(cl)
	}
	return c.JSON(http.StatusOK, featuredClassesResponse{Classes: out})
}
