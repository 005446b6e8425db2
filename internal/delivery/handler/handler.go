package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"user-registry/internal/application/command"
	"user-registry/internal/application/interfaces"
	"user-registry/internal/domain/entities"
)

type Handler struct {
	userService interfaces.UserService
}

func NewHandler(userService interfaces.UserService) *Handler {
	return &Handler{userService: userService}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/users", h.ListUsers)
	e.GET("/users/create", h.ShowCreateForm)
	e.POST("/users/create", h.CreateUser)
	e.GET("/user/detail/:id", h.UserDetail)
}

// createFormData is what the create view renders: the submitted values are
// echoed back so a rejected form does not lose the user's input.
type createFormData struct {
	Username string
	Email    string
	Errors   map[string]string
}

func (h *Handler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

func (h *Handler) ListUsers(c echo.Context) error {
	result, err := h.userService.ListUsers()
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "list.html", result.Result)
}

func (h *Handler) ShowCreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "create.html", createFormData{})
}

func (h *Handler) CreateUser(c echo.Context) error {
	var createCommand command.CreateUserCommand
	if err := c.Bind(&createCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	if err := c.Validate(&createCommand); err != nil {
		return c.Render(http.StatusBadRequest, "create.html", createFormData{
			Username: createCommand.Username,
			Email:    createCommand.Email,
			Errors:   fieldErrors(err),
		})
	}

	result, err := h.userService.CreateUser(&createCommand)
	if err != nil {
		if errors.Is(err, entities.ErrUsernameTaken) {
			return c.Render(http.StatusConflict, "create.html", createFormData{
				Username: createCommand.Username,
				Email:    createCommand.Email,
				Errors:   map[string]string{"username": "username is already taken"},
			})
		}
		return err
	}

	// Redirect-after-post so a refresh of the detail page cannot resubmit.
	return c.Redirect(http.StatusFound, fmt.Sprintf("/user/detail/%d", result.Result.Id))
}

func (h *Handler) UserDetail(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return echo.ErrNotFound
	}

	result, err := h.userService.FindUserById(uint(id))
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return echo.ErrNotFound
		}
		return err
	}

	return c.Render(http.StatusOK, "detail.html", result.Result)
}

func fieldErrors(err error) map[string]string {
	fields := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fields["form"] = "invalid form submission"
		return fields
	}

	for _, fieldError := range validationErrors {
		name := strings.ToLower(fieldError.Field())
		fields[name] = name + " is required"
	}
	return fields
}
