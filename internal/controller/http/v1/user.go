package httpv1

import (
	"net/http"

	"github.com/Egor213/LogiDash/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type userResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

type UserController struct {
	userService service.User
}

func NewUserController(us service.User) *UserController {
	return &UserController{userService: us}
}

func (h *UserController) Register(c echo.Context) error {
	var req service.RegisterInput
	if err := c.Bind(&req); err != nil {
		return err
	}

	user, err := h.userService.Register(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err, "Failed to register user")
	}

	return c.JSON(http.StatusCreated, userResponse{ID: user.ID, Username: user.Username, Email: user.Email})
}

func (h *UserController) Me(c echo.Context) error {
	user := currentUser(c)
	return c.JSON(http.StatusOK, userResponse{ID: user.ID, Username: user.Username, Email: user.Email})
}
