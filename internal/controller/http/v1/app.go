package httpv1

import (
	"net/http"

	"github.com/Egor213/LogiDash/internal/service"
	"github.com/labstack/echo/v4"
)

type renameAppRequest struct {
	Name string `json:"name"`
}

type AppController struct {
	appService service.App
}

func NewAppController(as service.App) *AppController {
	return &AppController{appService: as}
}

func (h *AppController) Create(c echo.Context) error {
	var req service.AppInput
	if err := c.Bind(&req); err != nil {
		return err
	}

	app, err := h.appService.CreateApp(c.Request().Context(), currentUser(c).ID, req)
	if err != nil {
		return mapServiceError(err, "Failed to create app")
	}
	return c.JSON(http.StatusCreated, app)
}

func (h *AppController) Get(c echo.Context) error {
	appID, err := pathUUID(c, "appId")
	if err != nil {
		return err
	}

	app, err := h.appService.GetApp(c.Request().Context(), currentUser(c).ID, appID)
	if err != nil {
		return mapServiceError(err, "Failed to fetch app")
	}
	return c.JSON(http.StatusOK, app)
}

func (h *AppController) Rename(c echo.Context) error {
	appID, err := pathUUID(c, "appId")
	if err != nil {
		return err
	}

	var req renameAppRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	app, err := h.appService.RenameApp(c.Request().Context(), currentUser(c).ID, appID, req.Name)
	if err != nil {
		return mapServiceError(err, "Failed to update app")
	}
	return c.JSON(http.StatusOK, app)
}

func (h *AppController) RotateKey(c echo.Context) error {
	appID, err := pathUUID(c, "appId")
	if err != nil {
		return err
	}

	app, err := h.appService.RotateKey(c.Request().Context(), currentUser(c).ID, appID)
	if err != nil {
		return mapServiceError(err, "Failed to rotate key")
	}
	return c.JSON(http.StatusOK, app)
}

func (h *AppController) Delete(c echo.Context) error {
	appID, err := pathUUID(c, "appId")
	if err != nil {
		return err
	}

	if err := h.appService.DeleteApp(c.Request().Context(), currentUser(c).ID, appID); err != nil {
		return mapServiceError(err, "Failed to delete app")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "App deleted"})
}
