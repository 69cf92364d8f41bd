package httpv1

import (
	"net/http"

	"github.com/Egor213/LogiDash/internal/service"
	"github.com/labstack/echo/v4"
)

type ProjectController struct {
	projectService service.Project
}

func NewProjectController(ps service.Project) *ProjectController {
	return &ProjectController{projectService: ps}
}

func (h *ProjectController) List(c echo.Context) error {
	projects, err := h.projectService.ListProjects(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return mapServiceError(err, "Failed to fetch projects")
	}
	return c.JSON(http.StatusOK, projects)
}

func (h *ProjectController) Create(c echo.Context) error {
	var req service.ProjectInput
	if err := c.Bind(&req); err != nil {
		return err
	}

	project, err := h.projectService.CreateProject(c.Request().Context(), currentUser(c).ID, req)
	if err != nil {
		return mapServiceError(err, "Failed to create project")
	}
	return c.JSON(http.StatusCreated, project)
}

func (h *ProjectController) Get(c echo.Context) error {
	projectID, err := pathUUID(c, "projectId")
	if err != nil {
		return err
	}

	project, err := h.projectService.GetProject(c.Request().Context(), currentUser(c).ID, projectID)
	if err != nil {
		return mapServiceError(err, "Failed to fetch project")
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectController) Delete(c echo.Context) error {
	projectID, err := pathUUID(c, "projectId")
	if err != nil {
		return err
	}

	if err := h.projectService.DeleteProject(c.Request().Context(), currentUser(c).ID, projectID); err != nil {
		return mapServiceError(err, "Failed to delete project")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Project deleted"})
}
