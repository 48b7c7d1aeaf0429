package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/brightdesk-dev/brightdesk/internal/models"
	"github.com/brightdesk-dev/brightdesk/internal/services"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

type ProjectRequest struct {
	Name                 string      `json:"name"`
	ClientID             uint        `json:"clientId"`
	ProductOwner         string      `json:"productOwner"`
	ExpectedDeliveryDate models.Date `json:"expectedDeliveryDate"`
	Deadline             models.Date `json:"deadline"`
	OnboardDate          models.Date `json:"onboardDate"`
	Budget               float64     `json:"budget"`
	AmountSpent          float64     `json:"amountSpent"`
	Status               string      `json:"status"`
	LastUpdateComments   string      `json:"lastUpdateComments"`
}

// validate reports the missing required fields. Date ordering and
// budget overrun are deliberately not checked.
func (r *ProjectRequest) validate(requireClient bool) map[string]string {
	details := make(map[string]string)
	if r.Name == "" {
		details["name"] = "name is required"
	}
	if r.ProductOwner == "" {
		details["productOwner"] = "productOwner is required"
	}
	if r.ExpectedDeliveryDate.IsZero() {
		details["expectedDeliveryDate"] = "expectedDeliveryDate is required"
	}
	if r.Deadline.IsZero() {
		details["deadline"] = "deadline is required"
	}
	if requireClient && r.ClientID == 0 {
		details["clientId"] = "clientId is required"
	}
	return details
}

type ProjectResponse struct {
	ID                   uint            `json:"id"`
	Name                 string          `json:"name"`
	Status               string          `json:"status"`
	Budget               float64         `json:"budget"`
	AmountSpent          float64         `json:"amountSpent"`
	ExpectedDeliveryDate models.Date     `json:"expectedDeliveryDate"`
	Deadline             models.Date     `json:"deadline"`
	OnboardDate          models.Date     `json:"onboardDate"`
	ProductOwner         string          `json:"productOwner"`
	LastUpdateComments   string          `json:"lastUpdateComments"`
	Client               *ClientResponse `json:"client,omitempty"`
}

type DeletedProjectResponse struct {
	ID                   uint            `json:"id"`
	Name                 string          `json:"name"`
	Status               string          `json:"status"`
	Budget               float64         `json:"budget"`
	AmountSpent          float64         `json:"amountSpent"`
	ExpectedDeliveryDate models.Date     `json:"expectedDeliveryDate"`
	Deadline             models.Date     `json:"deadline"`
	ProductOwner         string          `json:"productOwner"`
	LastUpdateComments   string          `json:"lastUpdateComments"`
	Client               *ClientResponse `json:"client,omitempty"`
}

func toProjectResponse(project models.Project) ProjectResponse {
	response := ProjectResponse{
		ID:                   project.ID,
		Name:                 project.Name,
		Status:               project.Status,
		Budget:               project.Budget,
		AmountSpent:          project.AmountSpent,
		ExpectedDeliveryDate: project.ExpectedDeliveryDate,
		Deadline:             project.Deadline,
		OnboardDate:          project.OnboardDate,
		ProductOwner:         project.ProductOwner,
		LastUpdateComments:   project.LastUpdateComments,
	}
	if project.Client.ID != 0 {
		client := toClientResponse(project.Client)
		response.Client = &client
	}
	return response
}

func toDeletedProjectResponse(archived models.DeletedProject) DeletedProjectResponse {
	response := DeletedProjectResponse{
		ID:                   archived.ID,
		Name:                 archived.Name,
		Status:               archived.Status,
		Budget:               archived.Budget,
		AmountSpent:          archived.AmountSpent,
		ExpectedDeliveryDate: archived.ExpectedDeliveryDate,
		Deadline:             archived.Deadline,
		ProductOwner:         archived.ProductOwner,
		LastUpdateComments:   archived.LastUpdateComments,
	}
	if archived.Client.ID != 0 {
		client := toClientResponse(archived.Client)
		response.Client = &client
	}
	return response
}

func (r *ProjectRequest) toModel() models.Project {
	return models.Project{
		Name:                 r.Name,
		Status:               r.Status,
		Budget:               r.Budget,
		AmountSpent:          r.AmountSpent,
		ExpectedDeliveryDate: r.ExpectedDeliveryDate,
		Deadline:             r.Deadline,
		OnboardDate:          r.OnboardDate,
		ProductOwner:         r.ProductOwner,
		LastUpdateComments:   r.LastUpdateComments,
		ClientID:             r.ClientID,
	}
}

func (h *ProjectHandler) Create(ctx *gin.Context) {
	var body ProjectRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		validationFailed(ctx, validationDetails(err))
		return
	}

	if details := body.validate(true); len(details) > 0 {
		validationFailed(ctx, details)
		return
	}

	project, err := h.projects.Create(body.toModel())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClientRequired), services.IsNotFound(err):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Failed to create project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, toProjectResponse(*project))
}

func (h *ProjectHandler) List(ctx *gin.Context) {
	projects, err := h.projects.List()
	if err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		response = append(response, toProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ProjectHandler) Get(ctx *gin.Context) {
	projectID, ok := parseID(ctx, "projectId")
	if !ok {
		return
	}

	project, err := h.projects.Get(projectID)
	if err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to fetch project %d: %v", projectID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}

	ctx.JSON(http.StatusOK, toProjectResponse(*project))
}

func (h *ProjectHandler) Update(ctx *gin.Context) {
	projectID, ok := parseID(ctx, "projectId")
	if !ok {
		return
	}

	var body ProjectRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		validationFailed(ctx, validationDetails(err))
		return
	}

	if details := body.validate(false); len(details) > 0 {
		validationFailed(ctx, details)
		return
	}

	project, err := h.projects.Update(projectID, body.toModel())
	if err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to update project %d: %v", projectID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	ctx.JSON(http.StatusOK, toProjectResponse(*project))
}

func (h *ProjectHandler) Delete(ctx *gin.Context) {
	projectID, ok := parseID(ctx, "projectId")
	if !ok {
		return
	}

	if err := h.projects.Archive(projectID); err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to delete project %d: %v", projectID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *ProjectHandler) Restore(ctx *gin.Context) {
	projectID, ok := parseID(ctx, "projectId")
	if !ok {
		return
	}

	project, err := h.projects.Restore(projectID)
	if err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to restore project %d: %v", projectID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore project"})
		return
	}

	ctx.JSON(http.StatusOK, toProjectResponse(*project))
}

func (h *ProjectHandler) ListDeleted(ctx *gin.Context) {
	archived, err := h.projects.ListArchived()
	if err != nil {
		log.Printf("Failed to list archived projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve archived projects"})
		return
	}

	response := make([]DeletedProjectResponse, 0, len(archived))
	for _, project := range archived {
		response = append(response, toDeletedProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}
