package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CraftPlanner_Go/internal/project"
)

// ProjectHandler serves project lifecycle and planning edits
type ProjectHandler struct {
	service project.Service
}

func NewProjectHandler(service project.Service) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// CreateProjectRequest is the body of POST /projects.
// Negative quantities and depths are clamped to zero by the service;
// quantities above domain.MaxQuantity are rejected.
type CreateProjectRequest struct {
	Name           string `json:"name" validate:"max=200"`
	TargetRecipeID string `json:"targetRecipeId" validate:"required,max=100"`
	TargetQuantity int    `json:"targetQuantity" validate:"lte=1000000000"`
	MaxDepth       *int   `json:"maxDepth"`
}

// UpdateItemRequest sets the aggregate possessed quantity of one item
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"lte=1000000000"`
}

// UpdateNodeRequest sets the possessed quantity of the node at Path
type UpdateNodeRequest struct {
	Path            []string `json:"path" validate:"required,min=1,dive,required"`
	CurrentQuantity int      `json:"currentQuantity" validate:"lte=1000000000"`
}

// UpdateNodeRequiredRequest overrides the required quantity of the node at Path
type UpdateNodeRequiredRequest struct {
	Path     []string `json:"path" validate:"required,min=1,dive,required"`
	Quantity int      `json:"quantity" validate:"lte=1000000000"`
}

// HandleListProjects lists every project
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} domain.Project
// @Router /api/v1/projects [get]
func (h *ProjectHandler) HandleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.ListProjects(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgListProjectsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// HandleGetProject returns one project with its tree and aggregate
// @Summary Get project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} domain.Project
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/projects/{id} [get]
func (h *ProjectHandler) HandleGetProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, ErrMsgGetProjectFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleCreateProject expands the target recipe into a new project
// @Summary Create project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body CreateProjectRequest true "Project"
// @Success 201 {object} domain.Project
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/projects [post]
func (h *ProjectHandler) HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create project"); err != nil {
		return
	}

	p, err := h.service.CreateProject(r.Context(), project.CreateInput{
		Name:           req.Name,
		TargetItemID:   req.TargetRecipeID,
		TargetQuantity: req.TargetQuantity,
		MaxDepth:       req.MaxDepth,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateProjectFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

// HandleDeleteProject removes a project
// @Summary Delete project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/projects/{id} [delete]
func (h *ProjectHandler) HandleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, r, ErrMsgDeleteProjectFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProjectDeletedSuccess})
}

// HandleUpdateItem edits the aggregate possessed quantity of an item and adjusts
// prerequisite targets through the recipe graph
// @Summary Set aggregate item possession
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param itemId path string true "Item ID"
// @Param request body UpdateItemRequest true "Possessed quantity"
// @Success 200 {object} domain.Project
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/projects/{id}/items/{itemId} [put]
func (h *ProjectHandler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update item"); err != nil {
		return
	}

	p, err := h.service.SetItemPossessed(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId"), req.Quantity)
	if err != nil {
		respondServiceError(w, r, ErrMsgUpdateItemFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleUpdateNode records possession at one tree node and cascades it to the subtree
// @Summary Set node possession
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body UpdateNodeRequest true "Node path and possessed quantity"
// @Success 200 {object} domain.Project
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/projects/{id}/nodes [put]
func (h *ProjectHandler) HandleUpdateNode(w http.ResponseWriter, r *http.Request) {
	var req UpdateNodeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update node"); err != nil {
		return
	}

	p, err := h.service.SetNodePossessed(r.Context(), chi.URLParam(r, "id"), req.Path, req.CurrentQuantity)
	if err != nil {
		respondServiceError(w, r, ErrMsgUpdateNodeFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleUpdateNodeRequired overrides the required quantity at one tree node
// @Summary Set node requirement
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body UpdateNodeRequiredRequest true "Node path and required quantity"
// @Success 200 {object} domain.Project
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/projects/{id}/nodes/required [put]
func (h *ProjectHandler) HandleUpdateNodeRequired(w http.ResponseWriter, r *http.Request) {
	var req UpdateNodeRequiredRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update node requirement"); err != nil {
		return
	}

	p, err := h.service.SetNodeRequired(r.Context(), chi.URLParam(r, "id"), req.Path, req.Quantity)
	if err != nil {
		respondServiceError(w, r, ErrMsgUpdateNodeFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleGetProgress returns the progress tree of a project
// @Summary Get project progress
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} domain.ProgressNode
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/projects/{id}/progress [get]
func (h *ProjectHandler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.service.GetProgress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, ErrMsgGetProgressFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, progress)
}
