package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/designation"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DesignationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type designationHandlerImpl struct {
	designationService designation.DesignationService
}

func NewDesignationHandler(designationService designation.DesignationService) DesignationHandler {
	return &designationHandlerImpl{designationService: designationService}
}

// List implements DesignationHandler.
func (h *designationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	p := parseListParams(r)
	req := designation.ListDesignationsRequest{
		Search:     p.search,
		Level:      p.facet(designation.FieldLevel),
		Department: p.facet(designation.FieldDepartment),
		Page:       p.page,
		Limit:      p.limit,
	}

	result, err := h.designationService.ListDesignations(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, result, result.Meta)
}

// Get implements DesignationHandler.
func (h *designationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.designationService.GetDesignation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Create implements DesignationHandler.
func (h *designationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req designation.CreateDesignationRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("CreateDesignation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.designationService.CreateDesignation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Designation created successfully", result)
}

// Update implements DesignationHandler.
func (h *designationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req designation.UpdateDesignationRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("UpdateDesignation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.designationService.UpdateDesignation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Designation updated successfully", result)
}

// Delete implements DesignationHandler.
func (h *designationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.designationService.DeleteDesignation(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Designation deleted successfully", nil)
}
