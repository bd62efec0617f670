package handler

import (
	"encoding/json"
	"net/http"

	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/usecase"
	"clinic-records/pkg/response"
	"clinic-records/pkg/validator"
)

type TemplateHandler struct {
	templateUsecase usecase.TemplateUsecase
	validator       *validator.CustomValidator
}

func NewTemplateHandler(templateUsecase usecase.TemplateUsecase, validator *validator.CustomValidator) *TemplateHandler {
	return &TemplateHandler{
		templateUsecase: templateUsecase,
		validator:       validator,
	}
}

func (h *TemplateHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	template, err := h.templateUsecase.CreateTemplate(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidTemplateType:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create template")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Template created successfully", template)
}

func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	list, err := h.templateUsecase.ListTemplates(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidTemplateType:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to list templates")
		}
		return
	}

	response.Success(w, http.StatusOK, "Templates retrieved successfully", list)
}
