package handler

import (
	"net/http"

	"clinic-records/internal/usecase"
	"clinic-records/pkg/response"
)

type ICD10Handler struct {
	icd10Usecase usecase.ICD10Usecase
}

func NewICD10Handler(icd10Usecase usecase.ICD10Usecase) *ICD10Handler {
	return &ICD10Handler{
		icd10Usecase: icd10Usecase,
	}
}

func (h *ICD10Handler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.icd10Usecase.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.InternalServerError(w, "Failed to search ICD-10 codes")
		return
	}

	response.Success(w, http.StatusOK, "ICD-10 codes retrieved successfully", results)
}
