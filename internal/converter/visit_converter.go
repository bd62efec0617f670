package converter

import (
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
)

// VisitToResponse converts a Visit entity to its response DTO.
func VisitToResponse(visit *entity.Visit) *dto.VisitResponse {
	if visit == nil {
		return nil
	}

	return &dto.VisitResponse{
		ID:              visit.ID,
		PatientID:       visit.PatientID,
		VisitDate:       visit.VisitDate,
		Interview:       visit.Interview,
		Examination:     visit.Examination,
		Medications:     visit.Medications,
		Recommendations: visit.Recommendations,
	}
}

// VisitToDetailResponse converts a visit with its preloaded patient and the
// ordered diagnosis list into the joined detail response.
func VisitToDetailResponse(visit *entity.Visit, diagnoses []entity.Diagnosis) *dto.VisitDetailResponse {
	if visit == nil {
		return nil
	}

	detail := &dto.VisitDetailResponse{
		VisitResponse: *VisitToResponse(visit),
		Patient:       *PatientToResponse(&visit.Patient),
		Diagnoses:     DiagnosesToResponses(diagnoses),
	}
	return detail
}

func DiagnosesToResponses(diagnoses []entity.Diagnosis) []dto.DiagnosisResponse {
	responses := make([]dto.DiagnosisResponse, 0, len(diagnoses))
	for _, d := range diagnoses {
		responses = append(responses, dto.DiagnosisResponse{
			Code:      d.Code,
			Name:      d.Name,
			IsPrimary: d.IsPrimary,
			Verified:  d.Verified,
		})
	}
	return responses
}

func VisitSummariesToListResponse(summaries []entity.VisitSummary) *dto.VisitListResponse {
	list := &dto.VisitListResponse{
		Visits: make([]dto.VisitSummaryResponse, 0, len(summaries)),
		Total:  len(summaries),
	}
	for _, s := range summaries {
		list.Visits = append(list.Visits, dto.VisitSummaryResponse{
			ID:         s.ID,
			VisitDate:  s.VisitDate,
			PatientID:  s.PatientID,
			LastName:   s.LastName,
			FirstName:  s.FirstName,
			NationalID: s.NationalID,
		})
	}
	return list
}
