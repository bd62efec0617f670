package converter

import (
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:         patient.ID,
		FirstName:  patient.FirstName,
		LastName:   patient.LastName,
		NationalID: patient.NationalID,
		Address:    patient.Address,
		Phone:      patient.Phone,
		Email:      patient.Email,
		CreatedAt:  patient.CreatedAt,
	}
}

// PatientToDetailResponse converts a Patient plus its visit history into the
// patient card response.
func PatientToDetailResponse(patient *entity.Patient, visits []entity.Visit) *dto.PatientDetailResponse {
	if patient == nil {
		return nil
	}

	detail := &dto.PatientDetailResponse{
		PatientResponse: *PatientToResponse(patient),
		Visits:          make([]dto.VisitResponse, 0, len(visits)),
	}
	for i := range visits {
		detail.Visits = append(detail.Visits, *VisitToResponse(&visits[i]))
	}
	return detail
}

func PatientsToListResponse(patients []entity.Patient) *dto.PatientListResponse {
	list := &dto.PatientListResponse{
		Patients: make([]dto.PatientResponse, 0, len(patients)),
		Total:    len(patients),
	}
	for i := range patients {
		list.Patients = append(list.Patients, *PatientToResponse(&patients[i]))
	}
	return list
}
