package dto

import "time"

// DiagnosisEntryRequest is one diagnosis slot as submitted by the shell.
// Entries with a blank code or name after trimming are silently dropped.
type DiagnosisEntryRequest struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	IsPrimary bool   `json:"is_primary"`
}

// MedicationEntryRequest is one structured drug/dose/schedule triple. When
// present, entries are collapsed to newline-joined text on the visit.
type MedicationEntryRequest struct {
	Drug     string `json:"drug"`
	Dose     string `json:"dose"`
	Schedule string `json:"schedule"`
}

type CreateVisitRequest struct {
	PatientID         uint                     `json:"patient_id" validate:"required"`
	Interview         string                   `json:"interview"`
	Examination       string                   `json:"examination"`
	Medications       string                   `json:"medications"`
	MedicationEntries []MedicationEntryRequest `json:"medication_entries,omitempty"`
	Recommendations   string                   `json:"recommendations"`
	Diagnoses         []DiagnosisEntryRequest  `json:"diagnoses"`
}

// UpdateVisitRequest overwrites all four clinical fields (blank clears) and
// replaces the diagnosis set. PrimaryIndex selects the primary diagnosis
// among the submitted slots, defaulting to the first surviving entry.
type UpdateVisitRequest struct {
	Interview         string                   `json:"interview"`
	Examination       string                   `json:"examination"`
	Medications       string                   `json:"medications"`
	MedicationEntries []MedicationEntryRequest `json:"medication_entries,omitempty"`
	Recommendations   string                   `json:"recommendations"`
	Diagnoses         []DiagnosisEntryRequest  `json:"diagnoses"`
	PrimaryIndex      *int                     `json:"primary_index,omitempty"`
}

type CreateVisitResponse struct {
	ID uint `json:"id"`
}

type DiagnosisResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	IsPrimary bool   `json:"is_primary"`
	Verified  bool   `json:"verified"`
}

type VisitResponse struct {
	ID              uint      `json:"id"`
	PatientID       uint      `json:"patient_id"`
	VisitDate       time.Time `json:"visit_date"`
	Interview       string    `json:"interview,omitempty"`
	Examination     string    `json:"examination,omitempty"`
	Medications     string    `json:"medications,omitempty"`
	Recommendations string    `json:"recommendations,omitempty"`
}

// VisitDetailResponse is the fully joined patient+visit record.
type VisitDetailResponse struct {
	VisitResponse
	Patient   PatientResponse     `json:"patient"`
	Diagnoses []DiagnosisResponse `json:"diagnoses"`
}

type VisitSummaryResponse struct {
	ID         uint      `json:"id"`
	VisitDate  time.Time `json:"visit_date"`
	PatientID  uint      `json:"patient_id"`
	LastName   string    `json:"last_name"`
	FirstName  string    `json:"first_name"`
	NationalID string    `json:"national_id"`
}

type VisitListResponse struct {
	Visits []VisitSummaryResponse `json:"visits"`
	Total  int                    `json:"total"`
}
