package entity

import "time"

// Visit represents one clinical encounter. VisitDate is assigned by the
// server at creation time and is never modified by edits.
type Visit struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       uint      `gorm:"not null;index" json:"patient_id"`
	VisitDate       time.Time `gorm:"not null;index" json:"visit_date"`
	Interview       string    `gorm:"type:text" json:"interview,omitempty"`
	Examination     string    `gorm:"type:text" json:"examination,omitempty"`
	Medications     string    `gorm:"type:text" json:"medications,omitempty"`
	Recommendations string    `gorm:"type:text" json:"recommendations,omitempty"`

	// Relationships
	Patient   Patient     `gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT" json:"patient,omitempty"`
	Diagnoses []Diagnosis `gorm:"foreignKey:VisitID" json:"diagnoses,omitempty"`
}

func (Visit) TableName() string {
	return "visits"
}

// VisitSummary is a joined row shape used by visit listings and the calendar.
type VisitSummary struct {
	ID         uint      `json:"id"`
	VisitDate  time.Time `json:"visit_date"`
	PatientID  uint      `json:"patient_id"`
	LastName   string    `json:"last_name"`
	FirstName  string    `json:"first_name"`
	NationalID string    `json:"national_id"`
}
