package entity

import "time"

// Patient represents a registered patient. Rows are insert-only: the system
// never updates or deletes a patient.
type Patient struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName  string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName   string    `gorm:"type:varchar(100);not null;index:idx_patients_name" json:"last_name"`
	NationalID string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"national_id"`
	Address    string    `gorm:"type:text" json:"address,omitempty"`
	Phone      string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Email      string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Visits []Visit `gorm:"foreignKey:PatientID" json:"visits,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// FullName returns the display name used by the PDF export.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
