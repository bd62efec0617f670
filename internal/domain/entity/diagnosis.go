package entity

// Diagnosis is an ICD-10 coded diagnosis attached to a visit. Code and name
// are free text supplied by the clinician; Verified records whether the code
// matched the reference relation at write time.
//
// Invariant enforced by the visit usecase: at most one diagnosis per visit
// has IsPrimary set.
type Diagnosis struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	VisitID   uint   `gorm:"not null;index" json:"visit_id"`
	Code      string `gorm:"type:varchar(20);not null" json:"code"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	IsPrimary bool   `gorm:"not null;default:false" json:"is_primary"`
	Verified  bool   `gorm:"not null;default:false" json:"verified"`

	// Relationships
	Visit Visit `gorm:"foreignKey:VisitID;constraint:OnDelete:CASCADE" json:"visit,omitempty"`
}

func (Diagnosis) TableName() string {
	return "diagnoses"
}
