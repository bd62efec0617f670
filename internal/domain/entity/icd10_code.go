package entity

// ICD10Code is an immutable reference row used for lookup/autocomplete.
// It is populated by the bulk importer and read-only everywhere else.
type ICD10Code struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Code string `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
}

func (ICD10Code) TableName() string {
	return "icd10_codes"
}
