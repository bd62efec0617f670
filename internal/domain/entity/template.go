package entity

import "time"

// TemplateType tags which clinical field a template pre-fills.
type TemplateType string

const (
	TemplateTypeInterview       TemplateType = "interview"
	TemplateTypeExamination     TemplateType = "examination"
	TemplateTypeRecommendations TemplateType = "recommendations"
)

// IsValid reports whether the type is one of the three clinical field tags.
func (t TemplateType) IsValid() bool {
	switch t {
	case TemplateTypeInterview, TemplateTypeExamination, TemplateTypeRecommendations:
		return true
	}
	return false
}

// Template is a stored block of reusable clinical free text. Templates are
// created and listed only; no update or delete operation exists.
type Template struct {
	ID        uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Type      TemplateType `gorm:"type:varchar(20);not null;index" json:"type"`
	Name      string       `gorm:"type:varchar(100);not null" json:"name"`
	Content   string       `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

func (Template) TableName() string {
	return "templates"
}
