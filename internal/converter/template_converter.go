package converter

import (
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
)

func TemplateToResponse(template *entity.Template) *dto.TemplateResponse {
	if template == nil {
		return nil
	}

	return &dto.TemplateResponse{
		ID:        template.ID,
		Type:      string(template.Type),
		Name:      template.Name,
		Content:   template.Content,
		CreatedAt: template.CreatedAt,
	}
}

func TemplatesToListResponse(templates []entity.Template) *dto.TemplateListResponse {
	list := &dto.TemplateListResponse{
		Templates: make([]dto.TemplateResponse, 0, len(templates)),
		Total:     len(templates),
	}
	for i := range templates {
		list.Templates = append(list.Templates, *TemplateToResponse(&templates[i]))
	}
	return list
}
