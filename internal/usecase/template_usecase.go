package usecase

import (
	"context"
	"errors"

	"clinic-records/internal/converter"
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidTemplateType = errors.New("template type must be interview, examination or recommendations")

type TemplateUsecase interface {
	CreateTemplate(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error)
	ListTemplates(ctx context.Context, templateType string) (*dto.TemplateListResponse, error)
}

type templateUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	templateRepo repository.TemplateRepository
}

func NewTemplateUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	templateRepo repository.TemplateRepository,
) TemplateUsecase {
	return &templateUsecase{
		db:           db,
		log:          log,
		templateRepo: templateRepo,
	}
}

func (u *templateUsecase) CreateTemplate(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	templateType := entity.TemplateType(req.Type)
	if !templateType.IsValid() {
		return nil, ErrInvalidTemplateType
	}

	template := &entity.Template{
		Type:    templateType,
		Name:    req.Name,
		Content: req.Content,
	}
	if err := u.templateRepo.Create(ctx, u.db, template); err != nil {
		u.log.Warnf("Failed to insert template: %+v", err)
		return nil, err
	}

	return converter.TemplateToResponse(template), nil
}

func (u *templateUsecase) ListTemplates(ctx context.Context, templateType string) (*dto.TemplateListResponse, error) {
	filter := entity.TemplateType(templateType)
	if templateType != "" && !filter.IsValid() {
		return nil, ErrInvalidTemplateType
	}

	templates, err := u.templateRepo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list templates: %+v", err)
		return nil, err
	}
	return converter.TemplatesToListResponse(templates), nil
}
