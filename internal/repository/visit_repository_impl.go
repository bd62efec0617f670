package repository

import (
	"context"
	"errors"

	"clinic-records/internal/domain/entity"
	domainRepo "clinic-records/internal/domain/repository"

	"gorm.io/gorm"
)

type visitRepository struct{}

func NewVisitRepository() domainRepo.VisitRepository {
	return &visitRepository{}
}

const visitSummaryColumns = "visits.id, visits.visit_date, visits.patient_id, " +
	"patients.last_name, patients.first_name, patients.national_id"

func (r *visitRepository) Create(ctx context.Context, db *gorm.DB, visit *entity.Visit) error {
	return db.WithContext(ctx).Create(visit).Error
}

func (r *visitRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Visit, error) {
	var visit entity.Visit
	err := db.WithContext(ctx).Where("id = ?", id).First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (r *visitRepository) FindDetailByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Visit, error) {
	var visit entity.Visit
	err := db.WithContext(ctx).Preload("Patient").Where("id = ?", id).First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (r *visitRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("visit_date DESC").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) UpdateClinicalFields(ctx context.Context, db *gorm.DB, visit *entity.Visit) error {
	// Select forces the overwrite of blank fields; visit_date stays untouched.
	return db.WithContext(ctx).Model(&entity.Visit{}).
		Where("id = ?", visit.ID).
		Select("interview", "examination", "medications", "recommendations").
		Updates(map[string]interface{}{
			"interview":       visit.Interview,
			"examination":     visit.Examination,
			"medications":     visit.Medications,
			"recommendations": visit.Recommendations,
		}).Error
}

func (r *visitRepository) Search(ctx context.Context, db *gorm.DB, filter *entity.VisitFilter) ([]entity.VisitSummary, error) {
	tx := db.WithContext(ctx).Model(&entity.Visit{}).
		Select(visitSummaryColumns).
		Joins("JOIN patients ON patients.id = visits.patient_id")

	if filter.PatientQuery != "" {
		like := "%" + filter.PatientQuery + "%"
		tx = tx.Where("patients.last_name ILIKE ? OR patients.first_name ILIKE ? OR patients.national_id ILIKE ?", like, like, like)
	}
	if filter.DateFrom != "" {
		tx = tx.Where("DATE(visits.visit_date) >= DATE(?)", filter.DateFrom)
	}
	if filter.DateTo != "" {
		tx = tx.Where("DATE(visits.visit_date) <= DATE(?)", filter.DateTo)
	}

	var summaries []entity.VisitSummary
	err := tx.Order("visits.visit_date DESC").Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *visitRepository) FindByDay(ctx context.Context, db *gorm.DB, day string) ([]entity.VisitSummary, error) {
	var summaries []entity.VisitSummary
	err := db.WithContext(ctx).Model(&entity.Visit{}).
		Select(visitSummaryColumns).
		Joins("JOIN patients ON patients.id = visits.patient_id").
		Where("DATE(visits.visit_date) = DATE(?)", day).
		Order("visits.visit_date").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *visitRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Visit{}).Count(&count).Error
	return count, err
}
