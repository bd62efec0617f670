package usecase

import (
	"context"

	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	visitRepo   repository.VisitRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	visitRepo repository.VisitRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		visitRepo:   visitRepo,
	}
}

func (u *dashboardUsecase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	patients, err := u.patientRepo.Count(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}
	visits, err := u.visitRepo.Count(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count visits: %+v", err)
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		Patients: patients,
		Visits:   visits,
	}, nil
}
