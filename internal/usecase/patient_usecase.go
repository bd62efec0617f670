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

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDuplicateNationalID = errors.New("a patient with this national id already exists")
)

type PatientUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context, query string) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, patientID uint) (*dto.PatientDetailResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	visitRepo   repository.VisitRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	visitRepo repository.VisitRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		visitRepo:   visitRepo,
	}
}

// RegisterPatient inserts a new patient. The national id uniqueness is not
// pre-checked; the constraint violation surfaces from the store and is
// mapped to ErrDuplicateNationalID.
func (u *patientUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		NationalID: req.NationalID,
		Address:    req.Address,
		Phone:      req.Phone,
		Email:      req.Email,
	}

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateNationalID
		}
		u.log.Warnf("Failed to insert patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient registered: id=%d", patient.ID)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) ListPatients(ctx context.Context, query string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.db, query)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToListResponse(patients), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID uint) (*dto.PatientDetailResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	visits, err := u.visitRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to load visits for patient %d: %+v", patientID, err)
		return nil, err
	}

	return converter.PatientToDetailResponse(patient, visits), nil
}
