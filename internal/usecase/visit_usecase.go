package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clinic-records/internal/converter"
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"
	"clinic-records/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrVisitNotFound            = errors.New("visit not found")
	ErrEmptyVisit               = errors.New("visit must carry at least one kind of content")
	ErrMultiplePrimaryDiagnoses = errors.New("only one diagnosis may be marked primary")
	ErrInvalidDate              = errors.New("invalid date, expected YYYY-MM-DD")
)

type VisitUsecase interface {
	CreateVisit(ctx context.Context, req *dto.CreateVisitRequest) (*dto.CreateVisitResponse, error)
	UpdateVisit(ctx context.Context, visitID uint, req *dto.UpdateVisitRequest) (*dto.VisitDetailResponse, error)
	GetVisitDetail(ctx context.Context, visitID uint) (*dto.VisitDetailResponse, error)
	ListDiagnoses(ctx context.Context, visitID uint) ([]dto.DiagnosisResponse, error)
	ListVisits(ctx context.Context, filter *entity.VisitFilter) (*dto.VisitListResponse, error)
	ListVisitsByDay(ctx context.Context, day string) (*dto.VisitListResponse, error)
	RenderVisitPDF(ctx context.Context, visitID uint) ([]byte, error)
}

type visitUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	patientRepo   repository.PatientRepository
	visitRepo     repository.VisitRepository
	diagnosisRepo repository.DiagnosisRepository
	icdRepo       repository.ICD10Repository
	pdfService    *service.VisitPDFService
	runTx         func(ctx context.Context, fn func(tx *gorm.DB) error) error
}

func NewVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	visitRepo repository.VisitRepository,
	diagnosisRepo repository.DiagnosisRepository,
	icdRepo repository.ICD10Repository,
	pdfService *service.VisitPDFService,
) VisitUsecase {
	u := &visitUsecase{
		db:            db,
		log:           log,
		patientRepo:   patientRepo,
		visitRepo:     visitRepo,
		diagnosisRepo: diagnosisRepo,
		icdRepo:       icdRepo,
		pdfService:    pdfService,
	}
	u.runTx = u.transact
	return u
}

// transact runs fn inside one transaction; any error rolls the whole
// write back.
func (u *visitUsecase) transact(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit().Error
}

// normalizeCreateDiagnoses trims the submitted slots, drops entries with a
// blank code or name, and enforces the primary policy for the create path:
// more than one flagged entry is rejected; none flagged promotes the first
// surviving entry.
func normalizeCreateDiagnoses(entries []dto.DiagnosisEntryRequest) ([]entity.Diagnosis, error) {
	diagnoses := make([]entity.Diagnosis, 0, len(entries))
	primaries := 0
	for _, e := range entries {
		code := strings.TrimSpace(e.Code)
		name := strings.TrimSpace(e.Name)
		if code == "" || name == "" {
			continue
		}
		if e.IsPrimary {
			primaries++
		}
		diagnoses = append(diagnoses, entity.Diagnosis{
			Code:      code,
			Name:      name,
			IsPrimary: e.IsPrimary,
		})
	}

	if primaries > 1 {
		return nil, ErrMultiplePrimaryDiagnoses
	}
	if primaries == 0 && len(diagnoses) > 0 {
		diagnoses[0].IsPrimary = true
	}
	return diagnoses, nil
}

// normalizeUpdateDiagnoses trims and drops blank slots, then marks exactly
// one surviving entry primary: the one at primaryIndex counted over the
// submitted slots (default 0). An index pointing at a dropped slot, or out
// of range, falls back to the first survivor.
func normalizeUpdateDiagnoses(entries []dto.DiagnosisEntryRequest, primaryIndex *int) []entity.Diagnosis {
	wanted := 0
	if primaryIndex != nil {
		wanted = *primaryIndex
	}

	diagnoses := make([]entity.Diagnosis, 0, len(entries))
	primaryAt := -1
	for i, e := range entries {
		code := strings.TrimSpace(e.Code)
		name := strings.TrimSpace(e.Name)
		if code == "" || name == "" {
			continue
		}
		if i == wanted {
			primaryAt = len(diagnoses)
		}
		diagnoses = append(diagnoses, entity.Diagnosis{
			Code: code,
			Name: name,
		})
	}

	if len(diagnoses) == 0 {
		return diagnoses
	}
	if primaryAt < 0 {
		primaryAt = 0
	}
	diagnoses[primaryAt].IsPrimary = true
	return diagnoses
}

// collapseMedications renders structured drug/dose/schedule entries into
// newline-joined text. A flat text blob passes through unchanged when no
// structured entries are submitted.
func collapseMedications(flat string, entries []dto.MedicationEntryRequest) string {
	if len(entries) == 0 {
		return flat
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		parts := make([]string, 0, 3)
		for _, p := range []string{e.Drug, e.Dose, e.Schedule} {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) > 0 {
			lines = append(lines, strings.Join(parts, " "))
		}
	}
	return strings.Join(lines, "\n")
}

// verifyDiagnoses stamps each diagnosis with whether its code exists in the
// reference relation. Free-text codes stay accepted either way.
func (u *visitUsecase) verifyDiagnoses(ctx context.Context, db *gorm.DB, diagnoses []entity.Diagnosis) error {
	for i := range diagnoses {
		exists, err := u.icdRepo.ExistsByCode(ctx, db, diagnoses[i].Code)
		if err != nil {
			return err
		}
		diagnoses[i].Verified = exists
	}
	return nil
}

func (u *visitUsecase) CreateVisit(ctx context.Context, req *dto.CreateVisitRequest) (*dto.CreateVisitResponse, error) {
	diagnoses, err := normalizeCreateDiagnoses(req.Diagnoses)
	if err != nil {
		return nil, err
	}
	medications := collapseMedications(req.Medications, req.MedicationEntries)

	if strings.TrimSpace(req.Interview) == "" &&
		strings.TrimSpace(req.Examination) == "" &&
		strings.TrimSpace(medications) == "" &&
		len(diagnoses) == 0 {
		return nil, ErrEmptyVisit
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	visit := &entity.Visit{
		PatientID:       req.PatientID,
		VisitDate:       time.Now(),
		Interview:       req.Interview,
		Examination:     req.Examination,
		Medications:     medications,
		Recommendations: req.Recommendations,
	}

	err = u.runTx(ctx, func(tx *gorm.DB) error {
		if err := u.visitRepo.Create(ctx, tx, visit); err != nil {
			u.log.Warnf("Failed to insert visit: %+v", err)
			return err
		}

		for i := range diagnoses {
			diagnoses[i].VisitID = visit.ID
		}
		if err := u.verifyDiagnoses(ctx, tx, diagnoses); err != nil {
			u.log.Warnf("Failed to verify diagnosis codes: %+v", err)
			return err
		}
		if err := u.diagnosisRepo.CreateAll(ctx, tx, diagnoses); err != nil {
			u.log.Warnf("Failed to insert diagnoses for visit %d: %+v", visit.ID, err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Visit created: id=%d, patient=%d, diagnoses=%d", visit.ID, req.PatientID, len(diagnoses))
	return &dto.CreateVisitResponse{ID: visit.ID}, nil
}

func (u *visitUsecase) UpdateVisit(ctx context.Context, visitID uint, req *dto.UpdateVisitRequest) (*dto.VisitDetailResponse, error) {
	visit, err := u.visitRepo.FindByID(ctx, u.db, visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit %d: %+v", visitID, err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	diagnoses := normalizeUpdateDiagnoses(req.Diagnoses, req.PrimaryIndex)

	// All four clinical fields are overwritten; blank clears. The visit
	// date is never touched.
	visit.Interview = req.Interview
	visit.Examination = req.Examination
	visit.Medications = collapseMedications(req.Medications, req.MedicationEntries)
	visit.Recommendations = req.Recommendations

	err = u.runTx(ctx, func(tx *gorm.DB) error {
		if err := u.visitRepo.UpdateClinicalFields(ctx, tx, visit); err != nil {
			u.log.Warnf("Failed to update visit %d: %+v", visitID, err)
			return err
		}

		// Diagnosis set is replaced wholesale, not diffed.
		if err := u.diagnosisRepo.DeleteByVisitID(ctx, tx, visitID); err != nil {
			u.log.Warnf("Failed to delete diagnoses for visit %d: %+v", visitID, err)
			return err
		}
		for i := range diagnoses {
			diagnoses[i].VisitID = visitID
		}
		if err := u.verifyDiagnoses(ctx, tx, diagnoses); err != nil {
			u.log.Warnf("Failed to verify diagnosis codes: %+v", err)
			return err
		}
		if err := u.diagnosisRepo.CreateAll(ctx, tx, diagnoses); err != nil {
			u.log.Warnf("Failed to reinsert diagnoses for visit %d: %+v", visitID, err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.GetVisitDetail(ctx, visitID)
}

func (u *visitUsecase) GetVisitDetail(ctx context.Context, visitID uint) (*dto.VisitDetailResponse, error) {
	visit, err := u.visitRepo.FindDetailByID(ctx, u.db, visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit %d: %+v", visitID, err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	diagnoses, err := u.diagnosisRepo.FindByVisitID(ctx, u.db, visitID)
	if err != nil {
		u.log.Warnf("Failed to load diagnoses for visit %d: %+v", visitID, err)
		return nil, err
	}

	return converter.VisitToDetailResponse(visit, diagnoses), nil
}

func (u *visitUsecase) ListDiagnoses(ctx context.Context, visitID uint) ([]dto.DiagnosisResponse, error) {
	visit, err := u.visitRepo.FindByID(ctx, u.db, visitID)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	diagnoses, err := u.diagnosisRepo.FindByVisitID(ctx, u.db, visitID)
	if err != nil {
		u.log.Warnf("Failed to load diagnoses for visit %d: %+v", visitID, err)
		return nil, err
	}
	return converter.DiagnosesToResponses(diagnoses), nil
}

func (u *visitUsecase) ListVisits(ctx context.Context, filter *entity.VisitFilter) (*dto.VisitListResponse, error) {
	for _, bound := range []string{filter.DateFrom, filter.DateTo} {
		if bound == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", bound); err != nil {
			return nil, ErrInvalidDate
		}
	}

	summaries, err := u.visitRepo.Search(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to search visits: %+v", err)
		return nil, err
	}
	return converter.VisitSummariesToListResponse(summaries), nil
}

func (u *visitUsecase) ListVisitsByDay(ctx context.Context, day string) (*dto.VisitListResponse, error) {
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return nil, ErrInvalidDate
	}

	summaries, err := u.visitRepo.FindByDay(ctx, u.db, day)
	if err != nil {
		u.log.Warnf("Failed to load visits for day %s: %+v", day, err)
		return nil, err
	}
	return converter.VisitSummariesToListResponse(summaries), nil
}

func (u *visitUsecase) RenderVisitPDF(ctx context.Context, visitID uint) ([]byte, error) {
	visit, err := u.visitRepo.FindDetailByID(ctx, u.db, visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit %d: %+v", visitID, err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	diagnoses, err := u.diagnosisRepo.FindByVisitID(ctx, u.db, visitID)
	if err != nil {
		u.log.Warnf("Failed to load diagnoses for visit %d: %+v", visitID, err)
		return nil, err
	}

	return u.pdfService.Render(visit, diagnoses)
}
