package usecase

import (
	"bytes"
	"context"
	"testing"
	"time"

	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// =========== Mock Repositories ===========

type mockPatientRepo struct {
	store     map[uint]*entity.Patient
	createErr error
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{store: make(map[uint]*entity.Patient)}
}

func (m *mockPatientRepo) Create(_ context.Context, _ *gorm.DB, patient *entity.Patient) error {
	if m.createErr != nil {
		return m.createErr
	}
	patient.ID = uint(len(m.store) + 1)
	m.store[patient.ID] = patient
	return nil
}

func (m *mockPatientRepo) FindByID(_ context.Context, _ *gorm.DB, id uint) (*entity.Patient, error) {
	return m.store[id], nil
}

func (m *mockPatientRepo) FindAll(_ context.Context, _ *gorm.DB, _ string) ([]entity.Patient, error) {
	var patients []entity.Patient
	for _, p := range m.store {
		patients = append(patients, *p)
	}
	return patients, nil
}

func (m *mockPatientRepo) Count(_ context.Context, _ *gorm.DB) (int64, error) {
	return int64(len(m.store)), nil
}

type mockVisitRepo struct {
	store map[uint]*entity.Visit
}

func newMockVisitRepo() *mockVisitRepo {
	return &mockVisitRepo{store: make(map[uint]*entity.Visit)}
}

func (m *mockVisitRepo) Create(_ context.Context, _ *gorm.DB, visit *entity.Visit) error {
	visit.ID = uint(len(m.store) + 1)
	m.store[visit.ID] = visit
	return nil
}

func (m *mockVisitRepo) FindByID(_ context.Context, _ *gorm.DB, id uint) (*entity.Visit, error) {
	return m.store[id], nil
}

func (m *mockVisitRepo) FindDetailByID(_ context.Context, _ *gorm.DB, id uint) (*entity.Visit, error) {
	return m.store[id], nil
}

func (m *mockVisitRepo) FindByPatientID(_ context.Context, _ *gorm.DB, patientID uint) ([]entity.Visit, error) {
	var visits []entity.Visit
	for _, v := range m.store {
		if v.PatientID == patientID {
			visits = append(visits, *v)
		}
	}
	return visits, nil
}

func (m *mockVisitRepo) UpdateClinicalFields(_ context.Context, _ *gorm.DB, visit *entity.Visit) error {
	stored := m.store[visit.ID]
	stored.Interview = visit.Interview
	stored.Examination = visit.Examination
	stored.Medications = visit.Medications
	stored.Recommendations = visit.Recommendations
	return nil
}

func (m *mockVisitRepo) Search(_ context.Context, _ *gorm.DB, _ *entity.VisitFilter) ([]entity.VisitSummary, error) {
	return nil, nil
}

func (m *mockVisitRepo) FindByDay(_ context.Context, _ *gorm.DB, _ string) ([]entity.VisitSummary, error) {
	return nil, nil
}

func (m *mockVisitRepo) Count(_ context.Context, _ *gorm.DB) (int64, error) {
	return int64(len(m.store)), nil
}

type mockDiagnosisRepo struct {
	store map[uint][]entity.Diagnosis
}

func newMockDiagnosisRepo() *mockDiagnosisRepo {
	return &mockDiagnosisRepo{store: make(map[uint][]entity.Diagnosis)}
}

func (m *mockDiagnosisRepo) CreateAll(_ context.Context, _ *gorm.DB, diagnoses []entity.Diagnosis) error {
	for _, d := range diagnoses {
		m.store[d.VisitID] = append(m.store[d.VisitID], d)
	}
	return nil
}

func (m *mockDiagnosisRepo) FindByVisitID(_ context.Context, _ *gorm.DB, visitID uint) ([]entity.Diagnosis, error) {
	return m.store[visitID], nil
}

func (m *mockDiagnosisRepo) DeleteByVisitID(_ context.Context, _ *gorm.DB, visitID uint) error {
	delete(m.store, visitID)
	return nil
}

type mockICDRepo struct {
	store       map[string]string
	searchCalls int
}

func newMockICDRepo() *mockICDRepo {
	m := &mockICDRepo{store: make(map[string]string)}
	m.store["R51"] = "Headache"
	m.store["I10"] = "Essential (primary) hypertension"
	return m
}

func (m *mockICDRepo) Search(_ context.Context, _ *gorm.DB, query string, limit int) ([]entity.ICD10Code, error) {
	m.searchCalls++
	var codes []entity.ICD10Code
	for code, name := range m.store {
		codes = append(codes, entity.ICD10Code{Code: code, Name: name})
		if len(codes) >= limit {
			break
		}
	}
	return codes, nil
}

func (m *mockICDRepo) ExistsByCode(_ context.Context, _ *gorm.DB, code string) (bool, error) {
	_, ok := m.store[code]
	return ok, nil
}

func (m *mockICDRepo) Upsert(_ context.Context, _ *gorm.DB, code *entity.ICD10Code) error {
	if _, ok := m.store[code.Code]; !ok {
		m.store[code.Code] = code.Name
	}
	return nil
}

func newTestVisitUsecase() (VisitUsecase, *mockPatientRepo, *mockVisitRepo, *mockDiagnosisRepo) {
	patientRepo := newMockPatientRepo()
	visitRepo := newMockVisitRepo()
	diagnosisRepo := newMockDiagnosisRepo()
	icdRepo := newMockICDRepo()
	log := logrus.New()
	u := NewVisitUsecase(nil, log, patientRepo, visitRepo, diagnosisRepo, icdRepo, service.NewVisitPDFService()).(*visitUsecase)
	// The mocks take no store handle, so the write paths run without one.
	u.runTx = func(_ context.Context, fn func(tx *gorm.DB) error) error {
		return fn(nil)
	}
	return u, patientRepo, visitRepo, diagnosisRepo
}

// =========== Diagnosis Normalization ===========

func TestNormalizeCreateDiagnoses_DropsBlankSlots(t *testing.T) {
	entries := []dto.DiagnosisEntryRequest{
		{Code: "R51", Name: "Headache", IsPrimary: true},
		{Code: "  ", Name: "No code"},
		{Code: "I10", Name: ""},
	}

	diagnoses, err := normalizeCreateDiagnoses(entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diagnoses) != 1 {
		t.Fatalf("expected 1 diagnosis, got %d", len(diagnoses))
	}
	if diagnoses[0].Code != "R51" || !diagnoses[0].IsPrimary {
		t.Errorf("unexpected diagnosis: %+v", diagnoses[0])
	}
}

func TestNormalizeCreateDiagnoses_MultiplePrimariesRejected(t *testing.T) {
	entries := []dto.DiagnosisEntryRequest{
		{Code: "R51", Name: "Headache", IsPrimary: true},
		{Code: "I10", Name: "Hypertension", IsPrimary: true},
	}

	_, err := normalizeCreateDiagnoses(entries)
	if err != ErrMultiplePrimaryDiagnoses {
		t.Errorf("expected ErrMultiplePrimaryDiagnoses, got %v", err)
	}
}

func TestNormalizeCreateDiagnoses_NoneFlaggedPromotesFirst(t *testing.T) {
	entries := []dto.DiagnosisEntryRequest{
		{Code: "R51", Name: "Headache"},
		{Code: "I10", Name: "Hypertension"},
	}

	diagnoses, err := normalizeCreateDiagnoses(entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !diagnoses[0].IsPrimary {
		t.Error("expected first diagnosis to be promoted to primary")
	}
	if diagnoses[1].IsPrimary {
		t.Error("expected second diagnosis to stay non-primary")
	}
}

func TestNormalizeUpdateDiagnoses_PrimaryIndexDefaultsToFirst(t *testing.T) {
	entries := []dto.DiagnosisEntryRequest{
		{Code: "R51", Name: "Headache"},
		{Code: "I10", Name: "Hypertension"},
	}

	diagnoses := normalizeUpdateDiagnoses(entries, nil)
	if len(diagnoses) != 2 {
		t.Fatalf("expected 2 diagnoses, got %d", len(diagnoses))
	}
	if !diagnoses[0].IsPrimary || diagnoses[1].IsPrimary {
		t.Errorf("expected only first diagnosis primary, got %+v", diagnoses)
	}
}

func TestNormalizeUpdateDiagnoses_PrimaryIndexCountsSubmittedSlots(t *testing.T) {
	idx := 2
	entries := []dto.DiagnosisEntryRequest{
		{Code: "R51", Name: "Headache"},
		{Code: "", Name: ""},
		{Code: "I10", Name: "Hypertension"},
	}

	diagnoses := normalizeUpdateDiagnoses(entries, &idx)
	if len(diagnoses) != 2 {
		t.Fatalf("expected 2 diagnoses, got %d", len(diagnoses))
	}
	if diagnoses[0].IsPrimary {
		t.Error("expected first diagnosis non-primary")
	}
	if !diagnoses[1].IsPrimary {
		t.Error("expected slot-2 diagnosis to be primary")
	}
}

func TestNormalizeUpdateDiagnoses_DroppedPrimarySlotFallsBack(t *testing.T) {
	idx := 1
	entries := []dto.DiagnosisEntryRequest{
		{Code: "R51", Name: "Headache"},
		{Code: "", Name: "blank slot"},
	}

	diagnoses := normalizeUpdateDiagnoses(entries, &idx)
	if len(diagnoses) != 1 {
		t.Fatalf("expected 1 diagnosis, got %d", len(diagnoses))
	}
	if !diagnoses[0].IsPrimary {
		t.Error("expected fallback to first surviving diagnosis")
	}
}

func TestNormalizeUpdateDiagnoses_AllBlankClearsSet(t *testing.T) {
	entries := []dto.DiagnosisEntryRequest{
		{Code: "", Name: ""},
		{Code: " ", Name: " "},
	}

	diagnoses := normalizeUpdateDiagnoses(entries, nil)
	if len(diagnoses) != 0 {
		t.Errorf("expected empty diagnosis set, got %d entries", len(diagnoses))
	}
}

// =========== Medications ===========

func TestCollapseMedications_FlatTextPassesThrough(t *testing.T) {
	got := collapseMedications("Ibuprofen 400mg", nil)
	if got != "Ibuprofen 400mg" {
		t.Errorf("expected flat text unchanged, got %q", got)
	}
}

func TestCollapseMedications_StructuredEntries(t *testing.T) {
	entries := []dto.MedicationEntryRequest{
		{Drug: "Ibuprofen", Dose: "400mg", Schedule: "2x daily"},
		{Drug: "Amoxicillin", Dose: "500mg", Schedule: "3x daily"},
	}

	got := collapseMedications("", entries)
	want := "Ibuprofen 400mg 2x daily\nAmoxicillin 500mg 3x daily"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCollapseMedications_SkipsEmptyEntries(t *testing.T) {
	entries := []dto.MedicationEntryRequest{
		{Drug: "Ibuprofen"},
		{Drug: "", Dose: "", Schedule: ""},
	}

	got := collapseMedications("", entries)
	if got != "Ibuprofen" {
		t.Errorf("expected %q, got %q", "Ibuprofen", got)
	}
}

// =========== CreateVisit Validation ===========

func TestCreateVisit_AllEmptyRejected(t *testing.T) {
	u, patientRepo, _, _ := newTestVisitUsecase()
	patientRepo.store[1] = &entity.Patient{ID: 1, FirstName: "Anna", LastName: "Kowalska", NationalID: "00010112345"}

	_, err := u.CreateVisit(context.Background(), &dto.CreateVisitRequest{PatientID: 1})
	if err != ErrEmptyVisit {
		t.Errorf("expected ErrEmptyVisit, got %v", err)
	}
}

func TestCreateVisit_MultiplePrimariesRejectedBeforeWrite(t *testing.T) {
	u, _, visitRepo, _ := newTestVisitUsecase()

	_, err := u.CreateVisit(context.Background(), &dto.CreateVisitRequest{
		PatientID: 1,
		Diagnoses: []dto.DiagnosisEntryRequest{
			{Code: "R51", Name: "Headache", IsPrimary: true},
			{Code: "I10", Name: "Hypertension", IsPrimary: true},
		},
	})
	if err != ErrMultiplePrimaryDiagnoses {
		t.Errorf("expected ErrMultiplePrimaryDiagnoses, got %v", err)
	}
	if len(visitRepo.store) != 0 {
		t.Error("expected no visit written")
	}
}

func TestCreateVisit_UnknownPatientRejected(t *testing.T) {
	u, _, _, _ := newTestVisitUsecase()

	_, err := u.CreateVisit(context.Background(), &dto.CreateVisitRequest{
		PatientID: 42,
		Interview: "headache since yesterday",
	})
	if err != ErrPatientNotFound {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestCreateVisit_PersistsVisitWithVerifiedDiagnoses(t *testing.T) {
	u, patientRepo, visitRepo, diagnosisRepo := newTestVisitUsecase()
	patientRepo.store[1] = &entity.Patient{ID: 1, FirstName: "Anna", LastName: "Kowalska", NationalID: "00010112345"}

	resp, err := u.CreateVisit(context.Background(), &dto.CreateVisitRequest{
		PatientID: 1,
		Interview: "Ból głowy",
		Diagnoses: []dto.DiagnosisEntryRequest{
			{Code: "R51", Name: "Headache", IsPrimary: true},
			{Code: "X99", Name: "Free-text code"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	visit := visitRepo.store[resp.ID]
	if visit == nil {
		t.Fatal("expected visit persisted")
	}
	if visit.VisitDate.IsZero() {
		t.Error("expected visit date assigned at creation")
	}

	diagnoses := diagnosisRepo.store[resp.ID]
	if len(diagnoses) != 2 {
		t.Fatalf("expected 2 diagnoses, got %d", len(diagnoses))
	}
	if !diagnoses[0].Verified {
		t.Error("expected R51 verified against the reference table")
	}
	if diagnoses[1].Verified {
		t.Error("expected unknown code stored unverified")
	}
}

// =========== UpdateVisit ===========

func TestUpdateVisit_NotFound(t *testing.T) {
	u, _, _, _ := newTestVisitUsecase()

	_, err := u.UpdateVisit(context.Background(), 99, &dto.UpdateVisitRequest{Interview: "x"})
	if err != ErrVisitNotFound {
		t.Errorf("expected ErrVisitNotFound, got %v", err)
	}
}

func TestUpdateVisit_PreservesVisitDate(t *testing.T) {
	u, _, visitRepo, _ := newTestVisitUsecase()
	createdAt := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
	visitRepo.store[1] = &entity.Visit{
		ID:        1,
		PatientID: 1,
		VisitDate: createdAt,
		Interview: "initial note",
		Patient:   entity.Patient{ID: 1, FirstName: "Anna", LastName: "Kowalska", NationalID: "00010112345"},
	}

	detail, err := u.UpdateVisit(context.Background(), 1, &dto.UpdateVisitRequest{
		Interview: "amended note",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !visitRepo.store[1].VisitDate.Equal(createdAt) {
		t.Errorf("expected visit date unchanged, got %v", visitRepo.store[1].VisitDate)
	}
	if !detail.VisitDate.Equal(createdAt) {
		t.Errorf("expected original visit date in response, got %v", detail.VisitDate)
	}
	if detail.Interview != "amended note" {
		t.Errorf("expected interview overwritten, got %q", detail.Interview)
	}
}

func TestUpdateVisit_ReplacesDiagnosesWholesale(t *testing.T) {
	u, _, visitRepo, diagnosisRepo := newTestVisitUsecase()
	visitRepo.store[1] = &entity.Visit{
		ID:        1,
		PatientID: 1,
		Interview: "initial note",
		Patient:   entity.Patient{ID: 1, FirstName: "Anna", LastName: "Kowalska", NationalID: "00010112345"},
	}
	diagnosisRepo.store[1] = []entity.Diagnosis{
		{VisitID: 1, Code: "R51", Name: "Headache", IsPrimary: true, Verified: true},
	}

	detail, err := u.UpdateVisit(context.Background(), 1, &dto.UpdateVisitRequest{
		Interview: "initial note",
		Diagnoses: []dto.DiagnosisEntryRequest{
			{Code: "I10", Name: "Hypertension"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := diagnosisRepo.store[1]
	if len(stored) != 1 || stored[0].Code != "I10" {
		t.Fatalf("expected diagnosis set replaced with I10, got %+v", stored)
	}
	if !stored[0].IsPrimary || !stored[0].Verified {
		t.Errorf("expected reinserted diagnosis primary and verified, got %+v", stored[0])
	}
	if len(detail.Diagnoses) != 1 || detail.Diagnoses[0].Code != "I10" {
		t.Errorf("expected replaced set in response, got %+v", detail.Diagnoses)
	}
}

// =========== Reads ===========

func TestGetVisitDetail_NotFound(t *testing.T) {
	u, _, _, _ := newTestVisitUsecase()

	_, err := u.GetVisitDetail(context.Background(), 99)
	if err != ErrVisitNotFound {
		t.Errorf("expected ErrVisitNotFound, got %v", err)
	}
}

func TestGetVisitDetail_ReturnsSubmittedContent(t *testing.T) {
	u, _, visitRepo, diagnosisRepo := newTestVisitUsecase()
	visitRepo.store[1] = &entity.Visit{
		ID:        1,
		PatientID: 1,
		Interview: "Ból głowy",
		Patient:   entity.Patient{ID: 1, FirstName: "Anna", LastName: "Kowalska", NationalID: "00010112345"},
	}
	diagnosisRepo.store[1] = []entity.Diagnosis{
		{VisitID: 1, Code: "R51", Name: "Headache", IsPrimary: true, Verified: true},
	}

	detail, err := u.GetVisitDetail(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Interview != "Ból głowy" {
		t.Errorf("expected interview preserved, got %q", detail.Interview)
	}
	if len(detail.Diagnoses) != 1 || !detail.Diagnoses[0].IsPrimary {
		t.Errorf("expected one primary diagnosis, got %+v", detail.Diagnoses)
	}
	if detail.Patient.NationalID != "00010112345" {
		t.Errorf("expected joined patient data, got %+v", detail.Patient)
	}
}

func TestListDiagnoses_VisitNotFound(t *testing.T) {
	u, _, _, _ := newTestVisitUsecase()

	_, err := u.ListDiagnoses(context.Background(), 7)
	if err != ErrVisitNotFound {
		t.Errorf("expected ErrVisitNotFound, got %v", err)
	}
}

func TestListVisits_InvalidDateRejected(t *testing.T) {
	u, _, _, _ := newTestVisitUsecase()

	_, err := u.ListVisits(context.Background(), &entity.VisitFilter{DateFrom: "01-02-2024"})
	if err != ErrInvalidDate {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestListVisitsByDay_InvalidDateRejected(t *testing.T) {
	u, _, _, _ := newTestVisitUsecase()

	_, err := u.ListVisitsByDay(context.Background(), "not-a-date")
	if err != ErrInvalidDate {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

// =========== PDF ===========

func TestRenderVisitPDF_ProducesPDFBytes(t *testing.T) {
	u, _, visitRepo, diagnosisRepo := newTestVisitUsecase()
	visitRepo.store[1] = &entity.Visit{
		ID:        1,
		PatientID: 1,
		Interview: "headache",
		Patient:   entity.Patient{ID: 1, FirstName: "Anna", LastName: "Kowalska", NationalID: "00010112345"},
	}
	diagnosisRepo.store[1] = []entity.Diagnosis{
		{VisitID: 1, Code: "R51", Name: "Headache", IsPrimary: true},
	}

	pdfBytes, err := u.RenderVisitPDF(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Error("expected output to start with PDF header")
	}
}

func TestRenderVisitPDF_NotFound(t *testing.T) {
	u, _, _, _ := newTestVisitUsecase()

	_, err := u.RenderVisitPDF(context.Background(), 123)
	if err != ErrVisitNotFound {
		t.Errorf("expected ErrVisitNotFound, got %v", err)
	}
}
