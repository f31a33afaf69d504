package core

import (
	"context"
	"fmt"
	"prepcheck/internal/repository"
	"strings"
	"time"
)

const surgeryDateLayout = time.DateOnly

// AddPatient validates and stores a patient. The surgery date must be a real
// calendar date in YYYY-MM-DD form.
func (p *PrepCheck) AddPatient(ctx context.Context, msg PatientMessage) (PatientRecord, error) {
	if strings.TrimSpace(msg.Name) == "" {
		return PatientRecord{}, fmt.Errorf("%w: name is required", ErrValidation)
	}

	surgeryDate, err := time.Parse(surgeryDateLayout, msg.SurgeryDate)
	if err != nil {
		return PatientRecord{}, fmt.Errorf("%w: surgery_date: %w", ErrValidation, err)
	}

	patient, err := p.repo.CreatePatient(ctx, repository.Patient{
		Name:           msg.Name,
		MedicalHistory: msg.MedicalHistory,
		SurgeryDate:    surgeryDate,
	})
	if err != nil {
		return PatientRecord{}, fmt.Errorf("create patient: %w", err)
	}

	p.logs.Infow("patient added",
		"patient_id", patient.ID,
		"added_by", actor(ctx))

	return toPatientRecord(patient), nil
}

func (p *PrepCheck) ListPatients(ctx context.Context) ([]PatientRecord, error) {
	patients, err := p.repo.ListPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	records := make([]PatientRecord, len(patients))
	for i, patient := range patients {
		records[i] = toPatientRecord(patient)
	}

	return records, nil
}

// AddStaff validates and stores a staff member.
func (p *PrepCheck) AddStaff(ctx context.Context, msg StaffMessage) (StaffRecord, error) {
	missing := make([]string, 0, 3)
	if strings.TrimSpace(msg.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(msg.Role) == "" {
		missing = append(missing, "role")
	}
	if strings.TrimSpace(msg.Credentials) == "" {
		missing = append(missing, "credentials")
	}
	if len(missing) > 0 {
		return StaffRecord{}, fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}

	staff, err := p.repo.CreateStaff(ctx, repository.Staff{
		Name:        msg.Name,
		Role:        msg.Role,
		Credentials: msg.Credentials,
	})
	if err != nil {
		return StaffRecord{}, fmt.Errorf("create staff: %w", err)
	}

	p.logs.Infow("staff added",
		"staff_id", staff.ID,
		"added_by", actor(ctx))

	return toStaffRecord(staff), nil
}

func (p *PrepCheck) ListStaff(ctx context.Context) ([]StaffRecord, error) {
	staff, err := p.repo.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}

	records := make([]StaffRecord, len(staff))
	for i, s := range staff {
		records[i] = toStaffRecord(s)
	}

	return records, nil
}

func toPatientRecord(patient repository.Patient) PatientRecord {
	return PatientRecord{
		ID:             patient.ID,
		Name:           patient.Name,
		MedicalHistory: patient.MedicalHistory,
		SurgeryDate:    patient.SurgeryDate.Format(surgeryDateLayout),
	}
}

func toStaffRecord(staff repository.Staff) StaffRecord {
	return StaffRecord{
		ID:          staff.ID,
		Name:        staff.Name,
		Role:        staff.Role,
		Credentials: staff.Credentials,
	}
}

func actor(ctx context.Context) string {
	if identity, ok := IdentityFromContext(ctx); ok {
		return identity.Username
	}
	return ""
}
