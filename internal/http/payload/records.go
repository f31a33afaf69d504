package payload

import (
	"prepcheck/internal/core"
	"time"

	"github.com/jellydator/validation"
)

type PatientRequest struct {
	Name           string `json:"name"`
	MedicalHistory string `json:"medical_history"`
	SurgeryDate    string `json:"surgery_date"`
}

func (p PatientRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.SurgeryDate, validation.Required, validation.Date(time.DateOnly)),
	)
}

func (p PatientRequest) ToCorePatientMessage() core.PatientMessage {
	return core.PatientMessage{
		Name:           p.Name,
		MedicalHistory: p.MedicalHistory,
		SurgeryDate:    p.SurgeryDate,
	}
}

type StaffRequest struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Credentials string `json:"credentials"`
}

func (s StaffRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&s.Role, validation.Required, validation.Length(1, 50)),
		validation.Field(&s.Credentials, validation.Required, validation.Length(1, 200)),
	)
}

func (s StaffRequest) ToCoreStaffMessage() core.StaffMessage {
	return core.StaffMessage{
		Name:        s.Name,
		Role:        s.Role,
		Credentials: s.Credentials,
	}
}
