package handler

import (
	"context"
	"net/http"
	"prepcheck/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RecordService . RecordService
type RecordService interface {
	Register(ctx context.Context, msg core.AuthMessage) (core.UserRecord, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	ListUsers(ctx context.Context) ([]core.UserRecord, error)
	AddPatient(ctx context.Context, msg core.PatientMessage) (core.PatientRecord, error)
	ListPatients(ctx context.Context) ([]core.PatientRecord, error)
	AddStaff(ctx context.Context, msg core.StaffMessage) (core.StaffRecord, error)
	ListStaff(ctx context.Context) ([]core.StaffRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
