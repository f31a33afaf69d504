package core

import "context"

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type PatientMessage struct {
	Name           string
	MedicalHistory string
	SurgeryDate    string // YYYY-MM-DD
}

type StaffMessage struct {
	Name        string
	Role        string
	Credentials string
}

type UserRecord struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type PatientRecord struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	MedicalHistory string `json:"medical_history"`
	SurgeryDate    string `json:"surgery_date"`
}

type StaffRecord struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Credentials string `json:"credentials"`
}

// Identity is the caller proven by a valid bearer token.
type Identity struct {
	Username string
}

type identityKey struct{}

func ContextWithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}
