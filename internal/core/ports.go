package core

import (
	"context"
	"prepcheck/internal/repository"
	tokenIssuer "prepcheck/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	ListUsers(ctx context.Context) ([]repository.User, error)
	CreatePatient(ctx context.Context, patient repository.Patient) (repository.Patient, error)
	ListPatients(ctx context.Context) ([]repository.Patient, error)
	CreateStaff(ctx context.Context, staff repository.Staff) (repository.Staff, error)
	ListStaff(ctx context.Context) ([]repository.Staff, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
