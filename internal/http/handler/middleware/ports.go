package middleware

import "prepcheck/internal/core"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenVerifier . TokenVerifier
type TokenVerifier interface {
	VerifyToken(token string) (core.Identity, error)
}
