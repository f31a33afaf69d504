package core

import (
	"context"
	"errors"
	"fmt"
	"prepcheck/internal/repository"
	tokenIssuer "prepcheck/pkg/jwt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrValidation error = errors.New("validation failed")
var ErrDuplicateUsername error = errors.New("username already exists")
var ErrInvalidCredentials error = errors.New("invalid credentials")
var ErrUnauthorized error = errors.New("unauthorized")

// HashCost is the bcrypt work factor used for new passwords.
var HashCost = bcrypt.DefaultCost

// Compared against when the username is unknown so both login failure paths
// cost one bcrypt comparison.
const dummyPasswordHash = "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK"

// PrepCheck holds the authentication and record keeping operations of the API.
type PrepCheck struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	tokenTTL  time.Duration
}

// NewPrepCheck is a constructor function for the PrepCheck type.
func NewPrepCheck(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, tokenTTL time.Duration) *PrepCheck {
	return &PrepCheck{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		tokenTTL:  tokenTTL,
	}
}

// Register stores a new user with a bcrypt hash of the password. It fails with
// ErrDuplicateUsername if the username is already taken.
func (p *PrepCheck) Register(ctx context.Context, msg AuthMessage) (UserRecord, error) {
	username := strings.TrimSpace(msg.Username)
	if username == "" || msg.Password == "" {
		return UserRecord{}, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if username != msg.Username {
		return UserRecord{}, fmt.Errorf("%w: username must not start or end with whitespace", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), HashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return UserRecord{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		return UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := p.repo.CreateUser(ctx, repository.User{
		Username:     msg.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return UserRecord{}, ErrDuplicateUsername
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	p.logs.Infow("user registered", "user_id", user.ID, "username", user.Username)

	return UserRecord{ID: user.ID, Username: user.Username}, nil
}

// Authenticate checks the provided username and password against the database. If the credentials are valid, it generates a JWT token for the user.
func (p *PrepCheck) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	valid, err := p.verify(ctx, msg.Username, msg.Password)
	if err != nil {
		return "", fmt.Errorf("verify credentials: %w", err)
	}
	if !valid {
		return "", ErrInvalidCredentials
	}

	tokenInfo := tokenIssuer.TokenInfo{
		Subject:    msg.Username,
		Expiration: p.tokenTTL,
	}
	token := p.jwtIssuer.Generate(tokenInfo)
	signed, err := p.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// VerifyToken checks the signature and expiry of a bearer token and returns
// the identity it was issued to. Tokens stay valid until they expire, there is
// no revocation.
func (p *PrepCheck) VerifyToken(token string) (Identity, error) {
	if token == "" {
		return Identity{}, fmt.Errorf("%w: missing token", ErrUnauthorized)
	}

	claims, err := p.jwtIssuer.Validate(token)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return Identity{}, fmt.Errorf("%w: token has no subject", ErrUnauthorized)
	}

	return Identity{Username: subject}, nil
}

// ListUsers returns id and username of every registered user in id order.
func (p *PrepCheck) ListUsers(ctx context.Context) ([]UserRecord, error) {
	users, err := p.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	records := make([]UserRecord, len(users))
	for i, u := range users {
		records[i] = UserRecord{
			ID:       u.ID,
			Username: u.Username,
		}
	}

	return records, nil
}

// verify fails closed: an unknown user and a wrong password both return false.
func (p *PrepCheck) verify(ctx context.Context, username, password string) (bool, error) {
	user, err := p.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(password))
			p.logs.Infow("login for unknown user", "username", username)
			return false, nil
		}
		return false, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		p.logs.Infow("password check failed", "username", username)
		return false, nil
	}

	return true, nil
}
