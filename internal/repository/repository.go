package repository

import (
	"context"
	"errors"
	"fmt"
	"prepcheck/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrDuplicateUsername error = errors.New("username already exists")

type RecordRepository struct {
	db Storage
}

func NewRecordRepository(db Storage) *RecordRepository {
	return &RecordRepository{
		db: db,
	}
}

func (r *RecordRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Patient{}, &Staff{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *RecordRepository) CreateUser(ctx context.Context, user User) (User, error) {
	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrDuplicateUsername
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *RecordRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *RecordRepository) ListUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	err := r.db.GetAll(ctx, &users)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *RecordRepository) CreatePatient(ctx context.Context, patient Patient) (Patient, error) {
	err := r.db.Insert(ctx, &patient)
	if err != nil {
		return Patient{}, fmt.Errorf("create patient: %w", err)
	}

	return patient, nil
}

func (r *RecordRepository) ListPatients(ctx context.Context) ([]Patient, error) {
	patients := []Patient{}
	err := r.db.GetAll(ctx, &patients)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	return patients, nil
}

func (r *RecordRepository) CreateStaff(ctx context.Context, staff Staff) (Staff, error) {
	err := r.db.Insert(ctx, &staff)
	if err != nil {
		return Staff{}, fmt.Errorf("create staff: %w", err)
	}

	return staff, nil
}

func (r *RecordRepository) ListStaff(ctx context.Context) ([]Staff, error) {
	staff := []Staff{}
	err := r.db.GetAll(ctx, &staff)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}

	return staff, nil
}
