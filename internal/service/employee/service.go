package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/horaria-hr/horaria-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	user.UserRepository
}

func NewEmployeeService(userRepository user.UserRepository) user.EmployeeService {
	return &EmployeeServiceImpl{
		UserRepository: userRepository,
	}
}

// CreateEmployee implements user.EmployeeService.
func (e *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req user.CreateEmployeeRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	role := req.Role
	if role == "" {
		role = user.RoleEmployee
	}

	created, err := e.UserRepository.Create(ctx, user.User{
		TenantID:     req.TenantID,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &passwordHash,
		Role:         role,
		Active:       true,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			return user.UserResponse{}, user.ErrEmailExists
		}
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return mapUserToResponse(created), nil
}

// ListEmployees implements user.EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context, tenantID string) ([]user.UserResponse, error) {
	users, err := e.UserRepository.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, mapUserToResponse(u))
	}

	return responses, nil
}

// DeactivateEmployee implements user.EmployeeService.
func (e *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, tenantID string, userID string) error {
	userData, err := e.getTenantUser(ctx, tenantID, userID)
	if err != nil {
		return err
	}

	userData.Active = false
	if err := e.UserRepository.Update(ctx, userData); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	return nil
}

// SetHomeLocation implements user.EmployeeService.
func (e *EmployeeServiceImpl) SetHomeLocation(ctx context.Context, req user.SetHomeLocationRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	userData, err := e.getTenantUser(ctx, req.TenantID, req.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}

	userData.HomeLat = &req.Lat
	userData.HomeLng = &req.Lng
	if req.Address != "" {
		userData.HomeAddress = &req.Address
	}

	if err := e.UserRepository.Update(ctx, userData); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update home location: %w", err)
	}

	return mapUserToResponse(userData), nil
}

// GetProfile implements user.EmployeeService.
func (e *EmployeeServiceImpl) GetProfile(ctx context.Context, userID string) (user.UserResponse, error) {
	userData, err := e.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	return mapUserToResponse(userData), nil
}

// UpdateProfile implements user.EmployeeService.
func (e *EmployeeServiceImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	userData, err := e.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if req.FullName != nil {
		userData.FullName = *req.FullName
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		passwordHash := string(hash)
		userData.PasswordHash = &passwordHash
	}

	if err := e.UserRepository.Update(ctx, userData); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	return mapUserToResponse(userData), nil
}

// getTenantUser loads a user and enforces tenant isolation for admin actions.
func (e *EmployeeServiceImpl) getTenantUser(ctx context.Context, tenantID string, userID string) (user.User, error) {
	userData, err := e.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	if userData.TenantID != tenantID {
		return user.User{}, user.ErrUserNotFound
	}

	return userData, nil
}

func mapUserToResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:          u.ID,
		TenantID:    u.TenantID,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        u.Role,
		HomeLat:     u.HomeLat,
		HomeLng:     u.HomeLng,
		HomeAddress: u.HomeAddress,
		Active:      u.Active,
		CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
