package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/user"
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/database"
)

const userColumns = `id, tenant_id, email, full_name, password_hash, role,
	home_lat, home_lng, home_address, active, created_at, updated_at`

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return user.User{}, fmt.Errorf("failed to generate user id: %w", err)
	}
	u.ID = id.String()

	query := `
		INSERT INTO users (id, tenant_id, email, full_name, password_hash, role, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		u.ID, u.TenantID, u.Email, u.FullName, u.PasswordHash, u.Role, u.Active,
	).Scan(&u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	return scanUser(q.QueryRow(ctx, query, id))
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	return scanUser(q.QueryRow(ctx, query, email))
}

// ListByTenant implements user.UserRepository.
func (r *userRepository) ListByTenant(ctx context.Context, tenantID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE tenant_id = $1 ORDER BY full_name ASC`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	return users, nil
}

// Update implements user.UserRepository.
func (r *userRepository) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET full_name = $2, password_hash = $3, role = $4,
			home_lat = $5, home_lng = $6, home_address = $7,
			active = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		u.ID, u.FullName, u.PasswordHash, u.Role,
		u.HomeLat, u.HomeLng, u.HomeAddress, u.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func scanUser(row rowScanner) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.TenantID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role,
		&u.HomeLat, &u.HomeLng, &u.HomeAddress, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}
