package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hypehouse-backend/internal/domains/auth/model"
	"hypehouse-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const userColumns = `id, email, password_hash, last_login_at, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, model.NormalizedEmail(email)))
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, err
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, err
}

func (r *postgresRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE users SET last_login_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

func (r *postgresRepository) HasRole(ctx context.Context, userID uuid.UUID, role model.Role) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT has_role($1, $2::app_role)`, userID, string(role)).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check role: %w", err)
	}
	return ok, nil
}

func (r *postgresRepository) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING `+userColumns,
		model.NormalizedEmail(email), passwordHash))
	if err != nil {
		if database.PgCode(err) == database.CodeUniqueViolation {
			return nil, model.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) GrantRole(ctx context.Context, userID uuid.UUID, role model.Role) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2::app_role) ON CONFLICT (user_id, role) DO NOTHING`,
		userID, string(role))
	if err != nil {
		if database.PgCode(err) == database.CodeForeignKeyViolation {
			return model.ErrUserNotFound
		}
		return fmt.Errorf("grant role: %w", err)
	}
	return nil
}

func (r *postgresRepository) RevokeRole(ctx context.Context, userID uuid.UUID, role model.Role) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM user_roles WHERE user_id = $1 AND role = $2::app_role`, userID, string(role))
	if err != nil {
		return false, fmt.Errorf("revoke role: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) ListRoles(ctx context.Context) ([]model.RoleAssignment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT ur.user_id, u.email, ur.role::text, ur.created_at
		FROM user_roles ur
		JOIN users u ON u.id = ur.user_id
		ORDER BY u.email, ur.role`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var out []model.RoleAssignment
	for rows.Next() {
		var a model.RoleAssignment
		var role string
		if err := rows.Scan(&a.UserID, &a.Email, &role, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		a.Role = model.Role(role)
		out = append(out, a)
	}
	return out, rows.Err()
}
