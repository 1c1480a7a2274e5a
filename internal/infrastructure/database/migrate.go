package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// migrationLockID là key của pg_advisory_lock, tránh 2 process migrate cùng lúc
const migrationLockID int64 = 720_145_001

// Migration là một file SQL trong migrations/, version là prefix số của tên file
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// MigrationRecord là trạng thái của một migration trong database
type MigrationRecord struct {
	Version   string
	Name      string
	Applied   bool
	AppliedAt *time.Time
}

// Migrator áp dụng các migration được embed vào binary.
// Phải chạy bằng role owner của schema, không phải role của API.
type Migrator struct {
	pool *pgxpool.Pool
}

func NewMigrator(pool *pgxpool.Pool) *Migrator {
	return &Migrator{pool: pool}
}

// LoadMigrations đọc và sắp xếp các migration theo version
func LoadMigrations() ([]Migration, error) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	var migrations []Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		version, name, ok := strings.Cut(strings.TrimSuffix(entry.Name(), ".sql"), "_")
		if !ok {
			return nil, fmt.Errorf("invalid migration file name %q", entry.Name())
		}

		body, err := migrationFiles.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}

		migrations = append(migrations, Migration{Version: version, Name: name, SQL: string(body)})
	}

	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	return migrations, nil
}

func (m *Migrator) initialize(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version     VARCHAR(14) PRIMARY KEY,
			name        VARCHAR(255) NOT NULL,
			applied_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}
	return nil
}

func (m *Migrator) applied(ctx context.Context) (map[string]time.Time, error) {
	rows, err := m.pool.Query(ctx, `SELECT version, applied_at FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	out := make(map[string]time.Time)
	for rows.Next() {
		var version string
		var at time.Time
		if err := rows.Scan(&version, &at); err != nil {
			return nil, fmt.Errorf("failed to scan migration record: %w", err)
		}
		out[version] = at
	}
	return out, rows.Err()
}

// Up áp dụng tất cả migration chưa chạy, mỗi migration trong một transaction.
// Trả về danh sách version vừa được áp dụng.
func (m *Migrator) Up(ctx context.Context) ([]string, error) {
	if err := m.initialize(ctx); err != nil {
		return nil, err
	}

	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", migrationLockID); err != nil {
		return nil, fmt.Errorf("failed to acquire migration lock: %w", err)
	}
	defer func() {
		if _, err := conn.Exec(context.Background(), "SELECT pg_advisory_unlock($1)", migrationLockID); err != nil {
			log.Printf("[MIGRATE] Failed to release lock: %v", err)
		}
	}()

	migrations, err := LoadMigrations()
	if err != nil {
		return nil, err
	}

	done, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}

	var appliedNow []string
	for _, mig := range migrations {
		if _, ok := done[mig.Version]; ok {
			continue
		}

		log.Printf("[MIGRATE] Applying %s_%s", mig.Version, mig.Name)
		err := pgx.BeginFunc(ctx, conn.Conn(), func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, mig.SQL); err != nil {
				return err
			}
			_, err := tx.Exec(ctx,
				`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`,
				mig.Version, mig.Name)
			return err
		})
		if err != nil {
			return appliedNow, fmt.Errorf("migration %s_%s failed: %w", mig.Version, mig.Name, err)
		}
		appliedNow = append(appliedNow, mig.Version)
	}

	return appliedNow, nil
}

// Status liệt kê mọi migration đã embed cùng trạng thái applied
func (m *Migrator) Status(ctx context.Context) ([]MigrationRecord, error) {
	if err := m.initialize(ctx); err != nil {
		return nil, err
	}

	migrations, err := LoadMigrations()
	if err != nil {
		return nil, err
	}

	done, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]MigrationRecord, 0, len(migrations))
	for _, mig := range migrations {
		rec := MigrationRecord{Version: mig.Version, Name: mig.Name}
		if at, ok := done[mig.Version]; ok {
			at := at
			rec.Applied = true
			rec.AppliedAt = &at
		}
		records = append(records, rec)
	}
	return records, nil
}

// GrantAppRole cấp quyền DML cho role mà API dùng để kết nối.
// Role này không được là owner của bảng hay superuser, nếu không RLS bị bỏ qua.
func (m *Migrator) GrantAppRole(ctx context.Context, role string) error {
	if strings.TrimSpace(role) == "" {
		return fmt.Errorf("role name is required")
	}

	quoted := pq.QuoteIdentifier(role)
	statements := []string{
		"GRANT USAGE ON SCHEMA public TO " + quoted,
		"GRANT SELECT, INSERT, UPDATE, DELETE ON users, user_roles, artists, music_releases, events, promo_slides, demo_submissions TO " + quoted,
		"GRANT EXECUTE ON FUNCTION current_app_user(), is_admin(), has_role(UUID, app_role) TO " + quoted,
	}

	return pgx.BeginFunc(ctx, m.pool, func(tx pgx.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("grant failed: %w", err)
			}
		}
		return nil
	})
}
