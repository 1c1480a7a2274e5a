package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hypehouse-backend/internal/shared/session"
)

// WithTransaction function:
//     Begin transaction từ pool
//     Defer rollback - tự động rollback nếu fn trả về error hoặc panic
//     Commit nếu không có error

// TxFunc là function type được execute trong transaction
type TxFunc func(pgx.Tx) error

// Beginner là phần chung của *pgxpool.Pool và pgx.Tx dùng để mở transaction
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// WithTransaction wraps một function trong transaction
// Auto rollback nếu có error, auto commit nếu success
func WithTransaction(ctx context.Context, db Beginner, fn TxFunc) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.Background())
			panic(p)
		} else if err != nil {
			_ = tx.Rollback(context.Background())
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithTransactionResult wraps function có return value trong transaction
func WithTransactionResult[T any](ctx context.Context, db Beginner, fn func(pgx.Tx) (T, error)) (T, error) {
	var result T

	err := WithTransaction(ctx, db, func(tx pgx.Tx) error {
		var fnErr error
		result, fnErr = fn(tx)
		return fnErr
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}

// SetCaller gắn user id vào transaction (app.user_id, local cho transaction)
// để policy row-level security nhận diện người gọi. uuid.Nil = anonymous.
func SetCaller(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error {
	value := ""
	if userID != uuid.Nil {
		value = userID.String()
	}
	if _, err := tx.Exec(ctx, "SELECT set_config('app.user_id', $1, true)", value); err != nil {
		return fmt.Errorf("failed to set session caller: %w", err)
	}
	return nil
}

// WithSession chạy fn trong transaction mang caller của request.
// Mọi repository đi qua hàm này để store tự enforce quyền.
func WithSession(ctx context.Context, pool *pgxpool.Pool, fn TxFunc) error {
	return WithTransaction(ctx, pool, func(tx pgx.Tx) error {
		if err := SetCaller(ctx, tx, session.UserID(ctx)); err != nil {
			return err
		}
		return fn(tx)
	})
}

// WithSessionResult là WithSession có return value
func WithSessionResult[T any](ctx context.Context, pool *pgxpool.Pool, fn func(pgx.Tx) (T, error)) (T, error) {
	return WithTransactionResult(ctx, pool, func(tx pgx.Tx) (T, error) {
		if err := SetCaller(ctx, tx, session.UserID(ctx)); err != nil {
			var zero T
			return zero, err
		}
		return fn(tx)
	})
}
