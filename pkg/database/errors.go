package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes mà repository cần phân biệt
const (
	CodeUniqueViolation       = "23505"
	CodeForeignKeyViolation   = "23503"
	CodeCheckViolation        = "23514"
	CodeInsufficientPrivilege = "42501" // bao gồm vi phạm row-level security
)

// ErrForbidden được trả về khi store từ chối thao tác của session hiện tại
var ErrForbidden = errors.New("operation not permitted for this session")

// PgCode trả về SQLSTATE của err, "" nếu không phải lỗi PostgreSQL
func PgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// ConstraintName trả về tên constraint bị vi phạm (nếu có)
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// IsForbidden báo err có phải do RLS / thiếu quyền không
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden) || PgCode(err) == CodeInsufficientPrivilege
}
