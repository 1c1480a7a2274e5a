package utils

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// UpdateBuilder gom các cột của một PATCH thành câu UPDATE có tham số.
// Tên cột luôn là hằng số trong code, được quote bằng pq.QuoteIdentifier.
type UpdateBuilder struct {
	table string
	sets  []string
	args  []interface{}
}

func NewUpdateBuilder(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

// Set thêm "column = $n"
func (b *UpdateBuilder) Set(column string, value interface{}) *UpdateBuilder {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", pq.QuoteIdentifier(column), len(b.args)))
	return b
}

// SetString: nil = không đổi, "" = set NULL (xóa field optional), còn lại = giá trị mới
func (b *UpdateBuilder) SetString(column string, value *string) *UpdateBuilder {
	if value == nil {
		return b
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return b.Set(column, nil)
	}
	return b.Set(column, trimmed)
}

// SetRequiredString: nil = không đổi, còn lại = giá trị đã trim
func (b *UpdateBuilder) SetRequiredString(column string, value *string) *UpdateBuilder {
	if value == nil {
		return b
	}
	return b.Set(column, strings.TrimSpace(*value))
}

func (b *UpdateBuilder) SetBool(column string, value *bool) *UpdateBuilder {
	if value == nil {
		return b
	}
	return b.Set(column, *value)
}

func (b *UpdateBuilder) SetInt(column string, value *int) *UpdateBuilder {
	if value == nil {
		return b
	}
	return b.Set(column, *value)
}

// Empty báo không có cột nào cần update
func (b *UpdateBuilder) Empty() bool {
	return len(b.sets) == 0
}

// Build trả về câu UPDATE ... WHERE id = $n RETURNING <returning>
func (b *UpdateBuilder) Build(id interface{}, returning string) (string, []interface{}) {
	args := append(append([]interface{}{}, b.args...), id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		pq.QuoteIdentifier(b.table),
		strings.Join(b.sets, ", "),
		len(args),
		returning,
	)
	return query, args
}
