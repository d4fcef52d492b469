// Package pgerr распознает ошибки PostgreSQL, возвращаемые драйвером lib/pq
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL
const (
	CodeUniqueViolation     pq.ErrorCode = "23505"
	CodeForeignKeyViolation pq.ErrorCode = "23503"
	CodeCheckViolation      pq.ErrorCode = "23514"
)

// Code возвращает код ошибки PostgreSQL, если err (или обернутая в нее ошибка) пришла от сервера
func Code(err error) (pq.ErrorCode, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code, true
	}
	return "", false
}

// IsUniqueViolation нарушение уникального ограничения или индекса
func IsUniqueViolation(err error) bool {
	code, ok := Code(err)
	return ok && code == CodeUniqueViolation
}

// IsForeignKeyViolation нарушение внешнего ключа
func IsForeignKeyViolation(err error) bool {
	code, ok := Code(err)
	return ok && code == CodeForeignKeyViolation
}

// IsCheckViolation нарушение CHECK ограничения
func IsCheckViolation(err error) bool {
	code, ok := Code(err)
	return ok && code == CodeCheckViolation
}

// ConstraintName имя нарушенного ограничения
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}
