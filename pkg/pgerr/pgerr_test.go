package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "bookings_active_slot_uniq"}
	wrapped := fmt.Errorf("insert booking: %w", unique)

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(wrapped))
	assert.Equal(t, "bookings_active_slot_uniq", ConstraintName(wrapped))

	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("23505")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestOtherCodes(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.True(t, IsCheckViolation(&pq.Error{Code: "23514"}))

	code, ok := Code(errors.New("plain"))
	assert.False(t, ok)
	assert.Empty(t, code)
}
