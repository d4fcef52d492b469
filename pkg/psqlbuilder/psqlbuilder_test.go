package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("bookings").
		Where(squirrel.Eq{"specialist_id": 7}).
		Where(squirrel.NotEq{"status": "cancelled"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM bookings WHERE specialist_id = $1 AND status <> $2", query)
	assert.Equal(t, []interface{}{7, "cancelled"}, args)
}

func TestDelete(t *testing.T) {
	query, args, err := Delete("schedules").Where(squirrel.Eq{"specialist_id": 3}).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM schedules WHERE specialist_id = $1", query)
	assert.Equal(t, []interface{}{3}, args)
}
