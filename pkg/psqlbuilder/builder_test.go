package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "status").
		From("appointments").
		Where(squirrel.Eq{"pickup_date": "2024-01-03"}).
		Where(squirrel.Eq{"status": "pending"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, status FROM appointments WHERE pickup_date = $1 AND status = $2", query)
	assert.Equal(t, []interface{}{"2024-01-03", "pending"}, args)
}

func TestUpdate_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Update("trips").
		Set("status", "completed").
		Where(squirrel.Eq{"id": "abc"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE trips SET status = $1 WHERE id = $2", query)
	assert.Equal(t, []interface{}{"completed", "abc"}, args)
}
