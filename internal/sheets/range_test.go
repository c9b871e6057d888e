package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnLetter(t *testing.T) {
	for idx, want := range map[int]string{0: "A", 5: "F", 9: "J", 25: "Z"} {
		got, err := columnLetter(idx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := columnLetter(26)
	assert.Error(t, err, "tables wider than Z are not supported")
	_, err = columnLetter(-1)
	assert.Error(t, err)
}

func TestDataRange(t *testing.T) {
	r, err := dataRange("Clients", 6, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "Clients!A2:F2", r)

	r, err = dataRange("Workouts", 10, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, "Workouts!A3:J5", r)

	_, err = dataRange("Workouts", 0, 1, 1)
	assert.Error(t, err)
	_, err = dataRange("Workouts", 27, 1, 1)
	assert.Error(t, err)
}

func TestHeadersMatch(t *testing.T) {
	want := []string{"clientId", "name", "email"}
	assert.True(t, headersMatch(want, []string{"clientid", "NAME", "Email"}))
	assert.False(t, headersMatch(want, []string{"clientId", "name"}))
	assert.False(t, headersMatch(want, []string{"clientId", "name", "email", "extra"}))
	assert.False(t, headersMatch(want, nil))
}
