package source_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/field"
	"github.com/dmitrymomot/formcheck/pkg/source"
)

func TestFromValues(t *testing.T) {
	t.Parallel()

	m := source.FromValues(url.Values{
		"firstName": {"John", "ignored"},
		"terms":     {"on"},
		"secrets":   {"off"},
		"unknown":   {"x"},
	})

	assert.Equal(t, "John", m.Value(field.FirstName))
	assert.True(t, m.Checked(field.Terms))
	assert.False(t, m.Checked(field.Secrets))
	assert.Equal(t, "", m.Value(field.ID("unknown")))
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	t.Run("converts scalar types", func(t *testing.T) {
		t.Parallel()
		m, err := source.FromMap(map[string]any{
			"firstName":   "John",
			"age":         31,
			"dobDay":      int64(15),
			"dobMonth":    uint64(6),
			"dobYear":     float64(1993),
			"phoneNumber": "1234567890",
			"terms":       true,
			"secrets":     "yes",
			"file":        "keys.txt",
			"extra":       []string{"ignored"},
		})
		require.NoError(t, err)

		assert.Equal(t, "John", m.Value(field.FirstName))
		assert.Equal(t, "31", m.Value(field.Age))
		assert.Equal(t, "15", m.Value(field.DOBDay))
		assert.Equal(t, "6", m.Value(field.DOBMonth))
		assert.Equal(t, "1993", m.Value(field.DOBYear))
		assert.True(t, m.Checked(field.Terms))
		assert.True(t, m.Checked(field.Secrets))
		assert.Equal(t, "keys.txt", m.Value(field.File))
	})

	t.Run("nil values are skipped", func(t *testing.T) {
		t.Parallel()
		m, err := source.FromMap(map[string]any{"email": nil})
		require.NoError(t, err)
		assert.Equal(t, "", m.Value(field.Email))
	})

	t.Run("rejects nested values on known fields", func(t *testing.T) {
		t.Parallel()
		_, err := source.FromMap(map[string]any{"email": map[string]any{"a": 1}})
		require.Error(t, err)
		assert.ErrorIs(t, err, source.ErrInvalidValue)
	})
}
