package conform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigilpath/conform"
	"github.com/sigilpath/conform/value"
)

func TestCoerceFloatToIntRequiresWholeNumber(t *testing.T) {
	d := conform.MustCoercibleType(conform.IntegerType)

	res := d.Conform(value.Float(4.0))
	require.True(t, res.Passed())
	assert.Equal(t, value.Int(4), res.Value())

	res = d.Conform(value.Float(4.5))
	require.False(t, res.Passed())
	assert.Equal(t, conform.KeyCoercionError, res.Errors()[0].Key())
}

func TestCoerceIntToFloat(t *testing.T) {
	d := conform.MustCoercibleType(conform.FloatType)
	res := d.Conform(value.Int(4))
	require.True(t, res.Passed())
	assert.Equal(t, value.Float(4.0), res.Value())
}

func TestCoerceToBoolean(t *testing.T) {
	d := conform.MustCoercibleType(conform.BooleanType)

	res := d.Conform(value.Text("true"))
	require.True(t, res.Passed())
	b, _ := res.Value().Bool()
	assert.True(t, b)

	res = d.Conform(value.Int(0))
	require.True(t, res.Passed())
	b, _ = res.Value().Bool()
	assert.False(t, b)

	res = d.Conform(value.Int(2))
	require.False(t, res.Passed())
}

func TestCoerceToText(t *testing.T) {
	d := conform.MustCoercibleType(conform.StringType)
	res := d.Conform(value.Int(42))
	require.True(t, res.Passed())
	s, _ := res.Value().Text()
	assert.Equal(t, "42", s)
}
