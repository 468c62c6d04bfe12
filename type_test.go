package conform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigilpath/conform"
	"github.com/sigilpath/conform/value"
)

func TestCustomTypeNominalMatch(t *testing.T) {
	d := conform.Type(conform.CustomType("Money"))

	res := d.Conform(value.Custom("Money", 100))
	require.True(t, res.Passed())

	res = d.Conform(value.Custom("Weight", 100))
	require.False(t, res.Passed())
	assert.Equal(t, conform.KeyTypeError, res.Errors()[0].Key())
}

func TestCoercibleTypePassesAlreadyTypedValueAsIs(t *testing.T) {
	d := conform.MustCoercibleType(conform.IntegerType)
	res := d.Conform(value.Int(7))
	require.True(t, res.Passed())
	assert.Equal(t, value.Int(7), res.Value())
}

func TestCoercibleTypeCoercesStringToInt(t *testing.T) {
	d := conform.MustCoercibleType(conform.IntegerType)
	res := d.Conform(value.Text("42"))
	require.True(t, res.Passed())
	assert.Equal(t, value.Int(42), res.Value())
}

func TestCoercibleTypeFailsUndefinedCoercion(t *testing.T) {
	d := conform.MustCoercibleType(conform.IntegerType)
	res := d.Conform(value.Text("not-a-number"))
	require.False(t, res.Passed())
	assert.Equal(t, conform.KeyCoercionError, res.Errors()[0].Key())
}

func TestCoercibleTypeRejectsNonPrimitiveAtBuildTime(t *testing.T) {
	_, err := conform.CoercibleType(conform.SeqType)
	require.Error(t, err)
	var cfgErr *conform.ConfigError
	assert.ErrorAs(t, err, &cfgErr)

	_, err = conform.CoercibleType(conform.MapType)
	require.Error(t, err)

	_, err = conform.CoercibleType(conform.TimeType)
	require.Error(t, err)
}
