package conform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigilpath/conform"
	"github.com/sigilpath/conform/value"
)

func TestEachFailsOnNonSequence(t *testing.T) {
	d := conform.MustEach(conform.Type(conform.IntegerType))

	res := d.Conform(value.Int(3))
	require.False(t, res.Passed())
	errs := res.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, conform.KeyNotASequence, errs[0].Key())
}

func TestEachVisitsEveryElementWithoutShortCircuiting(t *testing.T) {
	d := conform.MustEach(conform.Type(conform.IntegerType))

	input := value.Seq(
		value.Int(1), value.Int(2),
		value.Text("bad-2"), value.Int(4), value.Int(5), value.Text("bad-5"),
	)
	res := d.Conform(input)
	require.False(t, res.Passed())
	errs := res.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "/2", errs[0].Path().String())
	assert.Equal(t, "/5", errs[1].Path().String())
}

func TestEachThreadsCoercionPerElement(t *testing.T) {
	d := conform.MustEach(conform.MustCoercibleType(conform.IntegerType))

	res := d.Conform(value.Seq(value.Text("1"), value.Text("2"), value.Int(3)))
	require.True(t, res.Passed())
	seq, _ := res.Value().Seq()
	require.Len(t, seq, 3)
	for _, v := range seq {
		assert.Equal(t, value.KindInt, v.Kind())
	}
}
