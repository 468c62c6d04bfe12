package conform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigilpath/conform"
	"github.com/sigilpath/conform/value"
)

// TestS1TypeString is spec.md §8 scenario S1.
func TestS1TypeString(t *testing.T) {
	d := conform.Type(conform.StringType)

	res := d.Conform(value.Text("hi"))
	require.True(t, res.Passed())
	assert.Equal(t, value.Text("hi"), res.Value())

	res = d.Conform(value.Int(3))
	require.False(t, res.Passed())
	errs := res.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "", errs[0].Path().String())
	assert.Equal(t, conform.KeyTypeError, errs[0].Key())
	assert.Equal(t, []any{"String", "Integer"}, errs[0].Args())
}

// TestS2KeysWithTimeField is spec.md §8 scenario S2.
func TestS2KeysWithTimeField(t *testing.T) {
	d := conform.NewKeys().
		Required(value.Txt("name"), conform.Type(conform.StringType)).
		Required(value.Txt("time"), conform.Type(conform.TimeType)).
		MustBuild()

	now := timeNow()
	input := value.FromMap(value.NewMap().
		Set(value.Txt("name"), value.Text("test")).
		Set(value.Txt("time"), value.Time(now)))

	res := d.Conform(input)
	require.True(t, res.Passed())

	bad := value.FromMap(value.NewMap().
		Set(value.Txt("name"), value.Text("test")).
		Set(value.Txt("time"), value.Text("2020-01-01")))

	res = d.Conform(bad)
	require.False(t, res.Passed())
	errs := res.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "/time", errs[0].Path().String())
	assert.Equal(t, conform.KeyTypeError, errs[0].Key())
}

// TestS3EachIntegers is spec.md §8 scenario S3.
func TestS3EachIntegers(t *testing.T) {
	d := conform.MustEach(conform.Type(conform.IntegerType))

	res := d.Conform(value.Seq(value.Int(1), value.Int(2), value.Text("3"), value.Int(4)))
	require.False(t, res.Passed())
	errs := res.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "/2", errs[0].Path().String())
	assert.Equal(t, conform.KeyTypeError, errs[0].Key())

	res = d.Conform(value.Seq(value.Int(1), value.Int(2), value.Int(3)))
	require.True(t, res.Passed())
	seq, _ := res.Value().Seq()
	require.Len(t, seq, 3)
}

// TestS4AndRange is spec.md §8 scenario S4.
func TestS4AndRange(t *testing.T) {
	d := conform.MustAnd("range", conform.GreaterThan(5), conform.LessThan(10))

	res := d.Conform(value.Int(7))
	require.True(t, res.Passed())
	assert.Equal(t, value.Int(7), res.Value())

	res = d.Conform(value.Int(4))
	require.False(t, res.Passed())
	raw := res.ErrorHash()[""]
	require.Len(t, raw, 1)
	assert.Equal(t, conform.KeyGTFailed, raw[0].Key())
	assert.Equal(t, []any{5.0}, raw[0].Args())

	res = d.Conform(value.Int(11))
	require.False(t, res.Passed())
	raw = res.ErrorHash()[""]
	require.Len(t, raw, 1)
	assert.Equal(t, conform.KeyLTFailed, raw[0].Key())
	assert.Equal(t, []any{10.0}, raw[0].Args())
}

// TestS5LambdaMsToTime is spec.md §8 scenario S5.
func TestS5LambdaMsToTime(t *testing.T) {
	msToTime := conform.Lambda("ms_to_time", func(v value.Value, cc *conform.Continuation) {
		i, ok := v.Int()
		if !ok {
			return
		}
		cc.ConformWith(value.Time(epochMillis(i)))
	})

	d := conform.NewKeys().
		Required(value.Txt("pub"), msToTime).
		MustBuild()

	res := d.Conform(value.FromMap(value.NewMap().Set(value.Txt("pub"), value.Int(1546170180339))))
	require.True(t, res.Passed())
	m, _ := res.Value().Map()
	pub, ok := m.Get(value.Txt("pub"))
	require.True(t, ok)
	assert.Equal(t, value.KindTime, pub.Kind())

	res = d.Conform(value.FromMap(value.NewMap().Set(value.Txt("pub"), value.Text("x"))))
	require.False(t, res.Passed())
	errs := res.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "/pub", errs[0].Path().String())
	assert.Equal(t, conform.KeyLambdaFailed, errs[0].Key())
}

// TestS6KeysExtraKeys is spec.md §8 scenario S6.
func TestS6KeysExtraKeys(t *testing.T) {
	d := conform.NewKeys().
		Required(value.Txt("title"), conform.NonEmpty()).
		MustBuild()

	input := value.FromMap(value.NewMap().
		Set(value.Txt("title"), value.Text("")).
		Set(value.Txt("extra"), value.Int(1)))

	res := d.Conform(input)
	require.False(t, res.Passed())
	errs := res.Errors()
	require.Len(t, errs, 2)

	byPath := map[string]conform.ConformError{}
	for _, e := range errs {
		byPath[e.Path().String()] = e
	}
	assert.Equal(t, conform.KeySizeMin, byPath["/title"].Key())
	assert.Equal(t, conform.KeyUnexpectedKey, byPath["/extra"].Key())

	ignoring := conform.NewKeys().
		Required(value.Txt("title"), conform.NonEmpty()).
		IgnoreExtraKeys().
		MustBuild()

	res = ignoring.Conform(input)
	require.False(t, res.Passed())
	errs = res.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "/title", errs[0].Path().String())
}
