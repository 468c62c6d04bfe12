package conform_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigilpath/conform"
	"github.com/sigilpath/conform/value"
)

func TestEmptyAndNonEmpty(t *testing.T) {
	require.True(t, conform.Empty().Conform(value.Text("")).Passed())
	require.False(t, conform.Empty().Conform(value.Text("x")).Passed())

	require.True(t, conform.NonEmpty().Conform(value.Text("x")).Passed())
	res := conform.NonEmpty().Conform(value.Text(""))
	require.False(t, res.Passed())
	assert.Equal(t, conform.KeySizeMin, res.Errors()[0].Key())
}

func TestMaxMinSizeOnSequence(t *testing.T) {
	d := conform.MaxSize(2)
	require.True(t, d.Conform(value.Seq(value.Int(1), value.Int(2))).Passed())
	res := d.Conform(value.Seq(value.Int(1), value.Int(2), value.Int(3)))
	require.False(t, res.Passed())
	assert.Equal(t, conform.KeySizeMax, res.Errors()[0].Key())
}

func TestSizeChecksNFCNormalizeBeforeCounting(t *testing.T) {
	// precomposed has a single codepoint \u00e9 ("é"); decomposed spells
	// the same visible character as "e" + combining acute \u0301. Both must
	// measure as length 4 once NFC-normalized.
	precomposed := value.Text("caf\u00e9")
	decomposed := value.Text("cafe\u0301")

	d := conform.MaxSize(4)
	assert.True(t, d.Conform(precomposed).Passed())
	assert.True(t, d.Conform(decomposed).Passed())
}

func TestRegex(t *testing.T) {
	d := conform.Regex(regexp.MustCompile(`^[a-z]+$`))

	require.True(t, d.Conform(value.Text("abc")).Passed())
	res := d.Conform(value.Text("ABC"))
	require.False(t, res.Passed())
	assert.Equal(t, conform.KeyRegexFailed, res.Errors()[0].Key())
}

func TestComparators(t *testing.T) {
	assert.True(t, conform.GreaterThanOrEqual(5).Conform(value.Int(5)).Passed())
	res := conform.GreaterThanOrEqual(5).Conform(value.Int(4))
	require.False(t, res.Passed())
	assert.Equal(t, conform.KeyGTEFailed, res.Errors()[0].Key())

	assert.True(t, conform.LessThanOrEqual(5).Conform(value.Int(5)).Passed())
	res = conform.LessThanOrEqual(5).Conform(value.Int(6))
	require.False(t, res.Passed())
	assert.Equal(t, conform.KeyLTEFailed, res.Errors()[0].Key())
}

func TestComparatorsFailOnNonNumeric(t *testing.T) {
	res := conform.GreaterThan(0).Conform(value.Text("5"))
	require.False(t, res.Passed())
	assert.Equal(t, conform.KeyGTFailed, res.Errors()[0].Key())
}
