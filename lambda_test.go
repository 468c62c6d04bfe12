package conform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigilpath/conform"
	"github.com/sigilpath/conform/value"
)

func TestLambdaConformWith(t *testing.T) {
	double := conform.Lambda("double", func(v value.Value, cc *conform.Continuation) {
		i, ok := v.Int()
		if !ok {
			return
		}
		cc.ConformWith(value.Int(i * 2))
	})

	res := double.Conform(value.Int(21))
	require.True(t, res.Passed())
	assert.Equal(t, value.Int(42), res.Value())
}

func TestLambdaFailWith(t *testing.T) {
	mustBePositive := conform.Lambda("positive", func(v value.Value, cc *conform.Continuation) {
		i, ok := v.Int()
		if !ok || i <= 0 {
			cc.FailWith("not_positive", v)
			return
		}
		cc.ConformWith(v)
	})

	res := mustBePositive.Conform(value.Int(-1))
	require.False(t, res.Passed())
	errs := res.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, conform.Key("not_positive"), errs[0].Key())
}

func TestLambdaNoCallFailsWithLambdaFailed(t *testing.T) {
	noop := conform.Lambda("noop", func(value.Value, *conform.Continuation) {})

	res := noop.Conform(value.Int(1))
	require.False(t, res.Passed())
	assert.Equal(t, conform.KeyLambdaFailed, res.Errors()[0].Key())
}

func TestLambdaSecondCallPanics(t *testing.T) {
	twice := conform.Lambda("twice", func(v value.Value, cc *conform.Continuation) {
		cc.ConformWith(v)
		cc.ConformWith(v)
	})

	assert.Panics(t, func() { twice.Conform(value.Int(1)) })
}

func TestLambdaPanicPropagatesUnchanged(t *testing.T) {
	boom := conform.Lambda("boom", func(value.Value, *conform.Continuation) {
		panic("deliberate")
	})

	assert.PanicsWithValue(t, "deliberate", func() { boom.Conform(value.Int(1)) })
}
