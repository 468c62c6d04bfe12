package conform

import "github.com/sigilpath/conform/pointer"

// Continuation is the object a Lambda block writes its outcome into
// (spec.md §4.7's "conform_with / fail_with continuation"), modeled as a
// builder rather than exception-based control flow: the block returns void
// and the Continuation records the first call made to it.
type Continuation struct {
	called bool
	result ConformResult
}

// ConformWith registers a successful conform with output value v.
//
// Calling ConformWith or FailWith a second time on the same Continuation is
// a programmer error and panics, detected deterministically rather than
// silently honoring only the first call.
func (c *Continuation) ConformWith(v Value) {
	c.record(Pass(v))
}

// FailWith registers a custom failure with message key and template args.
func (c *Continuation) FailWith(key Key, args ...any) {
	c.record(Fail(newError(key, pointer.Root(), args...)))
}

func (c *Continuation) record(res ConformResult) {
	if c.called {
		panic("conform: Lambda continuation called more than once")
	}
	c.called = true
	c.result = res
}

// lambdaDef is Lambda (spec.md §4.7): a user-supplied block given the input
// value and a continuation to report its outcome through.
type lambdaDef struct {
	name  string
	block func(v Value, cc *Continuation)
}

// Lambda builds a custom definition from block. If block calls neither
// ConformWith nor FailWith before returning, Conform fails with
// lambda_failed. A panic raised inside block propagates out of Conform
// unchanged — Lambda installs no recover (spec.md §9, Open Questions).
func Lambda(name string, block func(v Value, cc *Continuation)) Definition {
	if block == nil {
		panic("conform: Lambda: nil block")
	}
	return &lambdaDef{name: name, block: block}
}

func (d *lambdaDef) Name() string { return d.name }

func (d *lambdaDef) Conform(v Value) ConformResult {
	cc := &Continuation{}
	d.block(v, cc)
	if !cc.called {
		return Fail(newError(KeyLambdaFailed, pointer.Root(), d.name))
	}
	return cc.result
}
