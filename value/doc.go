// Package value is internal-facing engine plumbing exposed publicly so
// callers can build input fixtures (value.Seq, value.NewMap) and inspect
// conform output without reaching for reflection themselves.
package value
