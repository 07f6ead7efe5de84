// Package oks lifts infallible sequences into sequences of successful
// rop.Result values, so they can be consumed by code that expects fallible
// items. Every source element becomes exactly one success, in source order.
//
//   - Wrap/Adapter: pull-style adapter over a Cursor, clonable when the source is
//   - Slice: a clonable Cursor over a slice
//   - Seq: range-over-func form for iter.Seq sources
//   - FromValues/FromSlice/Chan: channel forms honouring context cancellation
//   - Collect: drain a channel into a slice
package oks
