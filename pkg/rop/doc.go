// Package rop holds the Result[T] alias used across the module: a value that
// is either a success carrying T, a failure carrying an error, or a
// cancellation. The errs package builds failed results stamped with call-site
// locations, the oks package lifts plain sequences into successful results.
package rop
