// Package softassert implements scoped soft assertion blocks.
//
// Every check inside a block is evaluated even if an earlier one fails. When the block exits,
// all failures are reported together as a single AggregateError, and the test is terminated.
// A block in which every check passed reports nothing.
package softassert
