// Package seq provides lazy, pull-based iterators built on option.Option.
//
// An Iterator yields Some(element) from Next until it is exhausted, then
// None. Adapters such as Map, Filter and Take wrap an upstream iterator and
// pull from it strictly on demand; consumers such as Collect and Fold drain
// it. An adapter owns its upstream exclusively, so iterators must not be
// shared between goroutines or advanced by more than one consumer.
//
//	evens := seq.Collect(seq.Take(seq.Filter(seq.Range(0, 100), isEven), 3))
//
// Iterators interoperate with Go's range-over-func iterators through FromSeq
// and Values. An iterator from FromSeq runs its sequence as a coroutine;
// Close (forwarded by every adapter) stops it early, and Take, TakeWhile and
// Fuse do so on their own once they stop yielding.
package seq
