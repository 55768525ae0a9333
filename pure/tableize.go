// Package pure memoizes pure functions by their argument values.
//
// A tableized function is treated like a lazily filled table: the first call
// for an argument tuple computes the value, every later call reads it back.
// This is only sound when the wrapped function is referentially transparent.
package pure

import (
	"fmt"
)

type ComparableOrStringer any
type ComparableOrString any

// TableizeI2O1 memoizes a two-argument pure function in table.
// Recursive functions reach the memo by calling the returned function.
func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	table Table[O1],
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2))
		},
		table,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

func tableKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}

// Keys maps arguments to the key path a Table is addressed with.
func Keys(args ...ComparableOrStringer) []ComparableOrString {
	keys := make([]ComparableOrString, len(args))
	for i, arg := range args {
		keys[i] = tableKey(arg)
	}
	return keys
}

func tableize[O any](
	pureFn func(...ComparableOrStringer) O,
	memo Table[O],
) func(...ComparableOrStringer) O {
	return func(args ...ComparableOrStringer) O {
		keys := Keys(args...)
		v, ok := memo.Load(keys)
		if !ok {
			v = pureFn(args...)
			memo.Store(keys, v)
		}
		return v
	}
}
