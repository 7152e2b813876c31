// Package typecheck provides pure, stateless predicates that
// classify an arbitrary untyped value into a semantic category:
// string, finite number, plain object, array, empty collection,
// date, map, set, function, promise-like value, and so on.
//
// Every predicate is a total, synchronous mapping from one value
// to a bool. Predicates never panic and never return errors; any
// internal failure during classification is treated as "does not
// match". The single exception is AssertType, which returns an
// *AssertionError when its predicate rejects the value.
//
// Classification uses reflect.Kind tag inspection rather than
// concrete type identity, so named types (e.g. `type ID string`)
// classify the same as their underlying kind. Two nil flavours
// are distinguished: the nil interface is "undefined" (no value
// present), while a non-nil interface holding a typed nil
// pointer, map, slice, channel, or function is "null".
package typecheck
