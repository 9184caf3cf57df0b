// Package stream holds slice pipeline helpers that samber/lo does not provide
// in the shape the demos need: optional results, prefix slicing, bounded
// generation and collectors keyed by predicate.
package stream

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Builder accumulates elements one at a time and hands them out as a slice.
type Builder[T any] struct {
	items []T
}

func (b *Builder[T]) Add(v T) *Builder[T] {
	b.items = append(b.items, v)
	return b
}

// Build returns the collected elements. The builder may keep being used
// afterwards; later additions do not affect a slice already returned.
func (b *Builder[T]) Build() []T {
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

// Iterate starts at seed and keeps applying next while hasNext holds.
func Iterate[T any](seed T, hasNext func(T) bool, next func(T) T) []T {
	var out []T
	for v := seed; hasNext(v); v = next(v) {
		out = append(out, v)
	}
	return out
}

// Generate produces exactly limit elements starting at seed.
func Generate[T any](seed T, next func(T) T, limit int) []T {
	if limit <= 0 {
		return nil
	}
	out := make([]T, 0, limit)
	v := seed
	for i := 0; i < limit; i++ {
		out = append(out, v)
		v = next(v)
	}
	return out
}

// TakeWhile returns the longest prefix whose elements all satisfy pred.
func TakeWhile[T any](xs []T, pred func(T) bool) []T {
	for i, x := range xs {
		if !pred(x) {
			return xs[:i:i]
		}
	}
	return xs[:len(xs):len(xs)]
}

// DropWhile returns what is left after the longest prefix satisfying pred.
func DropWhile[T any](xs []T, pred func(T) bool) []T {
	return lo.DropWhile(xs, pred)
}

func OfNullable[T any](v *T) []T {
	if v == nil {
		return []T{}
	}
	return []T{*v}
}

func FindFirst[T any](xs []T, pred func(T) bool) mo.Option[T] {
	v, ok := lo.Find(xs, pred)
	if !ok {
		return mo.None[T]()
	}
	return mo.Some(v)
}

// MinBy returns the first smallest element according to cmp.
func MinBy[T any](xs []T, cmp func(a, b T) int) mo.Option[T] {
	if len(xs) == 0 {
		return mo.None[T]()
	}
	return mo.Some(lo.MinBy(xs, func(item, min T) bool { return cmp(item, min) < 0 }))
}

// MaxBy returns the first largest element according to cmp.
func MaxBy[T any](xs []T, cmp func(a, b T) int) mo.Option[T] {
	if len(xs) == 0 {
		return mo.None[T]()
	}
	return mo.Some(lo.MaxBy(xs, func(item, max T) bool { return cmp(item, max) > 0 }))
}

// PartitioningBy splits xs by pred. Both keys are always present.
func PartitioningBy[T any](xs []T, pred func(T) bool) map[bool][]T {
	out := map[bool][]T{true: {}, false: {}}
	for _, x := range xs {
		k := pred(x)
		out[k] = append(out[k], x)
	}
	return out
}

// PartitionReduce folds each side of a partition with reducer. A side with no
// elements maps to None.
func PartitionReduce[T any](xs []T, pred func(T) bool, reducer func(a, b T) T) map[bool]mo.Option[T] {
	out := make(map[bool]mo.Option[T], 2)
	for k, part := range PartitioningBy(xs, pred) {
		if len(part) == 0 {
			out[k] = mo.None[T]()
			continue
		}
		acc := lo.Reduce(part[1:], func(agg T, item T, _ int) T { return reducer(agg, item) }, part[0])
		out[k] = mo.Some(acc)
	}
	return out
}

// GroupingMapping groups xs by key and maps every member with mapper,
// keeping encounter order within each group.
func GroupingMapping[T any, K comparable, V any](xs []T, key func(T) K, mapper func(T) V) map[K][]V {
	out := make(map[K][]V)
	for _, x := range xs {
		k := key(x)
		out[k] = append(out[k], mapper(x))
	}
	return out
}

func Joining(xs []string, sep string) string {
	return strings.Join(xs, sep)
}

func ToSet[T comparable](xs []T) map[T]struct{} {
	out := make(map[T]struct{}, len(xs))
	for _, x := range xs {
		out[x] = struct{}{}
	}
	return out
}

// Average is None for an empty slice.
func Average[T any](xs []T, fn func(T) float64) mo.Option[float64] {
	if len(xs) == 0 {
		return mo.None[float64]()
	}
	values := lo.Map(xs, func(x T, _ int) float64 { return fn(x) })
	return mo.Some(lo.Sum(values) / float64(len(values)))
}
