// Package mapper converts between wire DTOs and persistence entities. Each
// mapper is a stateless value; conversions never touch the database.
package mapper

import "sync"

// EntityMapper converts a resource between its DTO, patch and entity shapes.
// Patch applies only the non-nil fields of p onto the entity in place.
type EntityMapper[D, P, E any] interface {
	ToEntity(d D) *E
	ToDTO(e *E) D
	Patch(p P, e *E)
}

// MapSlice applies f to every element of in, preserving order. A nil input
// yields an empty, non-nil slice so JSON encodes [] instead of null.
func MapSlice[S, T any](in []S, f func(S) T) []T {
	out := make([]T, 0, len(in))
	for _, s := range in {
		out = append(out, f(s))
	}
	return out
}

// MapSliceParallel is MapSlice with one goroutine per element. Output order
// matches input order regardless of scheduling.
func MapSliceParallel[S, T any](in []S, f func(S) T) []T {
	out := make([]T, len(in))
	var wg sync.WaitGroup
	wg.Add(len(in))
	for i, s := range in {
		go func(i int, s S) {
			defer wg.Done()
			out[i] = f(s)
		}(i, s)
	}
	wg.Wait()
	return out
}
