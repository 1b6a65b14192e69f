package pond

// appendCapped adds an entity to a transient pool, evicting the oldest
// entry first when the pool sits at its cap. Eviction keeps recent effects
// on screen during input storms instead of freezing the pond.
func appendCapped[T any](pool []T, limit int, entity T) []T {
	if limit > 0 && len(pool) >= limit {
		keep := copy(pool, pool[len(pool)-limit+1:])
		pool = pool[:keep]
	}
	return append(pool, entity)
}

// compact removes entries the keep predicate rejects, preserving order and
// reusing the backing array. Entities never read each other during a tick,
// so removal order cannot disturb survivors.
func compact[T any](pool []T, keep func(*T) bool) []T {
	out := pool[:0]
	for i := range pool {
		if keep(&pool[i]) {
			out = append(out, pool[i])
		}
	}
	return out
}
