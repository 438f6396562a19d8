package synth

import (
	"fmt"
	"math/rand"
)

// KeyPool holds the surrogate keys emitted for one dimension table during a
// run. Pools are append-free after creation: the full key range is allocated
// when the dimension's generation starts, so every sampled key is guaranteed
// to appear in the dimension's output file. Pools live only for the duration
// of one run.
type KeyPool struct {
	table string
	max   int64 // keys are the sequence 1..max
}

func newKeyPool(table string, count int64) *KeyPool {
	return &KeyPool{table: table, max: count}
}

// Len reports the number of keys in the pool.
func (p *KeyPool) Len() int64 { return p.max }

// Sample returns a uniformly chosen key from the pool.
func (p *KeyPool) Sample(rng *rand.Rand) int64 {
	return rng.Int63n(p.max) + 1
}

// Clamp forces a derived key (for example a shipped-on date computed as a
// sold-on key plus an offset) back into the pool's range.
func (p *KeyPool) Clamp(key int64) int64 {
	if key < 1 {
		return 1
	}
	if key > p.max {
		return p.max
	}
	return key
}

// pool returns the key pool for a dimension table. A missing or empty pool
// means a fact table was scheduled before its dimension, which the fixed
// table order is supposed to make impossible; it aborts the run.
func (r *run) pool(table string) (*KeyPool, error) {
	p, ok := r.pools[table]
	if !ok {
		return nil, fmt.Errorf("key pool for %s requested before the table was generated", table)
	}
	if p.max == 0 {
		return nil, fmt.Errorf("key pool for %s is empty", table)
	}
	return p, nil
}

// sample draws an existing surrogate key from a dimension's pool.
func (r *run) sample(table string) (int64, error) {
	p, err := r.pool(table)
	if err != nil {
		return 0, err
	}
	return p.Sample(r.rng), nil
}

// sampleNullable draws a key with the given null rate, returning its string
// form or the empty string. Non-null values always come from the pool.
func (r *run) sampleNullable(table string, nullRate float64) (string, error) {
	if r.rng.Float64() < nullRate {
		return "", nil
	}
	k, err := r.sample(table)
	if err != nil {
		return "", err
	}
	return itoa(k), nil
}
