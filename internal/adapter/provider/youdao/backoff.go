package youdao

import (
	"math/rand/v2"
	"time"
)

// Backoff computes retry delays: min(Base·2ⁿ, Max) plus a uniform random
// jitter in [0, MaxJitter).
type Backoff struct {
	Base      time.Duration
	Max       time.Duration
	MaxJitter time.Duration

	// jitter returns a value in [0, n). Nil means math/rand/v2.
	jitter func(n int64) int64
}

// Exponential returns the delay before retry n (0-indexed) without jitter.
func (b Backoff) Exponential(retry int) time.Duration {
	d := b.Base
	for i := 0; i < retry && d < b.Max; i++ {
		d *= 2
	}
	if d > b.Max {
		d = b.Max
	}
	return d
}

// Delay returns the delay before retry n (0-indexed) including jitter.
func (b Backoff) Delay(retry int) time.Duration {
	d := b.Exponential(retry)
	if b.MaxJitter <= 0 {
		return d
	}
	j := b.jitter
	if j == nil {
		j = rand.Int64N
	}
	return d + time.Duration(j(int64(b.MaxJitter)))
}
