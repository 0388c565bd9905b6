// Package filter implements the blur behind canvas shadows: a separable
// Gaussian blur over alpha masks.
package filter

import (
	"math"
	"sync"
)

// KernelRadius returns the half-width of the Gaussian kernel for sigma,
// three standard deviations rounded up.
func KernelRadius(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}

// GaussianKernel returns a normalized 1D Gaussian kernel of
// 2*KernelRadius(sigma)+1 taps. A non-positive sigma yields the identity
// kernel.
func GaussianKernel(sigma float64) []float32 {
	half := KernelRadius(sigma)
	if half == 0 {
		return []float32{1}
	}
	k := make([]float32, 2*half+1)
	twoSigmaSq := 2 * sigma * sigma
	var sum float64
	for i := range k {
		x := float64(i - half)
		v := math.Exp(-x * x / twoSigmaSq)
		k[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range k {
		k[i] *= inv
	}
	return k
}

// kernelCache keeps kernels keyed by sigma quantized to 1/100.
type kernelCache struct {
	mu      sync.RWMutex
	kernels map[int][]float32
	limit   int
}

var kernels = &kernelCache{kernels: make(map[int][]float32), limit: 64}

func (c *kernelCache) get(sigma float64) []float32 {
	key := int(math.Round(sigma * 100))

	c.mu.RLock()
	k, ok := c.kernels[key]
	c.mu.RUnlock()
	if ok {
		return k
	}

	k = GaussianKernel(float64(key) / 100)
	c.mu.Lock()
	if len(c.kernels) >= c.limit {
		clear(c.kernels)
	}
	c.kernels[key] = k
	c.mu.Unlock()
	return k
}

// CachedGaussianKernel is GaussianKernel backed by a shared cache.
func CachedGaussianKernel(sigma float64) []float32 {
	return kernels.get(sigma)
}
