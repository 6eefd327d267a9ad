package gridstore

import "fmt"

// Generate returns a new size×size grid with every cell independently
// filled with probability 1/2.
// Returns ErrInvalidSize if size < 1 or size exceeds the ceiling
// (DefaultMaxSize unless overridden with WithMaxSize).
// Complexity: O(size²) time and memory.
func Generate(size int, opts ...Option) (*Grid, error) {
	return generate(size, newGenerateConfig(opts...))
}

func generate(size int, cfg generateConfig) (*Grid, error) {
	if size < 1 || size > cfg.maxSize {
		return nil, fmt.Errorf("Generate: size=%d (must be in [1,%d]): %w", size, cfg.maxSize, ErrInvalidSize)
	}
	cells := make([][]int, size)
	for r := 0; r < size; r++ {
		row := make([]int, size)
		for c := range row {
			row[c] = cfg.rng.Intn(2)
		}
		cells[r] = row
	}

	return &Grid{size: size, cells: cells}, nil
}
