package geo

import (
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelMapKeepsIndexes(t *testing.T) {
	mp := make(MultiPoint[float64], 0, 100)
	for i := 0; i < 100; i++ {
		mp = append(mp, NewPoint(float64(i), float64(i*2), 0))
	}

	out, err := ParallelMap(mp, 8, func(p Point[float64]) (float64, error) {
		return p.X + p.Y, nil
	})
	require.NoError(t, err)
	require.Len(t, out, len(mp))
	for i, v := range out {
		assert.Equal(t, float64(i*3), v)
	}
}

func TestParallelMapFailsWithoutPartialResult(t *testing.T) {
	mp := MultiPoint[int]{NewPoint(1, 1, 1), NewPoint(-1, 0, 0), NewPoint(2, 2, 2)}
	errNegative := errors.New("negative")

	out, err := ParallelMap(mp, 0, func(p Point[int]) (int, error) {
		if p.X < 0 {
			return 0, errNegative
		}
		return p.X, nil
	})
	require.ErrorIs(t, err, errNegative)
	assert.Nil(t, out)
}

func TestParallelEachVisitsEveryPoint(t *testing.T) {
	mp := MultiPoint[int]{NewPoint(3, 0, 0), NewPoint(1, 0, 0), NewPoint(2, 0, 0)}

	var mu sync.Mutex
	var seen []int
	mp.ParallelEach(2, func(i int, p Point[int]) {
		assert.Equal(t, mp[i], p)
		mu.Lock()
		seen = append(seen, p.X)
		mu.Unlock()
	})

	sort.Ints(seen)
	assert.Equal(t, []int{1, 2, 3}, seen)
}
