package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{
		0:  1,
		1:  1,
		2:  2,
		3:  4,
		4:  4,
		5:  8,
		8:  8,
		9:  16,
		16: 16,
		17: 32,
	}
	for n, want := range cases {
		assert.Equal(t, want, NextPowerOfTwo(n), "n=%d", n)
	}
}

func TestByesNeeded(t *testing.T) {
	assert.Equal(t, 0, ByesNeeded(8))
	assert.Equal(t, 3, ByesNeeded(5))
	assert.Equal(t, 1, ByesNeeded(7))
	assert.Equal(t, 0, ByesNeeded(2))
}

func TestTotalRounds(t *testing.T) {
	assert.Equal(t, 1, TotalRounds(1))
	assert.Equal(t, 1, TotalRounds(2))
	assert.Equal(t, 2, TotalRounds(3))
	assert.Equal(t, 2, TotalRounds(4))
	assert.Equal(t, 3, TotalRounds(5))
	assert.Equal(t, 3, TotalRounds(8))
	assert.Equal(t, 4, TotalRounds(9))
}
