package safeconv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustInt64ToUint64(t *testing.T) {
	t.Parallel()

	t.Run("normal_value", func(t *testing.T) {
		t.Parallel()

		got := MustInt64ToUint64(42)
		assert.Equal(t, uint64(42), got)
	})

	t.Run("zero", func(t *testing.T) {
		t.Parallel()

		got := MustInt64ToUint64(0)
		assert.Equal(t, uint64(0), got)
	})

	t.Run("max_int64", func(t *testing.T) {
		t.Parallel()

		got := MustInt64ToUint64(math.MaxInt64)
		assert.Equal(t, uint64(math.MaxInt64), got)
	})

	t.Run("negative_panics", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, "safeconv: negative int64 to uint64 conversion", func() {
			MustInt64ToUint64(-1)
		})
	})
}

func TestClampUint64ToInt64(t *testing.T) {
	t.Parallel()

	t.Run("normal_value", func(t *testing.T) {
		t.Parallel()

		got := ClampUint64ToInt64(42)
		assert.Equal(t, int64(42), got)
	})

	t.Run("max_int64_fits", func(t *testing.T) {
		t.Parallel()

		got := ClampUint64ToInt64(uint64(math.MaxInt64))
		assert.Equal(t, int64(math.MaxInt64), got)
	})

	t.Run("overflow_clamps", func(t *testing.T) {
		t.Parallel()

		got := ClampUint64ToInt64(math.MaxUint64)
		assert.Equal(t, int64(math.MaxInt64), got)
	})
}
