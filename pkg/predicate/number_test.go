package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/guardkit/pkg/predicate"
)

func TestMin(t *testing.T) {
	p := predicate.Min(10)

	assert.True(t, p(10))
	assert.True(t, p(11))
	assert.True(t, p(10.5))
	assert.False(t, p(9))
	assert.False(t, p(-10))

	t.Run("rejects non-numeric values", func(t *testing.T) {
		assert.False(t, p("10"))
		assert.False(t, p(nil))
	})
}

func TestMax(t *testing.T) {
	p := predicate.Max(100)

	assert.True(t, p(100))
	assert.True(t, p(-5))
	assert.False(t, p(101))

	t.Run("rejects non-numeric values", func(t *testing.T) {
		assert.False(t, p("50"))
	})
}

func TestBetween(t *testing.T) {
	p := predicate.Between(0, 100)

	t.Run("accepts values inside the inclusive range", func(t *testing.T) {
		assert.True(t, p(0))
		assert.True(t, p(50))
		assert.True(t, p(100))
	})

	t.Run("rejects values outside the range", func(t *testing.T) {
		assert.False(t, p(-1))
		assert.False(t, p(150))
	})

	t.Run("two constructions are independent", func(t *testing.T) {
		narrow := predicate.Between(0, 10)
		wide := predicate.Between(0, 1000)

		assert.False(t, narrow(500))
		assert.True(t, wide(500))
	})
}

func TestPositive(t *testing.T) {
	p := predicate.Positive()

	assert.True(t, p(1))
	assert.False(t, p(0))
	assert.False(t, p(-1))
}

func TestNonNegative(t *testing.T) {
	p := predicate.NonNegative()

	assert.True(t, p(0))
	assert.True(t, p(1000))
	assert.False(t, p(-2000))
	assert.False(t, p("1000"))
}
