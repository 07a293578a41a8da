package ordering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCartLine(t *testing.T) *CartLine {
	line, err := NewCartLine(uuid.New(), uuid.New(), "Greek Salad", 2, decimal.NewFromFloat(10.00))
	require.NoError(t, err)
	return line
}

func TestNewCartLine(t *testing.T) {
	t.Run("creates line with computed total", func(t *testing.T) {
		line := createTestCartLine(t)

		assert.Equal(t, "Greek Salad", line.Title)
		assert.Equal(t, 2, line.Quantity)
		assert.True(t, line.UnitPrice.Equal(decimal.NewFromFloat(10.00)))
		assert.True(t, line.LineTotal.Equal(decimal.NewFromFloat(20.00)))
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewCartLine(uuid.New(), uuid.New(), "Greek Salad", 0, decimal.NewFromInt(10))
		assert.Error(t, err)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := NewCartLine(uuid.New(), uuid.New(), "Greek Salad", -1, decimal.NewFromInt(10))
		assert.Error(t, err)
	})

	t.Run("rejects quantity over 100", func(t *testing.T) {
		_, err := NewCartLine(uuid.New(), uuid.New(), "Greek Salad", 101, decimal.NewFromInt(10))
		assert.Error(t, err)
	})

	t.Run("rejects missing customer", func(t *testing.T) {
		_, err := NewCartLine(uuid.Nil, uuid.New(), "Greek Salad", 1, decimal.NewFromInt(10))
		assert.Error(t, err)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := NewCartLine(uuid.New(), uuid.New(), "Greek Salad", 1, decimal.Zero)
		assert.Error(t, err)
	})
}

func TestCartLine_Replace(t *testing.T) {
	t.Run("replaces quantity and refreshes snapshot", func(t *testing.T) {
		line := createTestCartLine(t)

		err := line.Replace(5, decimal.NewFromFloat(11.50))
		require.NoError(t, err)

		assert.Equal(t, 5, line.Quantity)
		assert.True(t, line.UnitPrice.Equal(decimal.NewFromFloat(11.50)))
		assert.True(t, line.LineTotal.Equal(decimal.NewFromFloat(57.50)))
	})

	t.Run("rejects invalid quantity", func(t *testing.T) {
		line := createTestCartLine(t)

		err := line.Replace(0, decimal.NewFromInt(10))
		assert.Error(t, err)
		assert.Equal(t, 2, line.Quantity)
	})
}
