package activity

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeries_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, make(Series, 366).Validate(2024))
	require.NoError(t, make(Series, 365).Validate(2023))

	err := make(Series, 365).Validate(2024)
	require.Error(t, err)
	assert.True(t, IsInvalidSeriesLength(err))
	assert.True(t, IsInvalidSeriesLength(fmt.Errorf("load: %w", err)))
	assert.Contains(t, err.Error(), "want 366")
}

func TestSeries_Total(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, Series{1, 2, -4, 3}.Total())
	assert.Equal(t, 0, Series(nil).Total())
}

func TestSeeded_Deterministic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := Seeded{Seed: 42}

	a, err := p.Series(ctx, 2024)
	require.NoError(t, err)
	b, err := p.Series(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	require.NoError(t, a.Validate(2024))

	c, err := p.Series(ctx, 2023)
	require.NoError(t, err)
	require.NoError(t, c.Validate(2023))

	for _, v := range a {
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, DefaultMax)
	}
}

func TestSeeded_RespectsMax(t *testing.T) {
	t.Parallel()

	s, err := Seeded{Seed: 7, Max: 1}.Series(context.Background(), 2025)
	require.NoError(t, err)
	for _, v := range s {
		assert.Contains(t, []int{0, 1}, v)
	}
}

func TestSeeded_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Seeded{}.Series(ctx, 2024)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProviderFunc(t *testing.T) {
	t.Parallel()

	var p Provider = ProviderFunc(func(ctx context.Context, year int) (Series, error) {
		return Series{year}, nil
	})
	s, err := p.Series(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, Series{1}, s)
}
