package timedword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesDurationCount(t *testing.T) {
	_, err := New([]string{"a"}, []float64{0, 0, 0})
	assert.ErrorIs(t, err, ErrDurationCountMismatch)

	w, err := New([]string{"a"}, []float64{1.0, 0.5})
	require.NoError(t, err)
	assert.Equal(t, 1, w.Len())
	assert.InDelta(t, 1.5, w.TotalDuration(), 1e-9)
}

func TestConcatFusesJunctionDelay(t *testing.T) {
	a, err := New([]string{"a"}, []float64{1.0, 0.5})
	require.NoError(t, err)
	b, err := New([]string{"b"}, []float64{0.5, 2.0})
	require.NoError(t, err)

	c := a.Concat(b)
	assert.Equal(t, []string{"a", "b"}, c.Events)
	assert.Equal(t, []float64{1.0, 1.0, 2.0}, c.Durations)
}
