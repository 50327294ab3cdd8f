package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorResult(t *testing.T) {
	before := time.Now().UTC().Truncate(time.Second)
	res := NewErrorResult("overflow", "product does not fit")
	after := time.Now().UTC()

	assert.Equal(t, "overflow", res.Error)
	assert.Equal(t, "product does not fit", res.Message)

	ts, err := time.Parse(time.RFC3339, res.Timestamp)
	require.NoError(t, err)
	assert.False(t, ts.Before(before))
	assert.False(t, ts.After(after))
	assert.Equal(t, time.UTC, ts.Location())
}
