package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClampsZeroLimit(t *testing.T) {
	p := PaginationParams{Page: 0, Limit: 0}
	p.Normalize()

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
}

func TestNormalizeKeepsValidParams(t *testing.T) {
	p := PaginationParams{Page: 3, Limit: 25}
	p.Normalize()

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)
}

func TestNewPaginatedResponseAfterNormalize(t *testing.T) {
	p := PaginationParams{Page: 1, Limit: 0}
	p.Normalize()

	resp := NewPaginatedResponse([]string{}, 25, p)

	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.False(t, resp.HasPrevious)
}
