package helper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)

	require.Equal(t, 2, p.Page)
	require.Equal(t, 20, p.PerPage)
	require.Equal(t, int64(45), p.Total)
	require.Equal(t, 3, p.TotalPages)
	require.True(t, p.HasNext)
	require.True(t, p.HasPrev)
}

func TestBuildPaginationFromPageEdges(t *testing.T) {
	first := BuildPaginationFromPage(45, 1, 20)
	require.False(t, first.HasPrev)
	require.True(t, first.HasNext)

	last := BuildPaginationFromPage(45, 3, 20)
	require.True(t, last.HasPrev)
	require.False(t, last.HasNext)

	empty := BuildPaginationFromPage(0, 1, 20)
	require.Equal(t, 1, empty.TotalPages)
	require.False(t, empty.HasNext)
	require.False(t, empty.HasPrev)
}

func TestBuildPaginationFromPageDefaultsPerPage(t *testing.T) {
	p := BuildPaginationFromPage(10, 1, 0)
	require.Equal(t, 20, p.PerPage)
}
