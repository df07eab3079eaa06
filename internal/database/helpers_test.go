package database

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func portOf(t *testing.T, port string) int {
	t.Helper()
	n, err := strconv.Atoi(port)
	require.NoError(t, err)
	return n
}
