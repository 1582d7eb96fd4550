package avl

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func requireValid(t *testing.T, tr *Tree) {
	t.Helper()
	require.NoError(t, tr.Validate(), "tree:\n%s", tr)
}

func mustSearch(t *testing.T, tr *Tree, value int64) Ref {
	t.Helper()
	r, ok := tr.Search(value)
	require.True(t, ok, "value %d not found", value)
	return r
}
