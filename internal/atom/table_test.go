package atom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drpriver/drsh/internal/atom"
)

func TestAtomizeIsCanonical(t *testing.T) {
	table := atom.NewTable()
	a, err := table.AtomizeString("hello")
	require.NoError(t, err)
	b, err := table.AtomizeString("hello")
	require.NoError(t, err)
	assert.True(t, atom.Equal(a, b))

	c, err := table.AtomizeString("world")
	require.NoError(t, err)
	assert.False(t, atom.Equal(a, c))
}

func TestAtomizeDistinguishesByteForByte(t *testing.T) {
	table := atom.NewTable()
	a, err := table.AtomizeString("abc")
	require.NoError(t, err)
	b, err := table.AtomizeString("abd")
	require.NoError(t, err)
	assert.False(t, atom.Equal(a, b))
}

func TestLowercaseTwin(t *testing.T) {
	table := atom.NewTable()
	mixed, err := table.AtomizeString("HeLLo")
	require.NoError(t, err)
	lower, err := table.AtomizeString("hello")
	require.NoError(t, err)
	assert.True(t, atom.Equal(mixed.Lowercase(), lower))
	assert.True(t, atom.Equal(lower.Lowercase(), lower), "already-lowercase atom twins to itself")
}

func TestGrowthPreservesLookup(t *testing.T) {
	table := atom.NewTable()
	var made []*atom.Atom
	for i := 0; i < 500; i++ {
		s := randomish(i)
		a, err := table.AtomizeString(s)
		require.NoError(t, err)
		made = append(made, a)
	}
	for i, a := range made {
		s := randomish(i)
		again, err := table.AtomizeString(s)
		require.NoError(t, err)
		assert.Truef(t, atom.Equal(a, again), "atom for %q changed identity across growth", s)
	}
}

func TestSpecialsAreDistinct(t *testing.T) {
	table := atom.NewTable()
	assert.True(t, atom.Equal(table.Get(atom.Cd), mustAtomize(t, table, "cd")))
	assert.False(t, atom.Equal(table.Get(atom.Cd), table.Get(atom.Echo)))
	assert.Equal(t, ".", table.Get(atom.Dot).String())
}

func mustAtomize(t *testing.T, table *atom.Table, s string) *atom.Atom {
	t.Helper()
	a, err := table.AtomizeString(s)
	require.NoError(t, err)
	return a
}

func randomish(i int) string {
	// Deterministic pseudo-distinct strings, avoiding math/rand so the test
	// has no hidden time/seed dependency.
	const letters = "abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, 0, 8)
	n := i
	for j := 0; j < 6; j++ {
		b = append(b, letters[n%26])
		n /= 26
	}
	return string(b)
}
