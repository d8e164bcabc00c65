package siew

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestChunk_writeKeepsTablesParallel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var c Chunk
		writes := rapid.SliceOfN(rapid.IntRange(1, 99), 0, 500).Draw(t, "writes")
		for i, line := range writes {
			c.Write(byte(i), line)
			if len(c.code) != len(c.lines) {
				t.Fatalf("code/lines diverged: %d != %d", len(c.code), len(c.lines))
			}
		}
		for i, line := range writes {
			if c.lines[i] != line {
				t.Fatalf("line %d: got %d, want %d", i, c.lines[i], line)
			}
		}
	})
}

func TestChunk_addConstantMonotonic(t *testing.T) {
	var c Chunk
	for i := 0; i < 300; i++ {
		require.Equal(t, i, c.AddConstant(NumberVal(float64(i))),
			"AddConstant must return the previous pool size")
	}

	want := make([]Value, 300)
	for i := range want {
		want[i] = NumberVal(float64(i))
	}
	if diff := cmp.Diff(want, c.constants, cmp.Comparer(valuesEqual)); diff != "" {
		t.Errorf("constants out of order (-want +got):\n%s", diff)
	}
}

func TestChunk_free(t *testing.T) {
	var c Chunk
	c.Write(byte(OpReturn), 1)
	c.AddConstant(NumberVal(1))

	c.Free()
	assert.Zero(t, c.Len())
	assert.Empty(t, c.lines)
	assert.Empty(t, c.constants)
}
