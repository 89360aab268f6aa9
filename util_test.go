package cryptonyan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotateRight(t *testing.T) {
	slice := Block{1, 2, 3, 4}

	require.Equal(t, Block{1, 2, 3, 4}, RotateRight(slice, 0))
	require.Equal(t, Block{4, 1, 2, 3}, RotateRight(slice, 1))
	require.Equal(t, Block{3, 4, 1, 2}, RotateRight(slice, 2))
	require.Equal(t, Block{2, 3, 4, 1}, RotateRight(slice, 3))
	require.Equal(t, Block{4, 1, 2, 3}, RotateRight(slice, 5))
	require.Equal(t, Block{}, RotateRight(Block{}, 3))

	// the input is left untouched
	require.Equal(t, Block{1, 2, 3, 4}, slice)
}

func TestResizeSlice(t *testing.T) {
	backing := Block{1, 2, 3, 4, 5}
	old := backing[:3]

	grown := ResizeSlice(old, 6)
	require.Equal(t, Block{1, 2, 3, 0, 0, 0}, grown)
	require.Equal(t, Block{1, 2, 3, 4, 5}, backing)

	require.Equal(t, Block{1, 2}, ResizeSlice(old, 2))
}

func TestCeilDiv(t *testing.T) {
	require.Equal(t, 0, CeilDiv(0, 16))
	require.Equal(t, 1, CeilDiv(1, 16))
	require.Equal(t, 1, CeilDiv(16, 16))
	require.Equal(t, 2, CeilDiv(17, 16))
}

func TestBytesToHex(t *testing.T) {
	require.Equal(t, "00 0f ff", BytesToHex([]byte{0, 15, 255}))
	require.Equal(t, "4,2,1,5,3", PermutationToString(Permutation{4, 2, 1, 5, 3}))
}
