package cryptonyan

// CeilDiv returns ceil(a/b) for non-negative a and positive b
func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}

// RotateRight returns a copy of the slice cyclically shifted to the right by
// the given offset, i.e. result[(i+offset) % len] = slice[i]
func RotateRight(slice Block, offset int) Block {
	l := len(slice)
	result := make(Block, l)
	copy(result, slice)
	if l == 0 {
		return result
	}

	// Normalize offset to be within the slice's length
	offset %= l
	// a right rotation by offset is a left rotation by l-offset
	left := (l - offset) % l
	Reverse(result[:left])
	Reverse(result[left:])
	Reverse(result)
	return result
}

// Reverse to reverse a slice
func Reverse(slice Block) {
	for i, j := 0, len(slice)-1; i < j; i, j = i+1, j-1 {
		slice[i], slice[j] = slice[j], slice[i]
	}
}

// ResizeSlice returns a copy of the old slice resized to newLen, zero filled
// when it grows
func ResizeSlice(oldSlice Block, newLen int) (newSlice Block) {
	newSlice = make(Block, newLen)
	copy(newSlice, oldSlice)
	return
}
