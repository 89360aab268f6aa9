package shuffler

// PadChar fills the grid cells past the end of the text
const PadChar = '|'

// Parameter for the shuffler, the key size is the number of columns of the
// first grid and the number of rows of the second one
type Parameter struct {
	KeySize int
	PadChar rune
}

// GetKeySize returns the size of both permutation keys
func (params Parameter) GetKeySize() int {
	return params.KeySize
}

// GetPadChar returns the grid pad character
func (params Parameter) GetPadChar() rune {
	return params.PadChar
}
