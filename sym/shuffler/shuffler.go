package shuffler

import (
	"cryptonyan"
	"errors"
	"fmt"
)

var (
	// ErrKeyLengthMismatch is returned when the ciphertext length is not a
	// multiple of the key size.
	ErrKeyLengthMismatch = errors.New("text length is not a multiple of key size")

	// ErrInvalidPermutation is returned when a key is not a permutation of
	// 1..N or both keys differ in size.
	ErrInvalidPermutation = errors.New("invalid permutation key")
)

type Shuffler interface {
	NewEncryptor() Encryptor
	Params() Parameter
}

type shuffler struct {
	params    Parameter
	firstKey  cryptonyan.Permutation
	secondKey cryptonyan.Permutation
}

// NewShuffler return a new instance of the shuffler. firstKey permutes the
// columns of the first grid, secondKey the rows of the second one.
func NewShuffler(firstKey, secondKey cryptonyan.Permutation) (Shuffler, error) {
	if err := ValidatePermutation(firstKey); err != nil {
		return nil, fmt.Errorf("first key: %w", err)
	}
	if err := ValidatePermutation(secondKey); err != nil {
		return nil, fmt.Errorf("second key: %w", err)
	}
	if len(firstKey) != len(secondKey) {
		return nil, fmt.Errorf("%w: first key has %d elements, second key has %d",
			ErrInvalidPermutation, len(firstKey), len(secondKey))
	}

	shu := &shuffler{
		params: Parameter{
			KeySize: len(firstKey),
			PadChar: PadChar,
		},
		firstKey:  append(cryptonyan.Permutation{}, firstKey...),
		secondKey: append(cryptonyan.Permutation{}, secondKey...),
	}
	return shu, nil
}

func (shu *shuffler) NewEncryptor() Encryptor {
	return &encryptor{shu: *shu}
}

func (shu *shuffler) Params() Parameter {
	return shu.params
}

// ValidatePermutation checks that p holds every value of 1..len(p) exactly once
func ValidatePermutation(p cryptonyan.Permutation) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty key", ErrInvalidPermutation)
	}
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 1 || v > len(p) {
			return fmt.Errorf("%w: element %d is %d, out of range [1, %d]",
				ErrInvalidPermutation, i, v, len(p))
		}
		if seen[v-1] {
			return fmt.Errorf("%w: value %d repeated", ErrInvalidPermutation, v)
		}
		seen[v-1] = true
	}
	return nil
}

// textToTable builds a grid of the text runes row by row, the cells past the
// end of the text hold PadChar
func textToTable(text []rune, rowCount, columnCount int) cryptonyan.Grid {
	table := make(cryptonyan.Grid, rowCount)
	count := 0
	for i := range table {
		table[i] = make([]rune, columnCount)
		for j := range table[i] {
			if count < len(text) {
				table[i][j] = text[count]
			} else {
				table[i][j] = PadChar
			}
			count++
		}
	}
	return table
}

// tableToText flattens a grid row by row
func tableToText(table cryptonyan.Grid) []rune {
	result := make([]rune, 0, len(table)*columnsOf(table))
	for _, row := range table {
		result = append(result, row...)
	}
	return result
}

func columnsOf(table cryptonyan.Grid) int {
	if len(table) == 0 {
		return 0
	}
	return len(table[0])
}

// columnShuffle moves column j of the table to column firstKey[j]-1
func (shu *shuffler) columnShuffle(table cryptonyan.Grid) []rune {
	keySize := shu.params.GetKeySize()
	result := make([]rune, len(table)*keySize)
	for i := range table {
		for j := 0; j < keySize; j++ {
			result[i*keySize+shu.firstKey[j]-1] = table[i][j]
		}
	}
	return result
}

// rowShuffle moves row i of the table to row secondKey[i]-1
func (shu *shuffler) rowShuffle(table cryptonyan.Grid) []rune {
	shuffled := make(cryptonyan.Grid, len(table))
	for i := range table {
		shuffled[shu.secondKey[i]-1] = table[i]
	}
	return tableToText(shuffled)
}

// restoreRowShuffledTable inverts rowShuffle, the text has to be a multiple
// of the key size long
func (shu *shuffler) restoreRowShuffledTable(text []rune) cryptonyan.Grid {
	rowCount := shu.params.GetKeySize()
	columnCount := len(text) / rowCount
	table := make(cryptonyan.Grid, rowCount)
	for i := range table {
		start := (shu.secondKey[i] - 1) * columnCount
		table[i] = append([]rune{}, text[start:start+columnCount]...)
	}
	return table
}

// restoreColumnShuffledTable inverts columnShuffle
func (shu *shuffler) restoreColumnShuffledTable(text []rune) cryptonyan.Grid {
	columnCount := shu.params.GetKeySize()
	rowCount := len(text) / columnCount
	table := make(cryptonyan.Grid, rowCount)
	for i := range table {
		table[i] = make([]rune, columnCount)
		for j := range table[i] {
			table[i][j] = text[i*columnCount+shu.firstKey[j]-1]
		}
	}
	return table
}
