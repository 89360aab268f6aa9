package shuffler

import (
	"cryptonyan"
	"fmt"
	"strings"
)

type Encryptor interface {
	Encrypt(text string) string
	Decrypt(text string) (string, error)
}

type encryptor struct {
	shu shuffler
}

// Encrypt text by shuffling the columns then the rows of its grid
func (enc encryptor) Encrypt(text string) string {
	logger := cryptonyan.NewLogger(cryptonyan.DEBUG)
	runes := []rune(text)
	columnCount := enc.shu.params.GetKeySize()
	rowCount := cryptonyan.CeilDiv(len(runes), columnCount)
	logger.PrintFormatted("Grid: %d rows x %d columns", rowCount, columnCount)

	// shuffle columns
	table := textToTable(runes, rowCount, columnCount)
	logger.PrintGrid("first grid", table)
	shuffled := enc.shu.columnShuffle(table)

	// shuffle rows of the transposed shape
	table = textToTable(shuffled, columnCount, rowCount)
	logger.PrintGrid("second grid", table)
	return string(enc.shu.rowShuffle(table))
}

// Decrypt text by restoring the rows then the columns, the pad character is
// trimmed from both ends of the result
func (enc encryptor) Decrypt(text string) (string, error) {
	logger := cryptonyan.NewLogger(cryptonyan.DEBUG)
	runes := []rune(text)
	keySize := enc.shu.params.GetKeySize()
	if len(runes)%keySize != 0 {
		return "", fmt.Errorf("%w: text has %d characters, key size is %d",
			ErrKeyLengthMismatch, len(runes), keySize)
	}

	table := enc.shu.restoreRowShuffledTable(runes)
	restored := tableToText(table)

	table = enc.shu.restoreColumnShuffledTable(restored)
	logger.PrintGrid("restored grid", table)
	result := string(tableToText(table))
	logger.PrintMessage("trimming pad characters")
	return strings.Trim(result, string(enc.shu.params.GetPadChar())), nil
}
