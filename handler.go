package cryptonyan

import (
	"fmt"
	"strings"
)

// BytesToHex converts the given bytes to hexadecimal values and join them
func BytesToHex(data []byte) string {
	hexValues := make([]string, len(data))
	for i, v := range data {
		hexValues[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(hexValues, " ")
}

// PermutationToString formats a permutation the way the CLI flags expect it
func PermutationToString(p Permutation) string {
	values := make([]string, len(p))
	for i, v := range p {
		values[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(values, ",")
}
