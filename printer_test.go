package cryptonyan

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerDebugSwitch(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewWriterLogger(&buf, false, false)
	quiet.PrintMessage("hidden")
	quiet.PrintFormatted("hidden %d", 1)
	quiet.PrintHeader("hidden")
	quiet.PrintMemUsage("hidden")
	quiet.PrintSummarizedBytes("hidden", []byte{1}, 1)
	quiet.PrintGrid("hidden", Grid{[]rune("ab")})
	require.Empty(t, buf.String())

	logger := NewWriterLogger(&buf, true, false)
	logger.PrintMessage("hello")
	logger.PrintFormatted("Number of Block: %d", 3)
	require.Equal(t, "->> hello\n->> Number of Block: 3\n", buf.String())
}

func TestPrintMemUsage(t *testing.T) {
	var buf bytes.Buffer
	NewWriterLogger(&buf, false, true).PrintMemUsage("FeistelEncryptionTest")

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "|-> FeistelEncryptionTest"))
	require.Equal(t, 3, strings.Count(out, " MB"))
}

func TestPrintSummarizedBytes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, true, false)

	logger.PrintSummarizedBytes("short", []byte{0, 1, 2}, 3)
	logger.PrintSummarizedBytes("long", []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 10)
	logger.PrintSummarizedBytes("empty", nil, 0)
	require.Equal(t,
		"[short]: {00 01 02 }\n"+
			"[long]: {00 01 02 03 ... 06 07 08 09 }\n"+
			"->> Vector is empty!\n",
		buf.String())
}

func TestPrintGrid(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, true, false)

	logger.PrintGrid("first grid", Grid{[]rune("ABCDE"), []rune("FG|||")})
	logger.PrintGrid("empty", Grid{})
	require.Equal(t,
		"first grid:\n[0][]: {ABCDE}\n[1][]: {FG|||}\n->> Grid is empty!\n",
		buf.String())
}
