package cryptonyan

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

// DEBUG for turning debug logs on/off
const DEBUG = false
const PREFIX = "->> "

// MeMStat turns the memory reports of PrintMemUsage on/off for the loggers
// created by NewLogger
var MeMStat = false

type logger struct {
	debug   bool
	memStat bool
	out     io.Writer
}

func NewLogger(debug bool) Logger {
	return NewWriterLogger(os.Stdout, debug, MeMStat)
}

// NewWriterLogger returns a logger printing to w
func NewWriterLogger(w io.Writer, debug, memStat bool) Logger {
	return &logger{
		debug:   debug,
		memStat: memStat,
		out:     w,
	}
}

type Logger interface {
	PrintMessage(message string)
	PrintFormatted(format string, args ...interface{})
	PrintHeader(header string)
	PrintMemUsage(name string)
	PrintSummarizedBytes(name string, data []byte, numElements int)
	PrintGrid(name string, grid Grid)
}

func (l logger) PrintMessage(message string) {
	if l.debug {
		fmt.Fprintf(l.out, "%s%s\n", PREFIX, message)
	}
}

func (l logger) PrintFormatted(format string, args ...interface{}) {
	if l.debug {
		fmt.Fprint(l.out, PREFIX)
		fmt.Fprintf(l.out, format, args...)
		fmt.Fprintln(l.out)
	}
}

func (l logger) PrintHeader(header string) {
	if l.debug {
		fmt.Fprintf(l.out, "=== ----\t\t\t %s \t\t\t---- ===\n", header)
	}
}

// HandleError checks the error and panics if the error isn't nil
func HandleError(err error) {
	if err != nil {
		fmt.Printf("|-> Error: %s\n", err.Error())
		panic("=== Panic\n ")
	}
}

// PrintMemUsage outputs the current, total and OS memory being used.
// see: https://golang.org/pkg/runtime/#MemStats
func (l logger) PrintMemUsage(name string) {
	if !l.memStat {
		return
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mb := 1e6
	_, err := fmt.Fprintf(l.out, "|-> %-22s\t%10.3f MB\t%10.3f MB\t%10.3f MB\n", name,
		float64(m.Alloc)/mb, float64(m.TotalAlloc)/mb, float64(m.Sys)/mb)
	HandleError(err)
}

// PrintSummarizedBytes prints a summarized hex view of a byte vector
func (l logger) PrintSummarizedBytes(name string, data []byte, numElements int) {
	const summaryLength = 4
	if !l.debug {
		return
	}
	if len(data) == 0 {
		fmt.Fprintf(l.out, "%sVector is empty!\n", PREFIX)
		return
	}
	if numElements > len(data) {
		numElements = len(data)
	}

	fmt.Fprintf(l.out, "[%s]: {", name)
	if numElements > 2*summaryLength {
		for i := 0; i < summaryLength; i++ {
			fmt.Fprintf(l.out, "%02x ", data[i])
		}
		fmt.Fprint(l.out, "... ")
		for i := numElements - summaryLength; i < numElements; i++ {
			fmt.Fprintf(l.out, "%02x ", data[i])
		}
	} else {
		for i := 0; i < numElements; i++ {
			fmt.Fprintf(l.out, "%02x ", data[i])
		}
	}
	fmt.Fprint(l.out, "}\n")
}

// PrintGrid prints a character grid row by row
func (l logger) PrintGrid(name string, grid Grid) {
	if !l.debug {
		return
	}
	if len(grid) == 0 || len(grid[0]) == 0 {
		fmt.Fprintf(l.out, "%sGrid is empty!\n", PREFIX)
		return
	}
	fmt.Fprintf(l.out, "%s:\n", name)
	for i, row := range grid {
		fmt.Fprintf(l.out, "[%d][]: {%s}\n", i, string(row))
	}
}
