package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// maxLineSize bounds a single input line. Day 3 memory dumps are long.
const maxLineSize = 1 << 20

// ProcessReader feeds every line of r to s and returns s.Result().
// Line terminators ("\n" or "\r\n") are stripped. The first ProcessLine
// error stops the run and is returned wrapped with its 1-based line number.
// Complexity: O(input size) plus the solver's own cost.
func ProcessReader(r io.Reader, s Solver) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if err := s.ProcessLine(line); err != nil {
			return "", fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return s.Result()
}

// ProcessLines feeds lines to s in order and returns s.Result().
func ProcessLines(lines []string, s Solver) (string, error) {
	for i, line := range lines {
		if err := s.ProcessLine(line); err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return s.Result()
}

// ProcessFile opens path and runs ProcessReader over it.
func ProcessFile(path string, s Solver) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()
	return ProcessReader(f, s)
}

// Timed runs fn and reports its wall-clock duration alongside its result.
func Timed(fn func() (string, error)) (string, time.Duration, error) {
	start := time.Now()
	res, err := fn()
	return res, time.Since(start), err
}
