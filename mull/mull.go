// Package mull solves day 3 ("Mull It Over"): recovering mul(X,Y)
// instructions from corrupted memory.
//
// Only the exact form mul(X,Y) counts, with X and Y of one to three digits
// and no surrounding spaces. Part 2 also honours do() and don't(), which
// enable and disable the instructions that follow them; the switch carries
// over from one input line to the next.
package mull

import (
	"regexp"
	"strconv"
)

// instructionRx matches the three instruction kinds in input order.
var instructionRx = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// Kind classifies a recovered instruction.
type Kind uint8

const (
	Mul Kind = iota
	Do
	Dont
)

// Instruction is one recovered instruction. Left and Right are set for Mul.
type Instruction struct {
	Kind        Kind
	Left, Right int
	// Offset is the byte offset of the instruction in its line.
	Offset int
}

// Scan returns every well-formed instruction in line, in order.
// Complexity: O(len(line)).
func Scan(line string) []Instruction {
	matches := instructionRx.FindAllStringSubmatchIndex(line, -1)
	out := make([]Instruction, 0, len(matches))
	for _, m := range matches {
		text := line[m[0]:m[1]]
		switch text {
		case "do()":
			out = append(out, Instruction{Kind: Do, Offset: m[0]})
		case "don't()":
			out = append(out, Instruction{Kind: Dont, Offset: m[0]})
		default:
			// at most three digits each, Atoi cannot fail
			l, _ := strconv.Atoi(line[m[2]:m[3]])
			r, _ := strconv.Atoi(line[m[4]:m[5]])
			out = append(out, Instruction{Kind: Mul, Left: l, Right: r, Offset: m[0]})
		}
	}
	return out
}

// Solver sums the products of enabled mul instructions.
type Solver struct {
	conditional bool
	disabled    bool
	sum         int
}

// NewSolver returns the part 1 solver: every mul counts.
func NewSolver() *Solver {
	return &Solver{}
}

// NewConditionalSolver returns the part 2 solver: do()/don't() toggle
// whether subsequent mul instructions count.
func NewConditionalSolver() *Solver {
	return &Solver{conditional: true}
}

// ProcessLine scans one line of memory.
func (s *Solver) ProcessLine(line string) error {
	for _, in := range Scan(line) {
		switch in.Kind {
		case Do:
			s.disabled = false
		case Dont:
			s.disabled = s.conditional
		case Mul:
			if !s.disabled {
				s.sum += in.Left * in.Right
			}
		}
	}
	return nil
}

// Result returns the accumulated sum.
func (s *Solver) Result() (string, error) {
	return strconv.Itoa(s.sum), nil
}
