// Package tokenizer splits decoded instruction text into a mnemonic and its
// operands, and feeds the resulting tokens to a stream.
package tokenizer

import (
	"errors"
	"strings"

	"github.com/Cmiroslaf/BEFA-Library/common/observable"

	"github.com/samber/lo"
)

var errEmpty = errors.New("empty instruction")

// Instruction is one decoded instruction, for example
// "movl $0x0, -0x4(%rbp)".
type Instruction struct {
	Prefixes []string
	Mnemonic string
	Operands []string
}

// prefixes that precede the mnemonic in objdump style output
var prefixes = map[string]struct{}{
	"lock":    {},
	"rep":     {},
	"repe":    {},
	"repz":    {},
	"repne":   {},
	"repnz":   {},
	"data16":  {},
	"addr32":  {},
	"notrack": {},
	"bnd":     {},
}

// Parse splits line into prefixes, mnemonic and operands. Commas inside
// parentheses or brackets do not separate operands. A trailing "# comment"
// or "<symbol>" annotation is dropped.
func Parse(line string) (Instruction, error) {
	line = strings.TrimSpace(strings.ReplaceAll(stripComment(line), "\t", " "))
	if line == "" {
		return Instruction{}, errEmpty
	}

	var ins Instruction
	head, rest, _ := strings.Cut(line, " ")
	for {
		if _, ok := prefixes[head]; !ok || rest == "" {
			break
		}
		ins.Prefixes = append(ins.Prefixes, head)
		head, rest, _ = strings.Cut(strings.TrimSpace(rest), " ")
	}
	ins.Mnemonic = head
	ins.Operands = trimArr(splitOperands(rest))
	return ins, nil
}

// Tokens returns the prefixes, the mnemonic and the operands in order.
func (i Instruction) Tokens() []string {
	tokens := make([]string, 0, len(i.Prefixes)+1+len(i.Operands))
	tokens = append(tokens, i.Prefixes...)
	tokens = append(tokens, i.Mnemonic)
	return append(tokens, i.Operands...)
}

func (i Instruction) String() string {
	head := strings.Join(append(append([]string{}, i.Prefixes...), i.Mnemonic), " ")
	if len(i.Operands) == 0 {
		return head
	}
	return head + " " + strings.Join(i.Operands, ", ")
}

// ParseAll parses every non blank line of text.
func ParseAll(text string) ([]Instruction, error) {
	lines := lo.Filter(strings.Split(text, "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(stripComment(line)) != ""
	})
	instructions := make([]Instruction, 0, len(lines))
	for _, line := range lines {
		ins, err := Parse(line)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, ins)
	}
	return instructions, nil
}

// NewGenerator returns a generator yielding the instructions of text one
// by one.
func NewGenerator(text string) (*observable.SliceGenerator[Instruction], error) {
	instructions, err := ParseAll(text)
	if err != nil {
		return nil, err
	}
	return observable.NewSliceGenerator(instructions), nil
}

// Tokens flattens a stream of instructions into a stream of their tokens.
func Tokens(instructions observable.Observable[Instruction]) observable.Observable[string] {
	return observable.Lift(instructions, func(ins Instruction, emit func(string)) {
		lo.ForEach(ins.Tokens(), func(token string, _ int) {
			emit(token)
		})
	})
}

// Mnemonics maps a stream of instructions to their mnemonics.
func Mnemonics(instructions observable.Observable[Instruction]) observable.Observable[string] {
	return observable.Map(instructions, func(ins Instruction) string {
		return ins.Mnemonic
	})
}

// ElementAt maps a stream of instructions to their token at position i.
// Instructions with fewer tokens emit nothing.
func ElementAt(instructions observable.Observable[Instruction], i int) observable.Observable[string] {
	return observable.Lift(instructions, func(ins Instruction, emit func(string)) {
		if i < 0 {
			return
		}
		if token, err := lo.Nth(ins.Tokens(), i); err == nil {
			emit(token)
		}
	})
}

func splitOperands(s string) []string {
	var (
		operands []string
		depth    int
		start    int
	)
	for i, r := range s {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				operands = append(operands, s[start:i])
				start = i + 1
			}
		}
	}
	return append(operands, s[start:])
}

func stripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	if idx := strings.IndexByte(line, '<'); idx >= 0 {
		line = line[:idx]
	}
	return line
}

func trimArr(arr []string) []string {
	return lo.FilterMap(arr, func(e string, _ int) (string, bool) {
		s := strings.TrimSpace(e)
		return s, s != ""
	})
}
