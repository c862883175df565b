// Package script reads button scripts: text files naming device buttons,
// used to replay or drive a calculator session without a keyboard.
//
//	# enter a subtotal of 20
//	select up*3 select, up*2 select
//	down
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yildizm/tipcalc/internal/calculator"
)

// MaxRepeat bounds the *N suffix of a single token
const MaxRepeat = 1000

// ErrUnknownButton is returned for a token that names no button
var ErrUnknownButton = errors.New("unknown button")

// ParseError reports the script line a token failed on
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var buttonNames = map[string]calculator.Button{
	"up":     calculator.ButtonUp,
	"u":      calculator.ButtonUp,
	"k":      calculator.ButtonUp,
	"down":   calculator.ButtonDown,
	"d":      calculator.ButtonDown,
	"j":      calculator.ButtonDown,
	"select": calculator.ButtonSelect,
	"s":      calculator.ButtonSelect,
	"enter":  calculator.ButtonSelect,
}

// ParseButton resolves a single button name, case-insensitively
func ParseButton(name string) (calculator.Button, error) {
	if b, ok := buttonNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return b, nil
	}
	return calculator.ButtonNone, fmt.Errorf("%w: %s", ErrUnknownButton, name)
}

// Parse reads a whole script
func Parse(r io.Reader) ([]calculator.Button, error) {
	var buttons []calculator.Button

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		parsed, err := ParseLine(scanner.Text(), lineNo)
		if err != nil {
			return nil, err
		}
		buttons = append(buttons, parsed...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return buttons, nil
}

// ParseLine parses one script line. Comments start with '#'; tokens are
// separated by whitespace or commas and may carry a "*N" repeat suffix.
func ParseLine(line string, lineNo int) ([]calculator.Button, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r'
	})

	var buttons []calculator.Button
	for _, token := range fields {
		name, count, err := splitRepeat(token)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Token: token, Err: err}
		}
		b, err := ParseButton(name)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Token: token, Err: ErrUnknownButton}
		}
		for i := 0; i < count; i++ {
			buttons = append(buttons, b)
		}
	}
	return buttons, nil
}

// splitRepeat splits "up*3" into ("up", 3)
func splitRepeat(token string) (string, int, error) {
	name, rep, found := strings.Cut(token, "*")
	if !found {
		return name, 1, nil
	}
	n, err := strconv.Atoi(rep)
	if err != nil || n < 1 {
		return "", 0, fmt.Errorf("invalid repeat count %q", rep)
	}
	if n > MaxRepeat {
		return "", 0, fmt.Errorf("repeat count %d exceeds %d", n, MaxRepeat)
	}
	return name, n, nil
}
