// Package caseparser reads beam test cases from flat "key: value" text files.
//
// A line containing "Test Case" starts a new case. Every other non-blank line
// must hold a colon; the text before the first colon is the field name and the
// text after it is reduced to its ASCII digits and dots before being parsed as a
// number. Units are dropped this way, but so is anything else: "8.5e7" reads as
// 8.57 and "5000 mm2" reads as 50002.
package caseparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CaseMarker identifies a line that starts a new test case
const CaseMarker = "Test Case"

// MaxLineSize is the longest input line Parse accepts
const MaxLineSize = 16 << 20

// ErrMalformedLine is wrapped by every ParseError
var ErrMalformedLine = errors.New("malformed input line")

// ParseError reports the offending line of a malformed input
type ParseError struct {
	Line int    // 1-based line number, or spreadsheet row
	Text string // the raw line
	Err  error  // underlying cause
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedLine, e.Err}
}

// Parse reads all test cases from r in file order
func Parse(r io.Reader) ([]FieldMap, error) {
	var cases []FieldMap
	current := FieldMap{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.Contains(line, CaseMarker) {
			if len(current) > 0 {
				cases = append(cases, current)
				current = FieldMap{}
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		key, value, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		current[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if len(current) > 0 {
		cases = append(cases, current)
	}

	return cases, nil
}

// ParseString is Parse over an in-memory document
func ParseString(s string) ([]FieldMap, error) {
	return Parse(strings.NewReader(s))
}

// ReadFile parses the text file at path
func ReadFile(path string) ([]FieldMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Read parses path as a spreadsheet when it has an .xlsx extension and as
// text otherwise
func Read(path string) ([]FieldMap, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path)
	}
	return ReadFile(path)
}

func parseLine(line string) (string, float64, error) {
	key, raw, ok := strings.Cut(strings.TrimSpace(line), ":")
	if !ok {
		return "", 0, errors.New("expected \"key: value\"")
	}

	value, err := ParseValue(raw)
	if err != nil {
		return "", 0, err
	}

	return strings.TrimSpace(key), value, nil
}

// ParseValue keeps only the ASCII digits and dots of raw and parses the rest.
// Exponent markers, signs and unit text are all discarded.
func ParseValue(raw string) (float64, error) {
	var sb strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}

	digits := sb.String()
	if digits == "" {
		return 0, fmt.Errorf("no numeric value in %q", strings.TrimSpace(raw))
	}

	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, fmt.Errorf("could not convert %q to a number", digits)
	}
	return v, nil
}
