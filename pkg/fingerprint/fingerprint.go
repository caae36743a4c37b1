// Package fingerprint parses molecular fingerprint representations into
// tensors the kernel package can consume.
//
// Supported formats:
//   - bits: one "1011…" string per line (ECFP-style bit vectors)
//   - hex: one hex string per line, each digit expanding to 4 bits
//   - counts: one comma-separated count vector per line (fragment counts)
package fingerprint

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/molkit/bitkernel/pkg/tensor"
)

var (
	// ErrFormat indicates an unrecognized fingerprint format tag.
	ErrFormat = errors.New("unknown fingerprint format")
	// ErrParse indicates malformed fingerprint input.
	ErrParse = errors.New("malformed fingerprint")
)

// Format selects how raw fingerprint text is decoded.
type Format string

const (
	FormatBits   Format = "bits"
	FormatHex    Format = "hex"
	FormatCounts Format = "counts"
)

// Valid reports whether the format tag is recognized.
func (f Format) Valid() bool {
	switch f {
	case FormatBits, FormatHex, FormatCounts:
		return true
	}
	return false
}

// ParseBits decodes a "1011…" bit string into a 0/1 float64 vector.
func ParseBits(s string) ([]float64, error) {
	out := make([]float64, 0, len(s))
	for i, c := range s {
		switch c {
		case '0':
			out = append(out, 0)
		case '1':
			out = append(out, 1)
		default:
			return nil, fmt.Errorf("%w: bit string has %q at position %d", ErrParse, c, i)
		}
	}
	return out, nil
}

// ParseHex decodes a hex string into a 0/1 float64 vector, most
// significant bit of each digit first.
func ParseHex(s string) ([]float64, error) {
	out := make([]float64, 0, len(s)*4)
	for i, c := range s {
		v, err := strconv.ParseUint(string(c), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: hex string has %q at position %d", ErrParse, c, i)
		}
		for b := 3; b >= 0; b-- {
			out = append(out, float64((v>>uint(b))&1))
		}
	}
	return out, nil
}

// ParseCounts decodes a comma-separated count vector.
func ParseCounts(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: count vector field %d: %q", ErrParse, i, f)
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadBatch reads one fingerprint per line from r and returns an [N, D]
// tensor. Blank lines and lines starting with '#' are skipped. Every
// fingerprint must decode to the same width.
func ReadBatch(r io.Reader, format Format) (*tensor.Dense, error) {
	var parse func(string) ([]float64, error)
	switch format {
	case FormatBits:
		parse = ParseBits
	case FormatHex:
		parse = ParseHex
	case FormatCounts:
		parse = ParseCounts
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}

	var rows [][]float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row, err := parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: %w: width %d, want %d", lineNo, ErrParse, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading fingerprints: %w", err)
	}
	return tensor.FromRows(rows)
}
