// Package extract locates a JSON object inside free-form model output.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoObject is returned when the text contains no candidate object.
var ErrNoObject = errors.New("no JSON object found")

// Func returns the substring of text that should be parsed as the JSON object.
type Func func(text string) (string, error)

const (
	NameGreedy   = "greedy"
	NameBalanced = "balanced"
)

// ByName resolves a configured extractor.
func ByName(name string) (Func, error) {
	switch strings.ToLower(name) {
	case "", NameGreedy:
		return Greedy, nil
	case NameBalanced:
		return Balanced, nil
	default:
		return nil, fmt.Errorf("unknown extractor: %s", name)
	}
}

// Greedy returns everything from the first '{' to the last '}'.
// The span is not checked for validity: trailing prose containing a brace
// ends up inside the result and fails later at parse time.
func Greedy(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", ErrNoObject
	}
	end := strings.LastIndexByte(text, '}')
	if end < start {
		return "", ErrNoObject
	}
	return text[start : end+1], nil
}

// Balanced returns the first brace-balanced span that is valid JSON.
// Braces inside string literals are ignored.
func Balanced(text string) (string, error) {
	for offset := 0; offset < len(text); {
		rel := strings.IndexByte(text[offset:], '{')
		if rel < 0 {
			break
		}
		start := offset + rel
		if end, ok := matchBrace(text, start); ok {
			candidate := text[start : end+1]
			if json.Valid([]byte(candidate)) {
				return candidate, nil
			}
		}
		offset = start + 1
	}
	return "", ErrNoObject
}

// matchBrace returns the index of the '}' closing the '{' at start.
func matchBrace(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
