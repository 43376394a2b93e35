package parser

import (
	"bytes"
	"strconv"
)

// The scanner walks payload bytes directly. It only understands the
// small JSON subset venue book payloads actually use: keyed arrays and
// objects of quoted or bare numbers. Bad input fails a scan, it never
// panics.

// valueAfterKey returns the index of the first byte of the value that
// follows `"key":`, or -1.
func valueAfterKey(data []byte, key string) int {
	needle := make([]byte, 0, len(key)+2)
	needle = append(needle, '"')
	needle = append(needle, key...)
	needle = append(needle, '"')
	from := 0
	for {
		i := bytes.Index(data[from:], needle)
		if i < 0 {
			return -1
		}
		i += from
		j := i + len(needle)
		for j < len(data) && (data[j] == ' ' || data[j] == '\t' || data[j] == '\n' || data[j] == '\r') {
			j++
		}
		if j < len(data) && data[j] == ':' {
			j++
			for j < len(data) && (data[j] == ' ' || data[j] == '\t' || data[j] == '\n' || data[j] == '\r') {
				j++
			}
			if j < len(data) {
				return j
			}
			return -1
		}
		// Matched a quoted value, not a key. Keep looking.
		from = i + len(needle)
	}
}

// matchDelim returns the index of the bracket closing data[open], which
// must be '[' or '{'. Nesting of the same delimiter kind is honored;
// returns -1 when unbalanced.
func matchDelim(data []byte, open int) int {
	if open < 0 || open >= len(data) {
		return -1
	}
	var closer byte
	switch data[open] {
	case '[':
		closer = ']'
	case '{':
		closer = '}'
	default:
		return -1
	}
	depth := 1
	for i := open + 1; i < len(data); i++ {
		switch data[i] {
		case data[open]:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// arrayAfterKey bounds the array value of `"key"`, including brackets.
func arrayAfterKey(data []byte, key string) []byte {
	i := valueAfterKey(data, key)
	if i < 0 || data[i] != '[' {
		return nil
	}
	j := matchDelim(data, i)
	if j < 0 {
		return nil
	}
	return data[i : j+1]
}

// objectAfterKey bounds the object value of `"key"`, including braces.
func objectAfterKey(data []byte, key string) []byte {
	i := valueAfterKey(data, key)
	if i < 0 || data[i] != '{' {
		return nil
	}
	j := matchDelim(data, i)
	if j < 0 {
		return nil
	}
	return data[i : j+1]
}

func isNumByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E'
}

// scanNumber reads a bare or quoted number starting at or after i,
// returning the value and the index past it.
func scanNumber(data []byte, i int) (float64, int, bool) {
	for i < len(data) && !isNumByte(data[i]) && data[i] != '"' {
		// Stop at structural closers so a missing number is noticed.
		if data[i] == ']' || data[i] == '}' {
			return 0, i, false
		}
		i++
	}
	if i >= len(data) {
		return 0, i, false
	}
	quoted := data[i] == '"'
	if quoted {
		i++
	}
	start := i
	for i < len(data) && isNumByte(data[i]) {
		i++
	}
	if i == start {
		return 0, i, false
	}
	v, err := strconv.ParseFloat(string(data[start:i]), 64)
	if err != nil {
		return 0, i, false
	}
	if quoted {
		if i >= len(data) || data[i] != '"' {
			return 0, i, false
		}
		i++
	}
	return v, i, true
}

// scanPairs walks a [[price,volume],...] array, quoted or bare numbers,
// and emits each pair in payload order.
func scanPairs(arr []byte, emit func(price, volume float64)) error {
	if len(arr) < 2 || arr[0] != '[' {
		return ErrMalformed
	}
	i := 1
	for i < len(arr) {
		switch arr[i] {
		case '[':
			end := matchDelim(arr, i)
			if end < 0 {
				return ErrMalformed
			}
			price, j, ok := scanNumber(arr[:end], i+1)
			if !ok {
				return ErrMalformed
			}
			volume, _, ok := scanNumber(arr[:end], j)
			if !ok {
				return ErrMalformed
			}
			emit(price, volume)
			i = end + 1
		case ']':
			return nil
		default:
			i++
		}
	}
	return ErrMalformed
}

// scanFlatPairs walks a flat ["price","volume",...] array of alternating
// quoted numbers.
func scanFlatPairs(arr []byte, emit func(price, volume float64)) error {
	if len(arr) < 2 || arr[0] != '[' {
		return ErrMalformed
	}
	i := 1
	for {
		price, j, ok := scanNumber(arr, i)
		if !ok {
			// Ran off the values; an empty tail is a clean finish.
			return nil
		}
		volume, k, ok := scanNumber(arr, j)
		if !ok {
			return ErrMalformed
		}
		emit(price, volume)
		i = k
	}
}

// nestedArray reports whether the array's first element is itself an
// array (pair form) rather than a scalar (flat form).
func nestedArray(arr []byte) bool {
	for i := 1; i < len(arr); i++ {
		switch arr[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
