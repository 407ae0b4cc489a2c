package note

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is wrapped by every grammar failure in this package.
var ErrSyntax = errors.New("invalid notation syntax")

// Parse parses a concrete notation path. Wildcard notes are rejected; use
// ParseGlob for pattern paths.
func Parse(s string) (Path, error) {
	return parse(s, false)
}

// ParseGlob parses a notation path in which any note may be a wildcard
// ("*" or "[*]"). The negation marker is not part of this grammar; package
// glob strips it before calling here.
func ParseGlob(s string) (Path, error) {
	return parse(s, true)
}

// Validate checks s against the concrete path grammar.
func Validate(s string) error {
	_, err := Parse(s)
	return err
}

// IsValid reports whether s is a valid concrete notation path.
func IsValid(s string) bool {
	return Validate(s) == nil
}

func parse(s string, wild bool) (Path, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty path", ErrSyntax)
	}
	var notes Path
	i := 0
	for i < len(s) {
		switch {
		case s[i] == '.':
			if len(notes) == 0 {
				return nil, fmt.Errorf("%w: %q starts with '.'", ErrSyntax, s)
			}
			i++
			if i == len(s) {
				return nil, fmt.Errorf("%w: %q ends with '.'", ErrSyntax, s)
			}
			n, w, err := scanIdent(s, i, wild)
			if err != nil {
				return nil, err
			}
			notes = append(notes, n)
			i += w
		case s[i] == '[':
			n, w, err := scanBracket(s, i, wild)
			if err != nil {
				return nil, err
			}
			notes = append(notes, n)
			i += w
		default:
			if len(notes) != 0 {
				return nil, fmt.Errorf("%w: expected '.' or '[' at %d in %q", ErrSyntax, i, s)
			}
			n, w, err := scanIdent(s, i, wild)
			if err != nil {
				return nil, err
			}
			notes = append(notes, n)
			i += w
		}
	}
	return notes, nil
}

func scanIdent(s string, at int, wild bool) (Note, int, error) {
	if s[at] == '*' {
		if !wild {
			return Note{}, 0, fmt.Errorf("%w: wildcard at %d in %q", ErrSyntax, at, s)
		}
		return Note{Kind: Wildcard}, 1, nil
	}
	if !identStart(s[at]) {
		return Note{}, 0, fmt.Errorf("%w: bad identifier at %d in %q", ErrSyntax, at, s)
	}
	i := at + 1
	for i < len(s) && identPart(s[i]) {
		i++
	}
	return Note{Kind: Identifier, Key: s[at:i]}, i - at, nil
}

func scanBracket(s string, at int, wild bool) (Note, int, error) {
	i := at + 1
	if i == len(s) {
		return Note{}, 0, fmt.Errorf("%w: unterminated '[' in %q", ErrSyntax, s)
	}
	switch {
	case s[i] == '\'' || s[i] == '"':
		key, w, err := scanQuoted(s, i)
		if err != nil {
			return Note{}, 0, err
		}
		j := i + w
		if j == len(s) || s[j] != ']' {
			return Note{}, 0, fmt.Errorf("%w: expected ']' at %d in %q", ErrSyntax, j, s)
		}
		return Note{Kind: QuotedKey, Key: key, Quote: s[i]}, j + 1 - at, nil
	case s[i] == '*':
		if !wild {
			return Note{}, 0, fmt.Errorf("%w: wildcard at %d in %q", ErrSyntax, i, s)
		}
		if i+1 == len(s) || s[i+1] != ']' {
			return Note{}, 0, fmt.Errorf("%w: expected ']' at %d in %q", ErrSyntax, i+1, s)
		}
		return Note{Kind: IndexWildcard}, 3, nil
	default:
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == i {
			return Note{}, 0, fmt.Errorf("%w: expected index or quoted key at %d in %q", ErrSyntax, i, s)
		}
		if j == len(s) || s[j] != ']' {
			return Note{}, 0, fmt.Errorf("%w: expected ']' at %d in %q", ErrSyntax, j, s)
		}
		idx, err := strconv.Atoi(s[i:j])
		if err != nil {
			return Note{}, 0, fmt.Errorf("%w: bad index %q in %q", ErrSyntax, s[i:j], s)
		}
		return Note{Kind: Index, Index: idx}, j + 1 - at, nil
	}
}

// scanQuoted scans a quoted key starting at the opening quote. Backslash
// escapes the quote character and itself; other backslashes stay literal.
func scanQuoted(s string, at int) (string, int, error) {
	q := s[at]
	var res []byte
	i := at + 1
	for i < len(s) {
		c := s[i]
		switch c {
		case '\\':
			if i+1 < len(s) && (s[i+1] == q || s[i+1] == '\\') {
				res = append(res, s[i+1])
				i += 2
				continue
			}
			res = append(res, c)
			i++
		case q:
			return string(res), i + 1 - at, nil
		default:
			res = append(res, c)
			i++
		}
	}
	return "", 0, fmt.Errorf("%w: unterminated quote in %q", ErrSyntax, s)
}

func identStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '$'
}

func identPart(c byte) bool {
	return identStart(c) || c >= '0' && c <= '9'
}
