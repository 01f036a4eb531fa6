package helpers

import "strings"

// ExtractJSON pulls the JSON payload out of a free-text model reply. In
// order: the interior of the first fenced code block (``` with an optional
// language tag), else the first balanced {...} or [...] segment, else the
// trimmed text itself. ok reports whether a fence or balanced segment was
// found; when false the caller gets the trimmed input back as-is.
func ExtractJSON(s string) (out string, ok bool) {
	s = strings.TrimSpace(s)

	if inner, found := fencedBlock(s); found {
		return strings.TrimSpace(inner), true
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '{' || s[i] == '[' {
			if seg, found := balancedFrom(s, i); found {
				return seg, true
			}
		}
	}
	return s, false
}

// fencedBlock returns the interior of the first ``` fence, skipping the
// optional language tag on the opening line.
func fencedBlock(s string) (string, bool) {
	const fence = "```"
	start := strings.Index(s, fence)
	if start == -1 {
		return "", false
	}
	rest := s[start+len(fence):]
	nl := strings.IndexByte(rest, '\n')
	if nl == -1 {
		return "", false
	}
	// Anything before the newline is a language tag (e.g. "json"); drop it.
	rest = rest[nl+1:]
	end := strings.Index(rest, fence)
	if end == -1 {
		return "", false
	}
	return rest[:end], true
}

// balancedFrom extracts a balanced object or array starting at i, ignoring
// braces and brackets inside JSON strings.
func balancedFrom(s string, i int) (string, bool) {
	open := s[i]
	if open != '{' && open != '[' {
		return "", false
	}
	var (
		depth    []byte
		inString bool
		escaped  bool
	)
	depth = append(depth, open)
	for j := i + 1; j < len(s); j++ {
		c := s[j]
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
		case '{', '[':
			depth = append(depth, c)
		case '}', ']':
			top := depth[len(depth)-1]
			if (top == '{' && c != '}') || (top == '[' && c != ']') {
				return "", false
			}
			depth = depth[:len(depth)-1]
			if len(depth) == 0 {
				return s[i : j+1], true
			}
		}
	}
	return "", false
}
