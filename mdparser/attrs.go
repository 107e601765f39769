package mdparser

import "strings"

// readAttrBlock reads a brace-delimited attribute block starting at start.
// It returns the raw content between the braces and the index just past the
// closing brace. Quoted values may contain braces and escaped quotes.
func readAttrBlock(line []byte, start int) (string, int, bool) {
	if start < 0 || start >= len(line) || line[start] != '{' {
		return "", 0, false
	}

	var quote byte
	escaped := false
	for idx := start + 1; idx < len(line); idx++ {
		ch := line[idx]
		if quote != 0 {
			if escaped {
				escaped = false
				continue
			}
			if ch == '\\' {
				escaped = true
				continue
			}
			if ch == quote {
				quote = 0
			}
			continue
		}
		if ch == '"' || ch == '\'' {
			quote = ch
			continue
		}
		if ch == '}' {
			return string(line[start+1 : idx]), idx + 1, true
		}
		if ch == '\n' || ch == '\r' {
			return "", 0, false
		}
	}

	return "", 0, false
}

// parseAttributes parses the inside of an attribute block into a string map.
// Shorthand tokens fold into plain attributes: "#x" becomes id="x" and ".y"
// appends to a space-separated class attribute. A bare key maps to "".
func parseAttributes(raw string) map[string]string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	attrs := make(map[string]string, 2)
	for idx := 0; idx < len(raw); {
		for idx < len(raw) && isAttrSpace(raw[idx]) {
			idx++
		}
		if idx >= len(raw) {
			break
		}

		switch raw[idx] {
		case '#':
			idx++
			start := idx
			for idx < len(raw) && !isAttrSpace(raw[idx]) {
				idx++
			}
			if id := raw[start:idx]; id != "" {
				attrs["id"] = id
			}
			continue
		case '.':
			idx++
			start := idx
			for idx < len(raw) && !isAttrSpace(raw[idx]) {
				idx++
			}
			if class := raw[start:idx]; class != "" {
				if existing, ok := attrs["class"]; ok && existing != "" {
					attrs["class"] = existing + " " + class
				} else {
					attrs["class"] = class
				}
			}
			continue
		}

		keyStart := idx
		for idx < len(raw) && !isAttrSpace(raw[idx]) && raw[idx] != '=' {
			idx++
		}
		key := raw[keyStart:idx]
		if key == "" {
			idx++
			continue
		}

		if idx >= len(raw) || raw[idx] != '=' {
			attrs[key] = ""
			continue
		}
		idx++

		if idx >= len(raw) {
			attrs[key] = ""
			break
		}

		if raw[idx] == '"' || raw[idx] == '\'' {
			quote := raw[idx]
			idx++
			var value strings.Builder
			for idx < len(raw) {
				ch := raw[idx]
				if ch == '\\' && idx+1 < len(raw) {
					next := raw[idx+1]
					if next == quote || next == '\\' {
						value.WriteByte(next)
						idx += 2
						continue
					}
				}
				if ch == quote {
					idx++
					break
				}
				value.WriteByte(ch)
				idx++
			}
			attrs[key] = value.String()
			continue
		}

		valueStart := idx
		for idx < len(raw) && !isAttrSpace(raw[idx]) {
			idx++
		}
		attrs[key] = raw[valueStart:idx]
	}

	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

func isAttrSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
