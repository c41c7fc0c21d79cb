package output

import "strings"

const indentUnit = "  "

// IsJSON reports whether a Content-Type value selects pretty-printing.
// Only the exact media type matches; parameters such as charset disable it.
func IsJSON(contentType string) bool {
	return contentType == "application/json"
}

// PrettyFormatJSON indents JSON text without parsing it. Malformed input gives
// malformed but deterministic output.
//
// Quotes are toggled without looking at escapes, so an escaped quote inside a
// string flips the quoted state. Colons get a trailing space even inside strings.
func PrettyFormatJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)

	depth := 0
	inQuotes := false
	for _, c := range s {
		switch c {
		case '{', '[':
			b.WriteRune(c)
			if !inQuotes {
				b.WriteByte('\n')
				depth++
				writeIndent(&b, depth)
			}
		case '}', ']':
			if !inQuotes {
				b.WriteByte('\n')
				depth--
				writeIndent(&b, depth)
			}
			b.WriteRune(c)
		case '"':
			b.WriteRune(c)
			inQuotes = !inQuotes
		case ',':
			b.WriteRune(c)
			if !inQuotes {
				b.WriteByte('\n')
				writeIndent(&b, depth)
			}
		case ':':
			b.WriteString(": ")
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(indentUnit)
	}
}
