package app

import "strings"

// JoinArgs builds a native command line from params. Parameters containing a
// space are wrapped in double quotes; nothing else is escaped, so a parameter
// holding a literal quote does not survive re-parsing.
func JoinArgs(params []string) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte(' ')
		}
		if strings.Contains(p, " ") {
			b.WriteByte('"')
			b.WriteString(p)
			b.WriteByte('"')
		} else {
			b.WriteString(p)
		}
	}
	return b.String()
}

// containsNUL reports whether s cannot be passed as a NUL-terminated string.
func containsNUL(s string) bool {
	return strings.IndexByte(s, 0) >= 0
}
