package database

import "strings"

// SplitStatements breaks a DDL script into individual statements on
// semicolons. Line comments are skipped, quoted strings are honored, and a
// doubled quote inside a string is treated as the SQL escape rather than a
// terminator. Dollar-quoted bodies are not handled; the embedded schema does
// not use them.
func SplitStatements(script string) []string {
	var statements []string
	var current strings.Builder
	var quote rune

	runes := []rune(script)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case quote != 0:
			current.WriteRune(ch)
			if ch == quote {
				if i+1 < len(runes) && runes[i+1] == quote {
					current.WriteRune(runes[i+1])
					i++
				} else {
					quote = 0
				}
			}
		case ch == '-' && i+1 < len(runes) && runes[i+1] == '-':
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			current.WriteRune('\n')
		case ch == '\'' || ch == '"' || ch == '`':
			quote = ch
			current.WriteRune(ch)
		case ch == ';':
			if stmt := strings.TrimSpace(current.String()); stmt != "" {
				statements = append(statements, stmt)
			}
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		statements = append(statements, stmt)
	}
	return statements
}
