// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// commandWords splits a command string into program plus arguments using
// shell word rules: whitespace separates words, single and double quotes
// group them, backslashes escape. Nothing is expanded; a $VAR or $(...)
// in the command reaches the child verbatim, as typed in the config.
func commandWords(command string) ([]string, error) {
	parser := syntax.NewParser()

	var words []string
	err := parser.Words(strings.NewReader(command), func(w *syntax.Word) bool {
		var sb strings.Builder
		writeWordParts(&sb, command, w.Parts, false)
		words = append(words, sb.String())
		return true
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// writeWordParts renders word parts literally. Quotes are removed and
// escapes resolved; expansion syntax is copied through from the source
// text untouched.
func writeWordParts(sb *strings.Builder, src string, parts []syntax.WordPart, quoted bool) {
	for _, part := range parts {
		switch p := part.(type) {
		case *syntax.Lit:
			sb.WriteString(unquoteLit(p.Value, quoted))
		case *syntax.SglQuoted:
			sb.WriteString(p.Value)
		case *syntax.DblQuoted:
			writeWordParts(sb, src, p.Parts, true)
		default:
			sb.WriteString(src[part.Pos().Offset():part.End().Offset()])
		}
	}
}

// unquoteLit resolves backslash escapes in a literal segment. Inside
// double quotes a backslash only escapes the characters that are special
// there; elsewhere any backslash escapes the character after it.
func unquoteLit(s string, quoted bool) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			next := s[i+1]
			if !quoted || next == '$' || next == '`' || next == '"' || next == '\\' {
				sb.WriteByte(next)
				i++
				continue
			}
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
