// Package scan extracts declared export names and import specifiers from
// JavaScript module text. It is a best-effort lexical scan over a narrow
// syntax subset, not a parser: re-exports, default exports and dynamically
// constructed specifiers are out of scope.
package scan

import (
	"regexp"
)

var (
	// export class Foo / export function foo / export const foo / export let foo / export var foo
	exportPattern = regexp.MustCompile(`export\s+(?:class|function|const|let|var)\s+(\w+)`)
	// from 'specifier' / from "specifier"
	importPattern = regexp.MustCompile(`from\s+['"]([^'"]+)['"]`)
)

// Exports returns the export names declared in text, in declaration order.
func Exports(text string) []string {
	return capture(exportPattern, blankComments(text))
}

// Imports returns the specifier strings of every from-clause in text, in
// source order. Duplicates are preserved so callers can point diagnostics
// at each occurrence.
func Imports(text string) []string {
	return capture(importPattern, blankComments(text))
}

func capture(re *regexp.Regexp, text string) []string {
	matches := re.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// blankComments replaces // and /* */ comment bodies with spaces so that
// declaration-like tokens inside comments never match. String literal bodies
// are blanked too (a quoted "export class X" is data, not a declaration) with
// one exception: a literal immediately following `from` is an import specifier
// and must stay matchable. Template-literal bodies are always blanked since
// they may span lines and embed arbitrary text.
func blankComments(text string) string {
	const (
		stateCode = iota
		stateLineComment
		stateBlockComment
		stateString
	)
	out := []byte(text)
	state := stateCode
	var quote byte
	blankBody := false
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch state {
		case stateCode:
			switch {
			case c == '/' && i+1 < len(out) && out[i+1] == '/':
				state = stateLineComment
				out[i] = ' '
			case c == '/' && i+1 < len(out) && out[i+1] == '*':
				state = stateBlockComment
				out[i] = ' '
			case c == '\'' || c == '"':
				state = stateString
				quote = c
				// Гасим и кавычки, иначе пустая пара всё ещё похожа на спецификатор.
				blankBody = !followsFromKeyword(out, i)
				if blankBody {
					out[i] = ' '
				}
			case c == '`':
				state = stateString
				quote = c
				blankBody = true
				out[i] = ' '
			}
		case stateLineComment:
			if c == '\n' {
				state = stateCode
			} else {
				out[i] = ' '
			}
		case stateBlockComment:
			if c == '*' && i+1 < len(out) && out[i+1] == '/' {
				out[i] = ' '
				out[i+1] = ' '
				i++
				state = stateCode
			} else if c != '\n' {
				out[i] = ' '
			}
		case stateString:
			switch {
			case c == '\\':
				if blankBody {
					out[i] = ' '
					if i+1 < len(out) && out[i+1] != '\n' {
						out[i+1] = ' '
					}
				}
				i++
			case c == quote:
				if blankBody {
					out[i] = ' '
				}
				state = stateCode
			case blankBody && c != '\n':
				out[i] = ' '
			}
		}
	}
	return string(out)
}

// followsFromKeyword reports whether the quote at out[i] is preceded, modulo
// whitespace, by the keyword `from` at a word boundary.
func followsFromKeyword(out []byte, i int) bool {
	j := i - 1
	for j >= 0 && (out[j] == ' ' || out[j] == '\t' || out[j] == '\n' || out[j] == '\r') {
		j--
	}
	if j < 3 || string(out[j-3:j+1]) != "from" {
		return false
	}
	if j == 3 {
		return true
	}
	prev := out[j-4]
	return !(prev == '_' || prev == '$' ||
		'a' <= prev && prev <= 'z' || 'A' <= prev && prev <= 'Z' || '0' <= prev && prev <= '9')
}
