// Package errors renders a single lex or syntax failure as a
// human-readable diagnostic: a file:line:column header, the offending
// source line (optionally with a few lines of surrounding context), a
// caret under the exact column, and the failure message. JScr never
// accumulates more than one error — the lexer and parser both abandon
// the run at the first failure — so this package only ever has one
// CompilerError to render per run.
package errors

import (
	"fmt"
	"strings"

	"github.com/jappe-studios/jscr-go/internal/lexer"
)

// CompilerError is a single lex or syntax failure with enough context
// (the full source text and the originating file name) to render
// itself with a source-line excerpt and caret.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

func NewCompilerError(pos lexer.Position, message, source, file string) *CompilerError {
	return &CompilerError{Pos: pos, Message: message, Source: source, File: file}
}

func (e *CompilerError) Error() string {
	return e.Format(false)
}

// header renders the "Error in file:line:col" / "Error at line:col" line.
func (e *CompilerError) header() string {
	if e.File != "" {
		return fmt.Sprintf("Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	}
	return fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
}

// colorWrap wraps s in the given ANSI code, or returns it unchanged
// when color is false.
func colorWrap(s, code string, color bool) string {
	if !color {
		return s
	}
	return code + s + "\033[0m"
}

const (
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiRedBol = "\033[1;31m"
)

// Format renders the error as a one-line-of-context diagnostic: the
// header, the single source line the error occurred on, and a caret
// pointing at the column.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder
	sb.WriteString(e.header())

	if sourceLine := e.sourceLine(e.Pos.Line); sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		sb.WriteString(colorWrap("^", ansiRedBol, color))
		sb.WriteString("\n")
	}

	sb.WriteString(colorWrap(e.Message, ansiBold, color))
	return sb.String()
}

// sourceLine returns the 1-indexed line of Source, or "" if Source is
// empty or lineNum is out of range.
func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// sourceContext returns the lines of Source from (lineNum-before) to
// (lineNum+after), clamped to the source's actual line range.
func (e *CompilerError) sourceContext(lineNum, before, after int) []string {
	if e.Source == "" {
		return nil
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return nil
	}
	start := lineNum - before
	if start < 1 {
		start = 1
	}
	end := lineNum + after
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start-1 : end]
}

// FormatWithContext is Format with contextLines of source on either
// side of the error line, each one labeled with its own line number
// and the error's own line picked out in bold.
func (e *CompilerError) FormatWithContext(contextLines int, color bool) string {
	contextLinesList := e.sourceContext(e.Pos.Line, contextLines, contextLines)
	if len(contextLinesList) == 0 {
		return e.Format(color)
	}

	var sb strings.Builder
	sb.WriteString(e.header())

	startLine := e.Pos.Line - contextLines
	if startLine < 1 {
		startLine = 1
	}

	for i, line := range contextLinesList {
		currentLine := startLine + i
		lineNumStr := fmt.Sprintf("%4d | ", currentLine)

		if currentLine == e.Pos.Line {
			sb.WriteString(colorWrap(lineNumStr+line, ansiBold, color))
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
			sb.WriteString(colorWrap("^", ansiRedBol, color))
			sb.WriteString("\n")
		} else {
			sb.WriteString(colorWrap(lineNumStr+line, ansiDim, color))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(colorWrap(e.Message, ansiBold, color))
	return sb.String()
}
