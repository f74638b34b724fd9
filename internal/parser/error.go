package parser

import (
	"fmt"

	"github.com/jappe-studios/jscr-go/internal/errors"
	"github.com/jappe-studios/jscr-go/internal/lexer"
)

// SyntaxError is raised by expect and by explicit grammar invariant
// checks. It carries the file, position, description, and a derived
// errorCode checksum over the description's bytes.
type SyntaxError struct {
	*errors.CompilerError
	ErrorCode uint16
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (0x%04X) at %s:%d:%d", e.Message, e.ErrorCode, e.File, e.Pos.Line, e.Pos.Column)
}

// checksum is Σ description[i] over unsigned bytes, modulo 2^16; the
// uint16 accumulator wraps for us.
func checksum(description string) uint16 {
	var sum uint16
	for i := 0; i < len(description); i++ {
		sum += uint16(description[i])
	}
	return sum
}

func (p *Parser) errorf(pos lexer.Position, format string, args ...any) error {
	description := fmt.Sprintf(format, args...)
	return &SyntaxError{
		CompilerError: errors.NewCompilerError(pos, description, p.source, p.file),
		ErrorCode:     checksum(description),
	}
}
