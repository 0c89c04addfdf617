package compiler

import "fmt"

// CompileError reports a failure in one stage of the pipeline. It is a
// trimmed analogue of the teacher's EnhancedTemplateError: a compiler
// has no templates or render stack to report, only a stage name and an
// optional source line.
type CompileError struct {
	Stage   string // "optimize", "layout", or a front-end-supplied stage
	Message string
	Line    int
}

func (e *CompileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d)", e.Stage, e.Message, e.Line)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Message)
}
