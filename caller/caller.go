package caller

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Info describes the call site that triggered an operation.
type Info struct {
	// Member is the short function name, e.g. "service.(*Users).Load".
	Member string `json:"member"`
	// File is the base name of the source file.
	File string `json:"file"`
	// Line is the source line number.
	Line int `json:"line"`
	// Expression is the stringified argument expression, if the caller provided one.
	Expression string `json:"expression,omitempty"`
}

// Capture returns the call site skip frames above the function calling Capture.
// Capture(0) describes the caller of Capture itself.
func Capture(skip int) Info {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Info{}
	}
	info := Info{File: filepath.Base(file), Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		info.Member = shortName(fn.Name())
	}
	return info
}

// WithExpression returns a copy of i carrying the given argument expression.
func (i Info) WithExpression(expr string) Info {
	i.Expression = expr
	return i
}

// IsZero reports whether no call site was captured.
func (i Info) IsZero() bool {
	return i.Member == "" && i.File == "" && i.Line == 0 && i.Expression == ""
}

// String renders the call site as "member (file:line)".
func (i Info) String() string {
	if i.IsZero() {
		return "<unknown>"
	}
	s := fmt.Sprintf("%s (%s:%d)", i.Member, i.File, i.Line)
	if i.Expression != "" {
		s += " [" + i.Expression + "]"
	}
	return s
}

// shortName strips the import path from a fully-qualified function name.
func shortName(name string) string {
	if idx := strings.LastIndex(name, "/"); idx != -1 {
		return name[idx+1:]
	}
	return name
}
