// Package layrtarget defines what a render hands back to its caller.
package layrtarget

import (
	"fmt"
	"strings"
)

// Result is returned by every composer. On failure only Error and Success are set.
type Result struct {
	FileName string `json:"fileName,omitempty"`
	FilePath string `json:"filePath,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`

	// Markup is the diagram source for text diagrams.
	Markup string `json:"markup,omitempty"`
	// Connectors counts drawn connections, relationships and steps.
	Connectors  int          `json:"connectors,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

func Failure(err error) *Result {
	return &Result{
		Error:   err.Error(),
		Success: false,
	}
}

type DiagnosticCode string

const (
	UnresolvedEndpoint     DiagnosticCode = "unresolved-endpoint"
	UnknownEntityKind      DiagnosticCode = "unknown-entity-kind"
	UnknownConnectionKind  DiagnosticCode = "unknown-connection-kind"
	DuplicateEntity        DiagnosticCode = "duplicate-entity"
	SynthesizedEnvironment DiagnosticCode = "synthesized-environment"
	EmptyStep              DiagnosticCode = "empty-step"
)

// Diagnostic records an input item that was skipped or defaulted.
type Diagnostic struct {
	Code    DiagnosticCode `json:"code"`
	Subject string         `json:"subject"`
	Message string         `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Code, d.Subject, d.Message)
}

type Diagnostics []Diagnostic

func (ds *Diagnostics) Addf(code DiagnosticCode, subject, msg string, v ...interface{}) {
	*ds = append(*ds, Diagnostic{
		Code:    code,
		Subject: subject,
		Message: fmt.Sprintf(msg, v...),
	})
}

// Count returns how many diagnostics carry code.
func (ds Diagnostics) Count(code DiagnosticCode) int {
	n := 0
	for _, d := range ds {
		if d.Code == code {
			n++
		}
	}
	return n
}

func (ds Diagnostics) String() string {
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}
