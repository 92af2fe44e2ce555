// Package rendering formats profile data into HTML sections, assembles the
// resume document and prints it to PDF.
package rendering

import "fmt"

// TemplateError represents an error executing an HTML template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a PDF generation failure
type RenderError struct {
	Message string
	Path    string
	Cause   error
}

func (e *RenderError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("render error: %s", msg)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
