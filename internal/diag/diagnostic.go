package diag

// Note attaches secondary context to a diagnostic.
type Note struct {
	File string
	Msg  string
}

// Diagnostic is a single validation finding. File is the repository-relative
// path of the module the finding concerns (empty for project-level findings).
type Diagnostic struct {
	Severity Severity
	Code     Code
	File     string
	Message  string
	Notes    []Note
}

func New(sev Severity, code Code, file, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		File:     file,
		Message:  msg,
		Notes:    nil,
	}
}

func NewError(code Code, file, msg string) Diagnostic {
	return New(SevError, code, file, msg)
}

func NewWarning(code Code, file, msg string) Diagnostic {
	return New(SevWarning, code, file, msg)
}

func (d Diagnostic) WithNote(file, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{File: file, Msg: msg})
	return d
}
