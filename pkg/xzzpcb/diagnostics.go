package xzzpcb

import "fmt"

// OverrunError reports an attempted read past the end of the buffer
// currently in view. It is always recovered locally (§7) and never
// propagates out of Decode as a Go error.
type OverrunError struct {
	At     int
	Wanted int
}

func (e *OverrunError) Error() string {
	return fmt.Sprintf("xzzpcb: overrun at offset %d: wanted %d more byte(s)", e.At, e.Wanted)
}

// DecryptErrorKind distinguishes the two ways a DES-ECB/PKCS7 decrypt can
// fail, per spec.md §4.3.
type DecryptErrorKind int

const (
	DecryptBadLength DecryptErrorKind = iota
	DecryptBadPadding
)

func (k DecryptErrorKind) String() string {
	switch k {
	case DecryptBadLength:
		return "BadLength"
	case DecryptBadPadding:
		return "BadPadding"
	default:
		return "Unknown"
	}
}

// DecryptError reports a failure to decrypt a DATA block's ciphertext.
type DecryptError struct {
	Kind DecryptErrorKind
}

func (e *DecryptError) Error() string {
	return fmt.Sprintf("xzzpcb: decrypt failure: %s", e.Kind)
}

// DiagnosticKind names the category of a recovered error attached to a
// decode result, per spec.md §7.
type DiagnosticKind string

const (
	DiagOverrun       DiagnosticKind = "overrun"
	DiagUnknownTag    DiagnosticKind = "unknown_tag"
	DiagDecryptFailed DiagnosticKind = "decrypt_failure"
)

// Diagnostic is a single recovered error, attached to a Board rather than
// returned as a Go error. Decode always returns a (possibly partial) Board
// plus a diagnostics list — it never panics and never returns a non-nil
// error of its own.
type Diagnostic struct {
	Kind    DiagnosticKind
	Offset  int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s @0x%x] %s", d.Kind, d.Offset, d.Message)
}

func overrunDiagnostic(err *OverrunError) Diagnostic {
	return Diagnostic{
		Kind:    DiagOverrun,
		Offset:  err.At,
		Message: err.Error(),
	}
}

func unknownTagDiagnostic(offset int, tag byte) Diagnostic {
	return Diagnostic{
		Kind:    DiagUnknownTag,
		Offset:  offset,
		Message: fmt.Sprintf("unknown tag 0x%02x, terminating walk", tag),
	}
}

func decryptFailureDiagnostic(offset int, err *DecryptError) Diagnostic {
	return Diagnostic{
		Kind:    DiagDecryptFailed,
		Offset:  offset,
		Message: err.Error(),
	}
}
