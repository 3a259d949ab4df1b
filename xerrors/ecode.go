package xerrors

import "fmt"

// Ecode is a coded sentinel error. Two Ecode values compare equal under
// errors.Is iff their codes are equal, so a wrapped Ecode can be matched
// against the exported sentinel it was created from.
type Ecode struct {
	code string
	desc string
}

func NewEcode(code, desc string) *Ecode {
	return &Ecode{
		code: code,
		desc: desc,
	}
}

func (e *Ecode) Error() string {
	if e.code == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.desc)
}

func (e *Ecode) Is(target error) bool {
	t, ok := target.(*Ecode)
	return ok && e.code == t.code
}

// Code returns the error code, e.g. "E0101".
func (e *Ecode) Code() string { return e.code }

// Desc returns the human-readable description of the error code.
func (e *Ecode) Desc() string { return e.desc }
