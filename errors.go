package fontloader

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures of a Loader. ErrorKind values implement
// error and may be used as targets for errors.Is:
//
//	if errors.Is(err, fontloader.DuplicateFontFamily) { … }
type ErrorKind int

const (
	// ResourceNotFound: the named resource is absent from the resource store.
	ResourceNotFound ErrorKind = iota + 1
	// EmptyFontFile: the resource did not yield any usable font family.
	EmptyFontFile
	// DuplicateFontFamily: a family name collides with one already loaded.
	DuplicateFontFamily
	// FontFamilyNotFound: no family of the requested name has been loaded.
	FontFamilyNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case ResourceNotFound:
		return "resource not found"
	case EmptyFontFile:
		return "empty font file"
	case DuplicateFontFamily:
		return "duplicate font family"
	case FontFamilyNotFound:
		return "font family not found"
	}
	return "unknown font loader error"
}

// Error implements the error interface.
func (k ErrorKind) Error() string {
	return k.String()
}

// FontError is the error type returned by a Loader.
type FontError struct {
	Kind     ErrorKind
	Resource string // resource being loaded, if any
	Family   string // family name involved, if any
	Err      error  // underlying cause, may be nil
}

// Error implements the error interface.
func (e *FontError) Error() string {
	msg := e.Kind.String()
	switch {
	case e.Resource != "" && e.Family != "":
		msg = fmt.Sprintf("%s: family %q from resource %q", msg, e.Family, e.Resource)
	case e.Resource != "":
		msg = fmt.Sprintf("%s: resource %q", msg, e.Resource)
	case e.Family != "":
		msg = fmt.Sprintf("%s: family %q", msg, e.Family)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap makes both the kind and the cause visible to errors.Is and errors.As.
func (e *FontError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the kind of a loader error, or 0 if err does not carry one.
func KindOf(err error) ErrorKind {
	var ferr *FontError
	if errors.As(err, &ferr) {
		return ferr.Kind
	}
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind
	}
	return 0
}
