package numfmt

import "errors"

// List of error kinds returned by Format. Validation runs before any
// arithmetic; the first failing check short-circuits the call with one of
// these wrapped errors, leaving no partial side effects.
var (
	// ErrUnknownLocale occurs when Options.Locale is not in the configured
	// cldr.Context.
	ErrUnknownLocale = errors.New("unknown locale")
	// ErrUnknownNumberSystem occurs when the requested (or the locale's
	// default) number system has no digit table in the cldr.Context.
	ErrUnknownNumberSystem = errors.New("unknown number system")
	// ErrUnknownCurrency occurs when Options.Currency is not in the
	// cldr.Context's currency table.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrUnknownFormat occurs when a named style is not defined for the
	// resolved locale.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrPatternCompile wraps a malformed user-supplied pattern string,
	// surfaced from the pattern compiler.
	ErrPatternCompile = errors.New("pattern compile error")
	// ErrInvalidOption occurs when an Options field fails validation.
	ErrInvalidOption = errors.New("invalid option")
)
