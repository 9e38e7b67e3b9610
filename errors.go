package lingo

import "errors"

// Resolution errors. All errors returned by Resolve, ResolveCount and Mode
// wrap one of these sentinels, match with errors.Is.
var (
	ErrUnknownLocale         = errors.New("unknown locale")
	ErrUnknownKey            = errors.New("unknown message key")
	ErrUnknownMode           = errors.New("unknown chat mode")
	ErrMissingVariable       = errors.New("missing variable")
	ErrInvalidPluralCategory = errors.New("invalid plural category")
)
