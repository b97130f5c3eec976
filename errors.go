package styledtext

import "errors"

// ErrEmptyMarkup is returned by helpers that require non-empty input
// text; the low-level Markup function itself stays infallible per
// spec §7 and simply produces an empty Layout instead.
var ErrEmptyMarkup = errors.New("styledtext: markup text must not be empty")
