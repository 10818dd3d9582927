// Package coerce turns loosely formatted strings into numbers.
//
// Parse accepts what a permissive numeric conversion accepts: surrounding
// whitespace, an empty string (zero), 0x/0o/0b integer literals, signed
// Infinity and signed decimal literals with an optional exponent. Anything
// else is a failed rop.Result wrapping ErrNotANumber. ToNumber and Dollars
// collapse that failure to zero.
package coerce
