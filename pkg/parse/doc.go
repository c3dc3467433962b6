// Package parse provides the text-to-value conversions used by input
// sessions.
//
// A Parser turns one trimmed line into a value or fails with an error. The
// error is opaque to the session; it is only handed to the session's error
// mapper. Scalar covers every built-in kind (including named types such as
// `type Age uint8`) and Text bridges any encoding.TextUnmarshaler.
package parse
