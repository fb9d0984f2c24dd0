package raw

import "errors"

// ErrInvalidStream reports that a salted stream does not begin with the
// expected magic prefix. A stream too short to hold the prefix or the
// salt is reported as ErrStreamTooShort instead.
var ErrInvalidStream = errors.New("raw: invalid salted stream")

// ErrStreamTooShort reports that an input ended before a required field
// (the magic prefix or the salt) could be read in full.
var ErrStreamTooShort = errors.New("raw: truncated salted stream")
