package keyinput

import "errors"

// ErrEmptyKeySequence is returned by MapSet.Register when the human_key
// notation decodes to an empty KeySeq. A Mapping's key_seq must never be
// empty.
var ErrEmptyKeySequence = errors.New("keyinput: mapping key sequence must not be empty")

// ErrClosed is returned by a ByteReader once its underlying descriptor has
// been observed to be at EOF or otherwise unusable.
var ErrClosed = errors.New("keyinput: byte source closed")
