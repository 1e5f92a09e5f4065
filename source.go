package keyinput

import "time"

// source is the one-way read capability an InputContext pulls from. It
// replaces what would otherwise be a cyclic reference between the terminal
// and user InputContexts (the user context reads from the terminal context,
// which must not also know about the user context) with a one-method
// interface whose implementations hold a borrow of whatever they read from.
type source interface {
	next(timeout time.Duration) (key LogicalKey, timedOut bool, err error)
}

// byteSource adapts a ByteReader bound to one fd into a source of
// LogicalKey bytes.
type byteSource struct {
	reader ByteReader
	fd     int
}

func newByteSource(reader ByteReader, fd int) source {
	return &byteSource{reader: reader, fd: fd}
}

func (s *byteSource) next(timeout time.Duration) (LogicalKey, bool, error) {
	b, timedOut, err := s.reader.GetChar(s.fd, timeout)
	if err != nil || timedOut {
		return 0, timedOut, err
	}
	return Byte(b), false, nil
}

// contextSource adapts an upstream InputContext into a source for a
// downstream one. Each upstream GetKey call applies the upstream context's
// own timeout, so an escape sequence is still resolved on the escape
// timeout; next keeps asking upstream until it yields a key or the timeout
// it is handed (the downstream context's) has elapsed. This is the one-way
// reference the cyclic terminal/user relationship in the original design is
// replaced with.
type contextSource struct {
	upstream *InputContext
}

func newContextSource(upstream *InputContext) source {
	return &contextSource{upstream: upstream}
}

func (s *contextSource) next(timeout time.Duration) (LogicalKey, bool, error) {
	deadline := time.Now().Add(timeout)
	for {
		key, ok, err := s.upstream.GetKey()
		if err != nil {
			return 0, false, err
		}
		if ok {
			return key, false, nil
		}
		if timeout != Forever && !time.Now().Before(deadline) {
			return 0, true, nil
		}
	}
}
