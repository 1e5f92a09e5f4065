package keyinput

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

// Forever is the distinguished timeout value meaning "wait with no time
// limit". It exists so blocking is spelled out explicitly rather than
// relying on an unsigned wraparound trick (the source this engine is
// modeled on passed -1 cast to unsigned long for the same purpose).
const Forever time.Duration = -1

// ByteReader is the thin capability the InputContext chain reads from at
// the bottom: read one byte from a descriptor, waiting at most the given
// timeout, or check readiness without consuming anything.
type ByteReader interface {
	// GetChar reads exactly one byte from fd. timedOut is true if no byte
	// arrived within timeout (timeout == 0 means non-blocking, timeout ==
	// Forever means block with no time limit). err is non-nil only for a
	// non-recoverable OS error; interrupted-syscall is retried internally
	// and never observed by the caller.
	GetChar(fd int, timeout time.Duration) (b byte, timedOut bool, err error)

	// Ready reports whether a read on fd would return data within timeout,
	// without consuming anything.
	Ready(fd int, timeout time.Duration) (bool, error)
}

// fdByteReader is the production ByteReader: it polls an arbitrary,
// caller-owned file descriptor with golang.org/x/sys/unix and reads through
// the raw syscall, retrying transparently on EINTR. It never closes fd: the
// descriptor is borrowed, owned by whoever constructed the KeyManager.
type fdByteReader struct{}

// NewByteReader returns the production ByteReader used when no test double
// is supplied.
func NewByteReader() ByteReader {
	return fdByteReader{}
}

func pollTimeoutMillis(timeout time.Duration) int {
	switch {
	case timeout == Forever:
		return -1
	case timeout <= 0:
		return 0
	default:
		ms := timeout.Milliseconds()
		if ms > 1<<31-1 {
			return -1
		}
		return int(ms)
	}
}

func (fdByteReader) Ready(fd int, timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	ms := pollTimeoutMillis(timeout)
	for {
		n, err := unix.Poll(fds, ms)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return false, err
		}
		return n > 0 && fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0, nil
	}
}

func (r fdByteReader) GetChar(fd int, timeout time.Duration) (byte, bool, error) {
	ready, err := r.Ready(fd, timeout)
	if err != nil {
		return 0, false, err
	}
	if !ready {
		return 0, true, nil
	}
	var buf [1]byte
	for {
		n, err := unix.Read(fd, buf[:])
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return 0, false, err
		}
		if n == 0 {
			return 0, false, ErrClosed
		}
		return buf[0], false, nil
	}
}
