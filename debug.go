package keyinput

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var dbg = struct {
	sync.Once
	w   io.WriteCloser
	err error
}{}

func initDebug() {
	path := os.Getenv("KEYINPUT_DEBUG")
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		dbg.err = err
		return
	}
	dbg.w = f
}

// debugPrintf writes to the file named by $KEYINPUT_DEBUG, if set, or does
// nothing. It exists for the same reason the teacher's did: a KeyManager
// event loop has no stdout of its own to log to without corrupting the
// terminal it's reading from.
func debugPrintf(format string, args ...interface{}) {
	dbg.Do(initDebug)
	if dbg.w == nil {
		return
	}
	fmt.Fprintf(dbg.w, format, args...)
}
