// Command livekeys opens the controlling tty directly and prints each
// resolved LogicalKey as it arrives, colorized by kind. It exists as a
// minimal, non-pty smoke test of the engine against a real terminal.
package main

import (
	"fmt"
	"os"

	"github.com/mgutz/ansi"
	"github.com/pkg/term"
	"github.com/xyproto/env/v2"

	keyinput "github.com/debugger-ui/keyinput"
)

const ttyPath = "/dev/tty"

func main() {
	tty, err := term.Open(ttyPath, term.RawMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "livekeys: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		tty.Restore()
		tty.Close()
	}()

	termName := env.Str("TERM")
	km := keyinput.NewKeyManager(int(tty.Fd()), termName)

	macros := keyinput.NewMapSet(keyinput.DefaultCodec)
	macros.Register("jk", "<Esc>")
	km.SetUserMapSet(macros)

	fmt.Fprintln(tty, ansi.Color("livekeys: type something. Ctrl-C to quit.", "yellow"))
	for {
		key, ok, err := km.GetKey()
		if err != nil {
			fmt.Fprintln(tty, ansi.Color(err.Error(), "red"))
			return
		}
		if !ok {
			continue
		}
		color := "cyan"
		if key.IsNamed() {
			color = "green"
		}
		fmt.Fprintf(tty, "%s\r\n", ansi.Color(key.String(), color))
		if key == keyinput.Byte(0x03) { // Ctrl-C as the raw-mode tty delivers it
			return
		}
		if key.IsNamed() {
			if r, ok := key.AsNamed().Letter(); ok && r == 'c' {
				return
			}
		}
	}
}
