// Command demo spawns a child process under a pty and interposes a
// KeyManager between the real terminal and the child: every byte typed is
// resolved to a LogicalKey (collapsing terminal escape sequences and any
// macros given on the command line) and logged to debug.txt; raw bytes and
// Alt chords are then re-encoded and forwarded to the child, other named
// keys are only logged. It exists to exercise the engine end to end
// against a real pty rather than a scripted reader.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"

	keyinput "github.com/debugger-ui/keyinput"
)

// parseMacros parses "lhs=rhs,lhs=rhs" command-line macro arguments into a
// MapSet, in the codec's human notation (so "jk=<Esc>" works).
func parseMacros(set *keyinput.MapSet, spec string) {
	if spec == "" {
		return
	}
	for _, pair := range strings.Split(spec, ",") {
		lhs, rhs, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		if _, err := set.Register(lhs, rhs); err != nil {
			log.Printf("demo: skipping macro %q: %v", pair, err)
		}
	}
}

func main() {
	args := os.Args[1:]
	macroSpec := os.Getenv("DEMO_MACROS")
	if len(args) > 0 && strings.HasPrefix(args[0], "-macros=") {
		macroSpec = strings.TrimPrefix(args[0], "-macros=")
		args = args[1:]
	}
	if len(args) == 0 {
		args = []string{"cat"}
	}

	debug, err := os.Create("debug.txt")
	if err != nil {
		panic(err)
	}
	defer debug.Close()

	c := exec.Command(args[0], args[1:]...)
	ptmx, err := pty.Start(c)
	if err != nil {
		panic(err)
	}
	defer func() { _ = ptmx.Close() }()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	go func() {
		for range ch {
			if err := pty.InheritSize(os.Stdin, ptmx); err != nil {
				log.Printf("demo: error resizing pty: %s", err)
			}
		}
	}()
	ch <- syscall.SIGWINCH
	defer func() { signal.Stop(ch); close(ch) }()

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		panic(err)
	}
	defer func() { _ = term.Restore(int(os.Stdin.Fd()), oldState) }()

	go io.Copy(os.Stdout, ptmx)

	km := keyinput.NewKeyManager(int(os.Stdin.Fd()), os.Getenv("TERM"))
	if macroSpec != "" {
		macros := keyinput.NewMapSet(keyinput.DefaultCodec)
		parseMacros(macros, macroSpec)
		km.SetUserMapSet(macros)
	}

	for {
		key, ok, err := km.GetKey()
		if err != nil {
			fmt.Fprintf(debug, "getkey error: %v\n", err)
			return
		}
		if !ok {
			continue // Timeout: no complete key to report yet.
		}
		fmt.Fprintf(debug, "key: %s\n", key)
		if key.IsByte() {
			if _, err := ptmx.Write([]byte{key.AsByte()}); err != nil {
				return
			}
			continue
		}
		if r, isAlt := key.AsNamed().AltRune(); isAlt {
			ptmx.Write([]byte{0x1b, byte(r)})
		}
		// Other named keys (arrows, function keys) have no single-byte
		// encoding to forward to a plain pty child; this demo only
		// round-trips what cat can usefully echo back.
	}
}
