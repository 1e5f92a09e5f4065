package keyinput

import (
	"os"
	"time"
)

const (
	// DefaultEscapeTimeout bounds how long the terminal layer waits for the
	// rest of a multi-byte escape sequence once it has seen the leading ESC.
	DefaultEscapeTimeout = 40 * time.Millisecond
	// DefaultMacroTimeout bounds how long the user layer waits for the rest
	// of a multi-key macro once it has seen a prefix of one.
	DefaultMacroTimeout = 1000 * time.Millisecond
)

// KeyManager is the engine's public entry point: it reads a borrowed fd,
// holds the terminal escape table and the caller's macro table, and chains a
// terminal InputContext into a user InputContext so a single GetKey call
// resolves both layers.
type KeyManager struct {
	fd       int
	reader   ByteReader
	terminal *InputContext
	user     *InputContext
	userSet  *MapSet
}

// config collects the values an Option may override before NewKeyManager
// builds the two InputContexts. A KeyManager's InputContexts are built once,
// since each closes over its source; options that change what they read
// from must therefore apply before those contexts exist.
type config struct {
	reader       ByteReader
	terminalSet  *MapSet
}

// Option configures a KeyManager at construction time.
type Option interface {
	apply(*config)
}

type optionFunc func(*config)

func (f optionFunc) apply(c *config) { f(c) }

// WithByteReader overrides the ByteReader used to read fd. Tests use this to
// substitute a reader over an os.Pipe or a scripted fake instead of a real
// tty descriptor.
func WithByteReader(r ByteReader) Option {
	return optionFunc(func(c *config) { c.reader = r })
}

// WithTerminalKeyTable overrides the terminal escape MapSet that would
// otherwise be built from termName in NewKeyManager. Tests use this to pin
// down a fixed table independent of whatever TERM the test process runs
// under.
func WithTerminalKeyTable(set *MapSet) Option {
	return optionFunc(func(c *config) { c.terminalSet = set })
}

// NewKeyManager builds a KeyManager reading from fd, with its terminal
// escape table derived from termName (ordinarily os.Getenv("TERM")). The
// user macro table starts empty; call SetUserMapSet to install one.
func NewKeyManager(fd int, termName string, opts ...Option) *KeyManager {
	cfg := config{reader: NewByteReader(), terminalSet: NewTerminalKeyTable(termName)}
	for _, o := range opts {
		o.apply(&cfg)
	}

	m := &KeyManager{
		fd:      fd,
		reader:  cfg.reader,
		userSet: NewMapSet(DefaultCodec),
	}
	m.terminal = newInputContext(newByteSource(m.reader, fd), cfg.terminalSet, DefaultEscapeTimeout)
	m.user = newInputContext(newContextSource(m.terminal), m.userSet, DefaultMacroTimeout)
	return m
}

// SetUserMapSet installs set as the active macro table. Any match in
// progress against the previous table is abandoned without losing the keys
// it had already consumed.
func (m *KeyManager) SetUserMapSet(set *MapSet) {
	m.userSet = set
	m.user.SetMapSet(set)
}

// ClearUserMapSet installs an empty macro table, making GetKey behave as
// plain passthrough of whatever the terminal layer resolves.
func (m *KeyManager) ClearUserMapSet() {
	m.SetUserMapSet(NewMapSet(DefaultCodec))
}

// UserMapSet returns the macro table currently installed.
func (m *KeyManager) UserMapSet() *MapSet {
	return m.userSet
}

// SetEscapeTimeout changes the terminal layer's timeout.
func (m *KeyManager) SetEscapeTimeout(d time.Duration) {
	m.terminal.SetTimeout(d)
}

// SetMacroTimeout changes the user layer's timeout.
func (m *KeyManager) SetMacroTimeout(d time.Duration) {
	m.user.SetTimeout(d)
}

// AddTerminalKeyAlias registers each of aliases (human key notation, in
// which the raw bytes of an escape sequence stand for themselves) as an additional
// sequence that resolves to key in the terminal layer, for terminals whose
// escape sequences the built-in table doesn't already cover.
func (m *KeyManager) AddTerminalKeyAlias(key NamedKey, aliases ...string) error {
	value := DefaultCodec.EncodeKey(Named(key))
	for _, alias := range aliases {
		if _, err := m.terminal.mapSet.Register(alias, value); err != nil {
			return err
		}
	}
	return nil
}

// GetKey resolves and returns the next fully expanded LogicalKey, applying
// the user macro table over the terminal escape table. ok is false if the
// macro timeout elapsed with nothing to report.
func (m *KeyManager) GetKey() (key LogicalKey, ok bool, err error) {
	return m.user.GetKey()
}

// GetKeyBlocking is GetKey with both layers' timeouts temporarily set to
// Forever, so it always returns a key (or an error) and never reports a
// timeout. The original timeouts are restored before it returns, even if
// GetKey errors.
func (m *KeyManager) GetKeyBlocking() (key LogicalKey, err error) {
	escapeTimeout, macroTimeout := m.terminal.timeout, m.user.timeout
	m.SetEscapeTimeout(Forever)
	m.SetMacroTimeout(Forever)
	defer func() {
		m.SetEscapeTimeout(escapeTimeout)
		m.SetMacroTimeout(macroTimeout)
	}()

	key, _, err = m.GetKey()
	return key, err
}

// CanGetKey reports whether GetKey has input to start from without waiting:
// either a key is already queued internally, or fd itself has data ready.
// Input that is only the start of an escape sequence or macro can still
// leave GetKey waiting for the rest.
func (m *KeyManager) CanGetKey() (bool, error) {
	if m.user.Pending() || m.terminal.Pending() {
		return true, nil
	}
	return m.reader.Ready(m.fd, 0)
}

// Close releases resources the KeyManager allocated itself. It never closes
// fd: that descriptor is borrowed from the caller for the KeyManager's
// entire lifetime, per the engine's resource model.
func (m *KeyManager) Close() error {
	return nil
}

// defaultTermName reads $TERM, the conventional source for
// NewKeyManager's termName argument, falling back to "" (degrading to the
// fixed overlay table only) if unset.
func defaultTermName() string {
	return os.Getenv("TERM")
}
