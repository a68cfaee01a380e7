// Package shell orchestrates the pieces built elsewhere in this module --
// atom interning, the environment, the line editor, tokenizing, and
// dispatch -- into the shell's startup, read-eval loop, and shutdown,
// mirroring the original's MAIN.
package shell

import (
	"os"
	"strconv"

	"github.com/drpriver/drsh/internal/atom"
	"github.com/drpriver/drsh/internal/dispatch"
	"github.com/drpriver/drsh/internal/env"
	"github.com/drpriver/drsh/internal/input"
	"github.com/drpriver/drsh/internal/shelltoken"
	"github.com/drpriver/drsh/internal/term"
)

// Shell holds every piece of long-lived state the REPL loop and line
// processing touch: the atom table, environment, terminal, line editor,
// and the debug flag the "debug" builtin toggles.
type Shell struct {
	at     *atom.Table
	env    *env.Env
	term   *term.Term
	editor *input.Editor
	debug  bool

	windowsStyle bool
}

// New builds a Shell wired to in/out, with its environment seeded from
// environ (typically os.Environ()).
func New(in, out *os.File, environ []string) (*Shell, error) {
	t, err := term.Open(in, out)
	if err != nil {
		return nil, err
	}
	at := atom.NewTable()
	flavor := env.HostFlavor()
	e, err := env.New(at, environ, flavor)
	if err != nil {
		return nil, err
	}
	s := &Shell{
		at:           at,
		env:          e,
		term:         t,
		editor:       input.NewEditor(),
		windowsStyle: flavor == env.FlavorWindows,
	}
	return s, nil
}

// Startup performs the one-time initialization MAIN does before either
// sourcing files or entering the REPL loop: refresh cwd and terminal
// size, record SHELL and SHLVL, show the cursor, and source the config
// file if one resolves.
func (s *Shell) Startup() error {
	if err := dispatch.RefreshCWD(s.env, s.windowsStyle); err != nil {
		return err
	}
	cols, rows := s.term.Size()
	_ = s.env.SetString("COLUMNS", strconv.Itoa(cols))
	_ = s.env.SetString("LINES", strconv.Itoa(rows))
	exePath, err := os.Executable()
	if err == nil {
		_ = s.env.SetShellPath(exePath)
	}
	_ = s.env.IncrementSHLVL()
	s.term.WriteString("\033[?25h")
	s.term.Flush()

	configPath, err := s.env.ConfigPath()
	if err == nil {
		_ = s.env.SetString("DRSH_CONFIG", configPath)
		if err := s.SourceFile(configPath); err != nil && err != ErrExit {
			// A missing or unreadable config file is not fatal; the original
			// shell also silently tolerates drsh_source_file failures here.
			_ = err
		}
	}
	return nil
}

// SourceFile reads path and processes each line in turn, returning
// ErrExit immediately if any line runs "exit", matching drsh_source_file.
func (s *Shell) SourceFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	for _, line := range splitLines(data) {
		if err := s.ProcessLine(line); err != nil {
			if err == ErrExit {
				return ErrExit
			}
		}
	}
	return nil
}

// splitLines breaks data on '\0', '\n', or '\r', the same delimiter set
// drsh_rb_to_line uses, discarding the delimiter itself.
func splitLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case 0, '\n', '\r':
			lines = append(lines, data[start:i])
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, data[start:])
	}
	return lines
}

// ProcessLine tokenizes, canonicalizes, and dispatches one line of input,
// mirroring drsh_process_line: a bare CR/LF is ignored, the first word
// selects a builtin or an external program, and "source"/"." and "time"
// get special handling since they need access to the Shell itself.
func (s *Shell) ProcessLine(line []byte) error {
	defer s.term.Flush()
	if len(line) == 1 && (line[0] == '\r' || line[0] == '\n') {
		return nil
	}
	tokens := shelltoken.Tokenize(line)
	if len(tokens) == 0 {
		return nil
	}
	argv := shelltoken.ToArgv(tokens, s.env)
	if len(argv) == 0 || argv[0] == "" {
		return nil
	}

	switch argv[0] {
	case "source", ".":
		if len(argv) > 1 {
			return s.SourceFile(argv[1])
		}
		return nil
	case "time":
		if len(argv) > 1 {
			if err := dispatch.SpawnAndWait(s.term, s.env, argv[1:], true, s.windowsStyle); err != nil {
				s.term.Printf("error\r\n")
			}
		}
		return nil
	}

	if dispatch.Builtins[argv[0]] {
		return dispatch.RunBuiltin(s.term, s.env, argv, &s.debug)
	}

	if err := dispatch.SpawnAndWait(s.term, s.env, argv, false, s.windowsStyle); err != nil {
		s.term.Printf("error\r\n")
	}
	return nil
}

// Shutdown restores the terminal's original mode, the counterpart to
// Startup, called once on the way out of Run.
func (s *Shell) Shutdown() error {
	return s.term.Orig()
}
