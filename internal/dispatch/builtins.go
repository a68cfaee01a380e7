package dispatch

import (
	"os"

	"github.com/drpriver/drsh/internal/env"
	"github.com/drpriver/drsh/internal/term"
)

// Builtins holds the command names handled without ever spawning a child
// process. "source" and "time" are not here: "source" needs to recurse
// into line processing (owned by the shell package) and "time" only
// prefixes a spawn, which SpawnAndWait already exposes via its reportTime
// argument.
var Builtins = map[string]bool{
	"cd":    true,
	"echo":  true,
	"exit":  true,
	"pwd":   true,
	"set":   true,
	"debug": true,
}

// RunBuiltin executes the named built-in with argv (argv[0] is the
// command name itself), mirroring the dispatch chain in
// drsh_process_line. debug is the shell's debug flag, passed by pointer
// since "debug" (with no argument) reports it and "debug on"/"debug off"
// mutates it.
func RunBuiltin(t *term.Term, e *env.Env, argv []string, debug *bool) error {
	switch argv[0] {
	case "cd":
		return runCd(e, argv)
	case "echo":
		return runEcho(t, argv)
	case "exit":
		return ErrExit
	case "pwd":
		return runPwd(t, e)
	case "set":
		return runSet(t, e, argv)
	case "debug":
		return runDebug(t, argv, debug)
	}
	return nil
}

func runCd(e *env.Env, argv []string) error {
	if len(argv) != 2 {
		return nil
	}
	target := argv[1]
	if err := os.Chdir(target); err != nil {
		return nil
	}
	return RefreshCWD(e, env.HostFlavor() == env.FlavorWindows)
}

// RefreshCWD re-reads the process's working directory and stores it under
// PWD, matching drsh_refresh_cwd. Exported so shell startup can also call
// it once at init.
func RefreshCWD(e *env.Env, windowsStyle bool) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	if windowsStyle {
		wd = toForwardSlashes(wd)
	}
	return e.SetString("PWD", wd)
}

func toForwardSlashes(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] == '\\' {
			b[i] = '/'
		}
	}
	return string(b)
}

func runEcho(t *term.Term, argv []string) error {
	for _, a := range argv[1:] {
		t.Printf("%s ", a)
	}
	t.WriteString("\r\n")
	return nil
}

func runPwd(t *term.Term, e *env.Env) error {
	if pwd, ok := e.GetString("PWD"); ok {
		t.Printf("%s\r\n", pwd)
	}
	return nil
}

func runSet(t *term.Term, e *env.Env, argv []string) error {
	if len(argv) == 1 {
		windows := e.Flavor() == env.FlavorWindows
		for _, line := range e.Dump() {
			if windows {
				t.Printf("%s (case-insensitive)\r\n", line)
			} else {
				t.Printf("%s\r\n", line)
			}
		}
	}
	if len(argv) != 3 {
		return nil
	}
	key, value := argv[1], argv[2]
	if key == "" {
		return nil
	}
	return e.SetString(key, value)
}

func runDebug(t *term.Term, argv []string, debug *bool) error {
	if len(argv) > 1 {
		switch argv[1] {
		case "on", "true", "1":
			*debug = true
		case "off", "false", "0":
			*debug = false
		}
		return nil
	}
	state := "false"
	if *debug {
		state = "true"
	}
	t.Printf("debug = %s\r\n", state)
	return nil
}
