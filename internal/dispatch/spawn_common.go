package dispatch

import (
	"os"
	"os/exec"

	"github.com/drpriver/drsh/internal/term"
)

// envWithEnviron is the subset of *env.Env spawn needs beyond path
// resolution: a serialized K=V slice for the child's environment.
type envWithEnviron interface {
	environment
	Environ() []string
}

// SpawnAndWait resolves argv[0] on PATH, runs it in the foreground with the
// terminal handed over to it, and waits for it to exit. When reportTime is
// set, the child's user/system CPU time is printed after it exits,
// mirroring the "time" builtin. Mirrors drsh_spawn_process_and_wait.
func SpawnAndWait(t *term.Term, e envWithEnviron, argv []string, reportTime bool, windowsStyle bool) error {
	if len(argv) == 0 {
		return &ErrProgramNotFound{Program: ""}
	}
	prog, err := ResolveProgramPath(e, argv[0], windowsStyle)
	if err != nil {
		t.Printf("Unable to resolve program path for '%s'\r\n", argv[0])
		return err
	}
	cmd := exec.Command(prog, argv[1:]...)
	cmd.Args[0] = argv[0]
	cmd.Stdin = t.In()
	cmd.Stdout = t.Out()
	cmd.Stderr = os.Stderr
	cmd.Env = e.Environ()

	runErr := t.RunForeground(cmd)
	if runErr != nil {
		if _, ok := runErr.(*exec.ExitError); !ok {
			t.Printf("\r%s\r\n", runErr)
			return runErr
		}
	}
	if reportTime {
		reportUsage(t, cmd)
	}
	return nil
}
