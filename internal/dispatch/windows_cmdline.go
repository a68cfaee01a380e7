package dispatch

import "strings"

// BuildWindowsCommandLine assembles the single command-line string
// CreateProcess expects from argv. argv[0] is always quoted; later
// arguments are quoted only if they contain a space or tab. Embedded
// quotes are not escaped, matching drsh_build_windows_command_line
// exactly (including its lack of quote-escaping, which is a real
// limitation of the original, not a gap in the port).
func BuildWindowsCommandLine(argv []string) string {
	var b strings.Builder
	for i, a := range argv {
		if i == 0 {
			b.WriteByte('"')
			b.WriteString(a)
			b.WriteByte('"')
			continue
		}
		b.WriteByte(' ')
		if strings.ContainsAny(a, " \t") {
			b.WriteByte('"')
			b.WriteString(a)
			b.WriteByte('"')
		} else {
			b.WriteString(a)
		}
	}
	return b.String()
}
