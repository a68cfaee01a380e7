package atom

// Special identifies one of the atoms reserved at table construction time:
// built-in command names, recognized environment keys, boolean spellings,
// and the "." alias for "source". Reserving these up front means the rest
// of the shell compares atom handles instead of re-atomizing literals.
type Special int

const (
	Cd Special = iota
	Echo
	Exit
	Pwd
	Set
	Source
	Time
	Debug
	Dot // "." alias for Source

	EnvPWD
	EnvHOME
	EnvPATH
	EnvPATHEXT
	EnvCOLUMNS
	EnvLINES
	EnvTERM
	EnvUSER
	EnvSHELL
	EnvSHLVL
	EnvDRSHHISTORY
	EnvDRSHCONFIG

	On
	Off
	True
	False
	One
	Zero

	numSpecial
)

var specialText = [numSpecial]string{
	Cd:     "cd",
	Echo:   "echo",
	Exit:   "exit",
	Pwd:    "pwd",
	Set:    "set",
	Source: "source",
	Time:   "time",
	Debug:  "debug",
	Dot:    ".",

	EnvPWD:         "PWD",
	EnvHOME:        "HOME",
	EnvPATH:        "PATH",
	EnvPATHEXT:     "PATHEXT",
	EnvCOLUMNS:     "COLUMNS",
	EnvLINES:       "LINES",
	EnvTERM:        "TERM",
	EnvUSER:        "USER",
	EnvSHELL:       "SHELL",
	EnvSHLVL:       "SHLVL",
	EnvDRSHHISTORY: "DRSH_HISTORY",
	EnvDRSHCONFIG:  "DRSH_CONFIG",

	On:    "on",
	Off:   "off",
	True:  "true",
	False: "false",
	One:   "1",
	Zero:  "0",
}

func (t *Table) registerSpecials() {
	for i, text := range specialText {
		a, err := t.AtomizeString(text)
		if err != nil {
			// Reserved literals are short ASCII strings; atomizing them
			// cannot fail.
			panic(err)
		}
		t.Special[i] = a
	}
}

// Get returns the table's reserved atom for kind.
func (t *Table) Get(kind Special) *Atom { return t.Special[kind] }
