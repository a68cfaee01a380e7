//go:build windows

package term

import (
	"fmt"

	"golang.org/x/sys/windows"
)

type platformState struct {
	inOrig  uint32
	outOrig uint32
}

func (t *Term) platformOpen() error {
	if t.inIsTerminal {
		h := windows.Handle(t.in.Fd())
		if err := windows.GetConsoleMode(h, &t.plat.inOrig); err != nil {
			return fmt.Errorf("term: GetConsoleMode(in): %w", err)
		}
		if err := windows.SetConsoleCP(65001); err != nil {
			return fmt.Errorf("term: SetConsoleCP: %w", err)
		}
	}
	if t.outIsTerminal {
		h := windows.Handle(t.out.Fd())
		if err := windows.GetConsoleMode(h, &t.plat.outOrig); err != nil {
			return fmt.Errorf("term: GetConsoleMode(out): %w", err)
		}
		if err := windows.SetConsoleOutputCP(65001); err != nil {
			return fmt.Errorf("term: SetConsoleOutputCP: %w", err)
		}
	}
	return nil
}

func (t *Term) platformRaw() error {
	if t.inIsTerminal {
		mode := uint32(windows.ENABLE_VIRTUAL_TERMINAL_INPUT)
		if err := windows.SetConsoleMode(windows.Handle(t.in.Fd()), mode); err != nil {
			return fmt.Errorf("term: SetConsoleMode(in): %w", err)
		}
	}
	if t.outIsTerminal {
		mode := uint32(windows.ENABLE_PROCESSED_OUTPUT |
			windows.ENABLE_WRAP_AT_EOL_OUTPUT |
			windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING |
			windows.DISABLE_NEWLINE_AUTO_RETURN)
		if err := windows.SetConsoleMode(windows.Handle(t.out.Fd()), mode); err != nil {
			return fmt.Errorf("term: SetConsoleMode(out): %w", err)
		}
	}
	return nil
}

func (t *Term) platformOrig() error {
	if t.inIsTerminal {
		if err := windows.SetConsoleMode(windows.Handle(t.in.Fd()), t.plat.inOrig); err != nil {
			return fmt.Errorf("term: SetConsoleMode(in): %w", err)
		}
	}
	if t.outIsTerminal {
		if err := windows.SetConsoleMode(windows.Handle(t.out.Fd()), t.plat.outOrig); err != nil {
			return fmt.Errorf("term: SetConsoleMode(out): %w", err)
		}
	}
	return nil
}
