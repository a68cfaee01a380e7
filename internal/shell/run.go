package shell

import "io"

// Run performs the full program lifecycle: Startup, then either source
// each path in files (returning after the last one, the way MAIN does
// when argc>1) or, with no files given, load history and run the
// interactive read-eval loop until EOF/exit, dumping history on the way
// out. Always restores the terminal before returning, even on error.
func (s *Shell) Run(files []string) error {
	if err := s.Startup(); err != nil {
		return err
	}
	defer s.Shutdown()

	for _, path := range files {
		if err := s.SourceFile(path); err != nil {
			if err == ErrExit {
				return nil
			}
		}
	}
	if len(files) > 0 {
		return nil
	}

	historyPath, err := s.env.HistoryPath()
	if err == nil {
		if err := s.editor.LoadHistory(s.at, historyPath); err != nil {
			s.term.Printf("error reading: %s\r\n", historyPath)
		}
	} else {
		s.term.Printf("error getting history path\r\n")
	}

	for {
		line, err := s.editor.ReadLine(s.term, s.at, s.env, s.windowsStyle)
		if s.term.InIsTerminal() && s.term.OutIsTerminal() {
			s.term.WriteString("\r\n")
			s.term.Flush()
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			break
		}
		if s.term.InIsTerminal() {
			if a, aerr := s.at.Atomize(line); aerr == nil {
				s.editor.HistAdd(a)
			}
		}
		if perr := s.ProcessLine(line); perr == ErrExit {
			break
		}
	}

	if historyPath != "" {
		_ = s.editor.DumpHistory(historyPath)
	}
	return nil
}
