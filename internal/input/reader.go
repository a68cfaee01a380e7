package input

import "io"

// byteSource is the minimal read surface ReadCommand needs; *term.Term
// satisfies it.
type byteSource interface {
	Read(p []byte) (int, error)
}

// ReadCommand reads and decodes the next Command from src, buffering raw
// bytes across calls the way drsh_read_one does: a single read(2) can
// yield several decodable commands, and a partial escape sequence at the
// end of a read waits for the next read to complete it.
func (e *Editor) ReadCommand(src byteSource) (Command, error) {
	for {
		if e.readCursor != 0 {
			if e.readCursor == e.readBuf.Len() {
				e.readBuf.Clear()
				e.readCursor = 0
			} else {
				pending := e.readBuf.Readable()[e.readCursor:]
				cmd, n := DecodeCommand(pending)
				if n > 0 {
					e.readCursor += n
					return cmd, nil
				}
			}
		}
		chunk := e.readBuf.Writable(8000)
		n, err := src.Read(chunk)
		if n > 0 {
			e.readBuf.Commit(n)
		}
		if err != nil {
			if n == 0 {
				if err == io.EOF {
					return 0, io.EOF
				}
				return 0, err
			}
		}
		if n == 0 && err == nil {
			continue
		}
		pending := e.readBuf.Readable()[e.readCursor:]
		cmd, consumed := DecodeCommand(pending)
		e.readCursor += consumed
		if consumed > 0 {
			return cmd, nil
		}
	}
}
