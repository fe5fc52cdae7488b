package main

import "io"

// Prompt is written before reading each interactive command line.
const Prompt = "(mspdebug) "

// ReaderLoop runs an interactive session: it shows the help summary, then
// reads and dispatches command lines until end of input. Before returning,
// the user is asked to confirm discarding any unsaved modifications;
// declining resumes the session.
func (e *Engine) ReaderLoop() error {
	e.writeString("\n")
	e.showHelp()
	e.writeString("\n")

	for {
		for {
			e.writeString(Prompt)
			line, err := e.readLine()
			if err == io.EOF {
				break
			} else if err != nil {
				e.writeString("\n")
				return err
			}
			if err := e.Dispatch(line, true); err != nil {
				e.logf("reader loop: %v", err)
			}
		}

		var ok, eof bool
		e.withInteractive(true, func() {
			ok, eof = e.modifyPrompt(ModifyAll)
		})
		if ok || eof {
			break
		}
	}

	e.writeString("\n")
	return e.Flush()
}
