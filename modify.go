package main

// ModifyFlags records which kinds of state have unsaved modifications.
type ModifyFlags uint

const (
	// ModifySyms marks symbol table changes.
	ModifySyms ModifyFlags = 1 << iota

	// ModifyAll covers every kind of modification.
	ModifyAll = ModifySyms
)

// ModifySet flags state as modified.
func (e *Engine) ModifySet(flags ModifyFlags) { e.modified |= flags }

// ModifyClear flags state as saved.
func (e *Engine) ModifyClear(flags ModifyFlags) { e.modified &^= flags }

// Modified returns the current unsaved modification flags.
func (e *Engine) Modified() ModifyFlags { return e.modified }

// ModifyPrompt asks whether to go ahead with an action that would lose unsaved
// modifications of any kind named by flags, returning true to proceed.
//
// Only an interactive call with such modifications prompts; otherwise it
// returns true without asking. The user must answer y or n; end of input
// declines.
func (e *Engine) ModifyPrompt(flags ModifyFlags) bool {
	ok, _ := e.modifyPrompt(flags)
	return ok
}

func (e *Engine) modifyPrompt(flags ModifyFlags) (ok, eof bool) {
	if !e.interactive || e.modified&flags == 0 {
		return true, false
	}
	for {
		e.writeString("Symbols have not been saved since modification. Continue (y/n)? ")
		answer, err := e.readLine()
		if err != nil {
			e.writeString("\n")
			return false, true
		}
		if answer != "" {
			switch answer[0] {
			case 'y', 'Y':
				return true, false
			case 'n', 'N':
				return false, false
			}
		}
		e.writeString("Please answer \"y\" or \"n\".\n")
	}
}
