package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const modifyPrompt = "Symbols have not been saved since modification. Continue (y/n)? "

func TestModifyPrompt(t *testing.T) {
	var answers []bool
	confirm := func(e *Engine, args *string) error {
		answers = append(answers, e.ModifyPrompt(ModifySyms))
		return nil
	}
	expectAnswers := func(want ...bool) func(t *testing.T, e *Engine) {
		return func(t *testing.T, e *Engine) {
			assert.Equal(t, want, answers, "expected prompt answers")
			answers = nil
		}
	}

	engineTestCases{
		engineTest("unmodified").
			withCommand("confirm", confirm).
			withInput("n\n").
			interact("confirm").
			expectOutput().
			expect(expectAnswers(true)),

		engineTest("not interactive").
			withCommand("confirm", confirm).
			withModified(ModifySyms).
			withInput("n\n").
			dispatch("confirm").
			expectOutput().
			expect(expectAnswers(true)),

		engineTest("yes").
			withCommand("confirm", confirm).
			withModified(ModifySyms).
			withInput("yes please\n").
			interact("confirm").
			expectOutput(modifyPrompt).
			expect(expectAnswers(true)),

		engineTest("no").
			withCommand("confirm", confirm).
			withModified(ModifySyms).
			withInput("N\n").
			interact("confirm").
			expectOutput(modifyPrompt).
			expect(expectAnswers(false)),

		engineTest("reprompt").
			withCommand("confirm", confirm).
			withModified(ModifySyms).
			withInput("maybe\n\nY\n").
			interact("confirm").
			expectOutput(
				modifyPrompt, "Please answer \"y\" or \"n\".\n",
				modifyPrompt, "Please answer \"y\" or \"n\".\n",
				modifyPrompt,
			).
			expect(expectAnswers(true)),

		engineTest("end of input").
			withCommand("confirm", confirm).
			withModified(ModifySyms).
			withInput("").
			interact("confirm", "confirm").
			expectOutput(modifyPrompt, "\n", modifyPrompt, "\n").
			expect(expectAnswers(false, false)),

		engineTest("flags").
			do(func(e *Engine) error {
				e.ModifySet(ModifySyms)
				assert.Equal(t, ModifySyms, e.Modified())
				e.ModifyClear(ModifyAll)
				assert.Equal(t, ModifyFlags(0), e.Modified())
				return nil
			}).
			expectModified(0),
	}.run(t)
}
