/* Package main: gomspdebug, the command shell of a small debugger

Every interaction with the debugger is a command line:

	<command> [arguments...]

Command names are matched ignoring case. Arguments are separated by
whitespace, but may be double quoted to include whitespace, inside of which C
style escapes are decoded: \\ \n \r \t, octal \NNN and hex \xHH.

Wherever a command takes a number, it takes an address expression instead:

	= main + 2*(0x10 - 4)
	opt base -(size % 8)

Expressions combine decimal integers, 0x prefixed hexadecimal integers, and
symbol names, with binary + - * / %, unary -, and parentheses. Arithmetic is
done on 32-bit signed integers, and wraps around. Symbol names may use
letters, digits, and any of . _ $ : characters; they are resolved from the
symbol table managed by the sym command.

Commands may be read from script files, one per line, where lines starting
with # are comments. A failing command is reported and the script carries
on; an unknown command stops it.

Interactively, removing unsaved symbols asks for confirmation first:

	Symbols have not been saved since modification. Continue (y/n)?

Options are named, typed values: booleans, numbers (given as expressions),
and text. See "help opt" within the shell.
*/
package main
