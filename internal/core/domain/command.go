package domain

import "strings"

// Command describes an external process invocation.
type Command struct {
	Name  string
	Args  []string
	Dir   string
	Stdin []byte
}

// String renders the command line for logs.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// CommandResult is the observed outcome of a finished process.
type CommandResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}
