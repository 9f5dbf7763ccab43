package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// RunFunc executes a command after its flags are parsed. args are the positional arguments
// left after the flags. The returned text is shown to the user.
type RunFunc func(args []string) (string, error)

// SetupFunc defines a command's flags on fs and returns the function that runs it.
// It is called on every execution, so flag values never leak between runs.
type SetupFunc func(fs *flag.FlagSet) RunFunc

// Command is a named console command.
type Command struct {
	Name  string
	Usage string
	setup SetupFunc
}

// Registry holds commands by name.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns a registry holding only the built-in "help" command.
func NewRegistry() *Registry {
	r := &Registry{cmds: make(map[string]*Command)}
	r.Register("help", "help: list commands", func(*flag.FlagSet) RunFunc {
		return func([]string) (string, error) { return r.Help(), nil }
	})
	return r
}

// Register adds or replaces a command.
func (r *Registry) Register(name, usage string, setup SetupFunc) {
	r.cmds[name] = &Command{Name: name, Usage: usage, setup: setup}
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Help returns one usage line per command.
func (r *Registry) Help() string {
	var lines []string
	for _, n := range r.Names() {
		lines = append(lines, r.cmds[n].Usage)
	}
	return strings.Join(lines, "\n")
}

// Parse splits a console line into arguments. Blank lines yield nil.
func Parse(line string) []string {
	return strings.Fields(line)
}

// ErrEmpty is returned by Execute for a blank line.
var ErrEmpty = errors.New("empty command")

// Execute runs the command named by args[0] with the rest as its arguments.
func (r *Registry) Execute(args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrEmpty
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return "", fmt.Errorf("unknown command: %s (try help)", args[0])
	}
	fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := cmd.setup(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return "", fmt.Errorf("%s: %w (usage: %s)", cmd.Name, err, cmd.Usage)
	}
	out, err := run(fs.Args())
	if err != nil {
		return out, fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return out, nil
}

// ExecuteLine parses and runs a console line.
func (r *Registry) ExecuteLine(line string) (string, error) {
	return r.Execute(Parse(line))
}
