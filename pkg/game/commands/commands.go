// Package commands implements the console command interpreter: a registry of
// named commands with aliases, plus the built-in set (help, echo, clear,
// hide, history, and the cvar commands get/set/list).
package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"stardrift/pkg/engine/console"
)

// Host is the console surface a command runs against. *console.Console
// satisfies it.
type Host interface {
	console.LineWriter
	Clear()
	Hide()
	HistoryEntries() []string
}

// Command is a single console command.
type Command struct {
	Name    string
	Aliases []string
	Usage   string
	Help    string
	Run     func(h Host, args []string)
}

// Interpreter dispatches submitted lines to registered commands. It
// implements console.Executor.
type Interpreter struct {
	host     Host
	commands map[string]*Command
	names    mapset.Set[string]
	order    []string
	cvars    map[string]string
}

// New creates an interpreter with the built-in command set and the given
// initial cvar values.
func New(cvars map[string]string) *Interpreter {
	i := &Interpreter{
		commands: make(map[string]*Command),
		names:    mapset.New[string](),
		cvars:    make(map[string]string),
	}
	for name, value := range cvars {
		i.cvars[name] = value
	}
	i.registerBuiltins()
	return i
}

// Attach binds the interpreter to the console it writes results to.
func (i *Interpreter) Attach(h Host) {
	i.host = h
}

// Register adds a command. Name and alias collisions are rejected so a later
// registration cannot shadow an earlier one.
func (i *Interpreter) Register(cmd *Command) error {
	all := append([]string{cmd.Name}, cmd.Aliases...)
	for _, name := range all {
		if i.names.Has(name) {
			return fmt.Errorf("commands: %q is already registered", name)
		}
	}
	for _, name := range all {
		i.names.Put(name)
		i.commands[name] = cmd
	}
	i.order = append(i.order, cmd.Name)
	return nil
}

// Execute parses and runs one submitted line. Implements console.Executor;
// output goes back through the host. Unknown commands produce a message, not
// an error.
func (i *Interpreter) Execute(line string) {
	if i.host == nil {
		return
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	name := strings.ToLower(fields[0])
	cmd, ok := i.commands[name]
	if !ok {
		i.host.WriteColoured(fmt.Sprintf(gotext.Get("Unknown command: %s (type 'help' for commands)"), name), console.ColourRed)
		return
	}
	cmd.Run(i.host, fields[1:])
}

// Cvar returns the value of a configuration variable.
func (i *Interpreter) Cvar(name string) (string, bool) {
	value, ok := i.cvars[name]
	return value, ok
}

// SetCvar sets a configuration variable.
func (i *Interpreter) SetCvar(name, value string) {
	i.cvars[name] = value
}

func (i *Interpreter) registerBuiltins() {
	builtins := []*Command{
		{
			Name: "help",
			Help: "Show this help",
			Run:  i.runHelp,
		},
		{
			Name:  "echo",
			Usage: "echo <text>",
			Help:  "Write text to the console",
			Run: func(h Host, args []string) {
				h.WriteLine(strings.Join(args, " "))
			},
		},
		{
			Name: "clear",
			Help: "Clear console output",
			Run: func(h Host, args []string) {
				h.Clear()
			},
		},
		{
			Name:    "hide",
			Aliases: []string{"close"},
			Help:    "Hide the console",
			Run: func(h Host, args []string) {
				h.Hide()
			},
		},
		{
			Name: "history",
			Help: "List submitted commands",
			Run: func(h Host, args []string) {
				entries := h.HistoryEntries()
				if len(entries) == 0 {
					h.WriteColoured(gotext.Get("No history yet"), console.ColourMuted)
					return
				}
				for n, entry := range entries {
					h.WriteLine(fmt.Sprintf("%3d  %s", n+1, entry))
				}
			},
		},
		{
			Name:  "get",
			Usage: "get <cvar>",
			Help:  "Get a configuration variable",
			Run:   i.runGet,
		},
		{
			Name:  "set",
			Usage: "set <cvar> <value>",
			Help:  "Set a configuration variable",
			Run:   i.runSet,
		},
		{
			Name: "list",
			Help: "List all cvars",
			Run:  i.runList,
		},
	}

	for _, cmd := range builtins {
		// Builtin names are distinct; a collision is a programming error.
		if err := i.Register(cmd); err != nil {
			panic(err)
		}
	}
}

func (i *Interpreter) runHelp(h Host, args []string) {
	h.WriteLine(gotext.Get("Commands:"))
	for _, name := range i.order {
		cmd := i.commands[name]
		usage := cmd.Usage
		if usage == "" {
			usage = cmd.Name
		}
		h.WriteLine(fmt.Sprintf("  %-22s - %s", usage, gotext.Get(cmd.Help)))
	}
}

func (i *Interpreter) runGet(h Host, args []string) {
	if len(args) < 1 {
		h.WriteColoured("Usage: get <cvar>", console.ColourYellow)
		return
	}
	name := strings.ToLower(args[0])
	value, ok := i.cvars[name]
	if !ok {
		h.WriteColoured(fmt.Sprintf(gotext.Get("Unknown cvar: %s"), name), console.ColourRed)
		return
	}
	h.WriteLine(fmt.Sprintf("%s = %q", name, value))
}

func (i *Interpreter) runSet(h Host, args []string) {
	if len(args) < 2 {
		h.WriteColoured("Usage: set <cvar> <value>", console.ColourYellow)
		return
	}
	name := strings.ToLower(args[0])
	value := strings.Join(args[1:], " ")
	i.cvars[name] = value
	h.WriteLine(fmt.Sprintf("%s = %q", name, value))
}

func (i *Interpreter) runList(h Host, args []string) {
	if len(i.cvars) == 0 {
		h.WriteColoured(gotext.Get("No cvars defined"), console.ColourMuted)
		return
	}
	names := make([]string, 0, len(i.cvars))
	for name := range i.cvars {
		names = append(names, name)
	}
	sort.Strings(names)

	h.WriteLine(fmt.Sprintf(gotext.Get("Cvars (%d):"), len(names)))
	for _, name := range names {
		h.WriteLine(fmt.Sprintf("  %s = %q", name, i.cvars[name]))
	}
}
