package main

import (
	"fmt"
	"sort"
	"strings"
)

type CommandArgs struct {
	commandName string
	args        []string
}

// NewCommandArgs splits os.Args style arguments into the command name and
// the arguments that follow it.
func NewCommandArgs(args []string) *CommandArgs {
	if len(args) < 2 || strings.HasPrefix(args[1], "-") {
		return &CommandArgs{}
	}
	return &CommandArgs{
		commandName: args[1],
		args:        args[2:],
	}
}

func (ca *CommandArgs) CommandName() string {
	return ca.commandName
}

func (ca *CommandArgs) Args() []string {
	return ca.args
}

type CommandHandler struct {
	items map[string]func(args []string) error
}

func NewCommandHandler() *CommandHandler {
	return &CommandHandler{
		items: make(map[string]func(args []string) error),
	}
}

func (ch *CommandHandler) Add(name string, handler func(args []string) error) {
	ch.items[name] = handler
}

func (ch *CommandHandler) Names() []string {
	var names = make([]string, 0, len(ch.items))
	for name := range ch.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (ch *CommandHandler) Execute(ca *CommandArgs) error {
	if ca.CommandName() == "" {
		return fmt.Errorf("command expected, one of %v", ch.Names())
	}
	handler, found := ch.items[ca.CommandName()]
	if !found {
		return fmt.Errorf("command not found %v", ca.CommandName())
	}
	return handler(ca.Args())
}
