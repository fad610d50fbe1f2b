// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package command provides the edn command-line tool's subcommand
// framework, adapted from jindo-tool's command dispatch.
package command

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// A Command is a single edn subcommand, such as "edn read" or "edn watch".
type Command struct {
	// Run runs the command. args are the arguments after the command name.
	Run func(ctx context.Context, cmd *Command, args []string)

	// UsageLine is the one-line usage message.
	UsageLine string

	// Short is the short description shown in the edn usage listing.
	Short string

	// Long is the long description of the command.
	Long string

	// Flag is the flag set specific to this command.
	Flag flag.FlagSet

	// Commands lists this command's subcommands, if it is a group.
	Commands []*Command
}

// Lookup returns the subcommand with the given name, if any.
func (c *Command) Lookup(name string) *Command {
	for _, sub := range c.Commands {
		if sub.Name() == name {
			return sub
		}
	}
	return nil
}

// Root is the top-level edn command; its Commands are listed, in
// registration order, by the usage message.
var Root = &Command{UsageLine: "edn"}

// Name returns the command's short name: the last word of UsageLine before
// a flag or argument.
func (c *Command) Name() string {
	name := strings.TrimPrefix(c.UsageLine, "edn ")
	if i := strings.Index(name, " "); i >= 0 {
		name = name[:i]
	}
	return name
}

func (c *Command) Usage() {
	fmt.Fprintf(os.Stderr, "usage: %s\n", c.UsageLine)
	SetExitStatus(2)
	Exit()
}

// Runnable reports whether the command can be run directly.
func (c *Command) Runnable() bool { return c.Run != nil }

var atExitFuncs []func()

func AtExit(f func()) { atExitFuncs = append(atExitFuncs, f) }

func Exit() {
	for _, f := range atExitFuncs {
		f()
	}
	os.Exit(exitStatus)
}

func Fatalf(format string, args ...any) {
	Errorf(format, args...)
	Exit()
}

func Errorf(format string, args ...any) {
	log.Printf(format, args...)
	SetExitStatus(1)
}

func Fatal(err error) {
	Errorf("edn: %v", err)
	Exit()
}

var (
	exitStatus int
	exitMu     sync.Mutex
)

func SetExitStatus(n int) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

func GetExitStatus() int {
	exitMu.Lock()
	defer exitMu.Unlock()
	return exitStatus
}
