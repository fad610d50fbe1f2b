// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Command edn reads and inspects EDN data from files or standard input.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jindo-lang/edn/cmd/edn/internal/command"
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		mainUsage()
	}

	cmd := command.Root.Lookup(args[0])
	if cmd == nil {
		fmt.Fprintf(os.Stderr, "edn %s: unknown command\nRun 'edn' for usage.\n", args[0])
		os.Exit(2)
	}

	cmd.Flag.Usage = func() { cmd.Usage() }
	cmd.Flag.Parse(args[1:])
	cmd.Run(context.Background(), cmd, cmd.Flag.Args())
	os.Exit(command.GetExitStatus())
}

func mainUsage() {
	fmt.Fprintln(os.Stderr, "usage: edn <command> [arguments]")
	fmt.Fprintln(os.Stderr, "commands:")
	for _, c := range command.Root.Commands {
		fmt.Fprintf(os.Stderr, "  %-20s %s\n", c.Name(), c.Short)
	}
	os.Exit(2)
}
