package command

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/repr"

	"github.com/jindo-lang/edn/pkg/edn/reader"
	"github.com/jindo-lang/edn/pkg/edn/source"
)

var Read = &Command{
	UsageLine: "edn read [file]",
	Short:     "read every form from a file or stdin and print its structure",
	Long: `Read parses every top-level EDN form from the named file, or from
standard input if no file is given, and prints the parsed structure of each
form using repr.`,
}

func init() {
	Read.Run = runRead
	Root.Commands = append(Root.Commands, Read)
}

func runRead(_ context.Context, cmd *Command, args []string) {
	var (
		r    io.Reader
		name string
	)
	switch len(args) {
	case 0:
		r, name = os.Stdin, "<stdin>"
	case 1:
		f, err := os.Open(args[0])
		if err != nil {
			Fatal(err)
		}
		defer f.Close()
		r, name = f, args[0]
	default:
		cmd.Usage()
		return
	}

	src := source.NewIndexing(r, name)
	forms, err := reader.ReadAll(src)
	if err != nil {
		Fatal(err)
		return
	}
	for _, v := range forms {
		repr.Println(v)
	}
}
