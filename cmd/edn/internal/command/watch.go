package command

import (
	"context"
	"log"
	"os"

	"github.com/alecthomas/repr"
	"github.com/fsnotify/fsnotify"

	"github.com/jindo-lang/edn/pkg/edn/reader"
	"github.com/jindo-lang/edn/pkg/edn/source"
)

var Watch = &Command{
	UsageLine: "edn watch <file>",
	Short:     "re-read a file and print its forms every time it changes",
	Long: `Watch re-parses the named file on every write and prints the
parsed forms, until interrupted.`,
}

func init() {
	Watch.Run = runWatch
	Root.Commands = append(Root.Commands, Watch)
}

func runWatch(ctx context.Context, cmd *Command, args []string) {
	if len(args) != 1 {
		cmd.Usage()
		return
	}
	path := args[0]

	w, err := fsnotify.NewWatcher()
	if err != nil {
		Fatal(err)
		return
	}
	defer w.Close()
	if err := w.Add(path); err != nil {
		Fatal(err)
		return
	}

	readOnce(path)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				readOnce(path)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("edn: watch error: %v", err)
		}
	}
}

func readOnce(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("edn: %v", err)
		return
	}
	defer f.Close()

	src := source.NewIndexing(f, path)
	forms, err := reader.ReadAll(src)
	if err != nil {
		log.Printf("edn: %v", err)
		return
	}
	for _, v := range forms {
		repr.Println(v)
	}
}
