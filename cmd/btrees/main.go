// Command btrees is an interactive shell for exploring B-tree insertion and
// deletion. With -demo it replays a fixed sequence of inserts, searches and
// deletes instead.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"btrees"
	"btrees/internal/cli"
	"btrees/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command and returns an exit code.
// This is separated from main() to facilitate testing.
func run(args []string) int {
	fs := flag.NewFlagSet("btrees", flag.ContinueOnError)
	order := fs.Int("order", cli.DemoOrder, "maximum number of children per node (>= 3)")
	demo := fs.Bool("demo", false, "run the demonstration sequence and exit")
	logKind := fs.String("logger", "logrus", "log backend: logrus, zap or none")
	noColor := fs.Bool("no-color", false, "disable colored tree output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log, sync, err := newLogger(*logKind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer sync()

	tree, err := btrees.New(*order, btrees.WithLogger(log))
	if err != nil {
		log.Error("cannot create tree", "order", *order, "err", err)
		return 1
	}

	shell := cli.NewCli(bufio.NewScanner(os.Stdin), os.Stdout, tree, *noColor, log)

	if *demo {
		if err := shell.RunDemo(); err != nil {
			log.Error("demo failed", "err", err)
			return 1
		}
		return 0
	}

	if err := shell.Start(); err != nil {
		log.Error("reading input", "err", err)
		return 1
	}
	return 0
}

// newLogger builds the requested backend. The returned func flushes it.
func newLogger(kind string) (btrees.Logger, func(), error) {
	switch kind {
	case "logrus":
		l := logrus.New()
		l.SetOutput(os.Stderr)
		return logger.NewLogrus(l), func() {}, nil
	case "zap":
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, err
		}
		return logger.NewZap(l), func() { _ = l.Sync() }, nil
	case "none":
		return btrees.DiscardLogger{}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown logger %q (want logrus, zap or none)", kind)
	}
}
