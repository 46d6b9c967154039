// Package cli implements an interactive shell and a scripted demonstration
// around a btrees.BTree.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"btrees"
)

type Cli struct {
	scanner    *bufio.Scanner
	out        io.Writer
	tree       *btrees.BTree
	visualizer *Visualizer
	log        btrees.Logger
}

// NewCli creates a shell reading commands from s and writing to out.
func NewCli(s *bufio.Scanner, out io.Writer, t *btrees.BTree, noColor bool, log btrees.Logger) *Cli {
	if log == nil {
		log = btrees.DiscardLogger{}
	}
	return &Cli{
		scanner:    s,
		out:        out,
		tree:       t,
		visualizer: NewVisualizer(t, noColor),
		log:        log,
	}
}

// Start runs the read-eval-print loop until EXIT or end of input.
func (c *Cli) Start() error {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return nil
		}
		c.printPrompt()
	}
	return c.scanner.Err()
}

func (c *Cli) printHelp() {
	fmt.Fprintf(c.out, `
B-Tree CLI (order %d)

Available Commands:
  INSERT <key>... Insert keys into the B-Tree
  DEL <key>...    Remove keys from the B-Tree
  GET <key>       Report whether key is in the B-Tree
  PRINT           Print the tree structure
  TRAVERSE        Print every key in ascending order
  CHECK           Validate the B-Tree invariants
  HELP            Show this message
  EXIT            Terminate this session
`, c.tree.Order())
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

// processInput executes one command line. Returns false when the session
// should end.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Fprintf(c.out, "Unknown command \"%s\"\n", command)
	case "insert", "set":
		c.processInsertCommand(fields[1:])
	case "del", "delete":
		c.processDeleteCommand(fields[1:])
	case "get", "search":
		c.processGetCommand(fields[1:])
	case "print":
		c.visualizer.Fprint(c.out)
	case "traverse":
		c.printTraversal()
	case "check":
		c.processCheckCommand()
	case "help":
		c.printHelp()
	case "exit", "quit":
		return false
	}
	return true
}

// parseKeys converts every argument to a key, reporting the first bad one
func (c *Cli) parseKeys(args []string) ([]int, bool) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(c.out, "Invalid key \"%s\": keys must be integers\n", arg)
			return nil, false
		}
		keys = append(keys, key)
	}
	return keys, true
}

func (c *Cli) processInsertCommand(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: INSERT <key>...")
		return
	}
	keys, ok := c.parseKeys(args)
	if !ok {
		return
	}
	for _, key := range keys {
		c.tree.Insert(key)
	}
	c.visualizer.Fprint(c.out)
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: DEL <key>...")
		return
	}
	keys, ok := c.parseKeys(args)
	if !ok {
		return
	}
	for _, key := range keys {
		switch err := c.tree.Delete(key); {
		case errors.Is(err, btrees.ErrTreeEmpty):
			fmt.Fprintln(c.out, "The tree is empty.")
		case errors.Is(err, btrees.ErrKeyNotFound):
			fmt.Fprintf(c.out, "Key %d not found.\n", key)
		}
	}
	c.visualizer.Fprint(c.out)
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: GET <key>")
		return
	}
	keys, ok := c.parseKeys(args)
	if !ok {
		return
	}
	if c.tree.Contains(keys[0]) {
		fmt.Fprintf(c.out, "Key %d found in tree.\n", keys[0])
		return
	}
	fmt.Fprintf(c.out, "Key %d not found in tree.\n", keys[0])
}

func (c *Cli) processCheckCommand() {
	if err := c.tree.Check(); err != nil {
		c.log.Error("b-tree check failed", "err", err)
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintf(c.out, "OK: %d keys, height %d\n", c.tree.Len(), c.tree.Height())
}

func (c *Cli) printTraversal() {
	var sb strings.Builder
	for key := range c.tree.Traverse() {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(key))
	}
	fmt.Fprintln(c.out, sb.String())
}
