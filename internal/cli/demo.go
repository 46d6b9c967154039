package cli

import (
	"errors"
	"fmt"
)

// DemoOrder is the branching order of the demonstration tree
const DemoOrder = 5

var (
	// DemoInsertKeys are inserted one at a time, printing the tree after each
	DemoInsertKeys = []int{
		10, 20, 5, 6, 12, 30, 7, 17, 3, 8, 25, 15, 1, 19, 4, 21, 23, 11,
		18, 13, 14, 2, 22, 16, 9, 24, 26, 27, 28, 29, 31, 32, 33, 34, 35,
	}

	// DemoSearchKeys mixes present and absent keys
	DemoSearchKeys = []int{6, 13, 30, 50}

	// DemoDeleteKeys removes every inserted key in a different order
	DemoDeleteKeys = []int{
		20, 5, 35, 12, 1, 17, 28, 9, 33, 3, 24, 14, 30, 7, 19, 26, 11, 2,
		31, 22, 16, 8, 34, 4, 27, 15, 21, 10, 32, 6, 25, 18, 29, 13, 23,
	}
)

var errDemoInvalid = errors.New("demo tree failed validation")

// RunDemo inserts, searches and deletes the demonstration keys on the
// session's tree, printing its structure along the way. It stops with an
// error as soon as the tree fails validation.
func (c *Cli) RunDemo() error {
	for _, key := range DemoInsertKeys {
		fmt.Fprintf(c.out, "Inserting %d...\n", key)
		c.tree.Insert(key)
		fmt.Fprintln(c.out, "Tree structure after insertion:")
		c.visualizer.Fprint(c.out)
		if err := c.tree.Check(); err != nil {
			return fmt.Errorf("%w: after inserting %d: %w", errDemoInvalid, key, err)
		}
	}

	fmt.Fprintln(c.out, "Traversal of the constructed tree is:")
	c.printTraversal()

	for _, key := range DemoSearchKeys {
		fmt.Fprintf(c.out, "\nSearching for key %d:\n", key)
		if c.tree.Contains(key) {
			fmt.Fprintf(c.out, "Key %d found in tree.\n", key)
		} else {
			fmt.Fprintf(c.out, "Key %d not found in tree.\n", key)
		}
	}
	fmt.Fprintln(c.out)

	for _, key := range DemoDeleteKeys {
		fmt.Fprintf(c.out, "Deleting %d...\n", key)
		if err := c.tree.Delete(key); err != nil {
			fmt.Fprintln(c.out, err)
		}
		c.visualizer.Fprint(c.out)
		if err := c.tree.Check(); err != nil {
			return fmt.Errorf("%w: after deleting %d: %w", errDemoInvalid, key, err)
		}
	}

	c.log.Info("demo finished", "inserted", len(DemoInsertKeys), "deleted", len(DemoDeleteKeys), "remaining", c.tree.Len())
	return nil
}
