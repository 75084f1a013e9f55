// Package bookmark maps single key symbols to full command lines. The table
// is built once from configuration and never mutated during a session.
package bookmark

import "fmt"

// Table is the immutable bookmark mapping.
type Table struct {
	cmds map[rune]string
}

// New builds a table from configured bindings. Every key must be exactly
// one character; anything longer cannot be typed as a single keystroke.
func New(binds map[string]string) (*Table, error) {
	cmds := make(map[rune]string, len(binds))
	for key, cmd := range binds {
		r := []rune(key)
		if len(r) != 1 {
			return nil, fmt.Errorf("bookmark key %q: must be a single character", key)
		}
		cmds[r[0]] = cmd
	}
	return &Table{cmds: cmds}, nil
}

// Lookup returns the command bound to sym, if any.
func (t *Table) Lookup(sym rune) (string, bool) {
	cmd, ok := t.cmds[sym]
	return cmd, ok
}

// Len returns the number of bookmarks.
func (t *Table) Len() int {
	return len(t.cmds)
}
