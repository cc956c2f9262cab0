package libdiff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/protoson/go-pson/encode"
	"github.com/protoson/go-pson/ir"
	"github.com/protoson/go-pson/ir/kpath"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Change is one difference between two trees. From is nil for an Insert
// and To is nil for a Delete. Array indices in the Path of a Delete count
// elements of the old array, all others those of the new one.
type Change struct {
	Op   Op
	Path string
	From *ir.Value
	To   *ir.Value
}

func (c Change) String() string {
	path := c.Path
	if path == "" {
		path = "$"
	}
	switch c.Op {
	case Insert:
		return fmt.Sprintf("+ %s: %s", path, encode.MustString(c.To))
	case Delete:
		return fmt.Sprintf("- %s: %s", path, encode.MustString(c.From))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", path, encode.MustString(c.From), encode.MustString(c.To))
	}
}

// Diff returns the changes turning from into to, in document order. Equal
// trees give no changes.
func Diff(from, to *ir.Value) []Change {
	d := &differ{}
	d.diff(nil, from, to)
	return d.changes
}

// Equal reports whether a and b hold the same tree. Objects compare by
// their first member of each name, in order of appearance.
func Equal(a, b *ir.Value) bool {
	return len(Diff(a, b)) == 0
}

// Format renders changes one per line.
func Format(changes []Change) string {
	var sb strings.Builder
	for _, c := range changes {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

type differ struct {
	changes []Change
}

func (d *differ) add(op Op, path *kpath.KPath, from, to *ir.Value) {
	d.changes = append(d.changes, Change{Op: op, Path: path.String(), From: from, To: to})
}

func (d *differ) diff(path *kpath.KPath, from, to *ir.Value) {
	if from.Type() != to.Type() {
		d.add(Replace, path, from, to)
		return
	}
	switch from.Type() {
	case ir.ObjectType:
		d.diffObject(path, from.Object(), to.Object())
	case ir.ArrayType:
		d.diffArray(path, from.Array(), to.Array())
	default:
		if !bytes.Equal(from.Payload(), to.Payload()) {
			d.add(Replace, path, from, to)
		}
	}
}
