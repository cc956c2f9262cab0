package libdiff

import (
	"github.com/protoson/go-pson/ir"
	"github.com/protoson/go-pson/ir/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffObject diffs the sequences of member names and recurses on the
// members both sides share. Only the first member of each name counts.
func (d *differ) diffObject(path *kpath.KPath, from, to *ir.Object) {
	names := map[string]rune{}
	fromNames, fromVals := members(names, from)
	toNames, toVals := members(names, to)
	diffs := diffpatch.New().DiffMainRunes(runes(names, fromNames), runes(names, toNames), false)

	fi, ti := 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			for range n {
				d.add(Delete, path.Append(kpath.Field(fromNames[fi])), fromVals[fi], nil)
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				d.add(Insert, path.Append(kpath.Field(toNames[ti])), nil, toVals[ti])
				ti++
			}
		case diffpatch.DiffEqual:
			for range n {
				d.diff(path.Append(kpath.Field(fromNames[fi])), fromVals[fi], toVals[ti])
				fi++
				ti++
			}
		}
	}
}

func members(names map[string]rune, obj *ir.Object) ([]string, []*ir.Value) {
	seen := map[string]bool{}
	var ns []string
	var vs []*ir.Value
	for p := range obj.All() {
		name := p.Name()
		if seen[name] {
			continue
		}
		seen[name] = true
		if _, ok := names[name]; !ok {
			names[name] = rune(len(names))
		}
		ns = append(ns, name)
		vs = append(vs, p.Value())
	}
	return ns, vs
}

func runes(m map[string]rune, keys []string) []rune {
	rs := make([]rune, len(keys))
	for i, k := range keys {
		rs[i] = m[k]
	}
	return rs
}
