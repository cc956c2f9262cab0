package libdiff

import (
	"github.com/protoson/go-pson/encode"
	"github.com/protoson/go-pson/ir"
	"github.com/protoson/go-pson/ir/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffArray diffs the sequences of element summaries. Matching containers
// are recursed into; a deletion immediately followed by an insertion at
// the same position is reported as a replacement.
func (d *differ) diffArray(path *kpath.KPath, from, to *ir.Array) {
	sums := map[string]rune{}
	fromVals, fromRunes := elements(sums, from)
	toVals, toRunes := elements(sums, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = len([]rune(diffs[i+1].Text))
				i++
			}
			for j := range max(n, ins) {
				switch {
				case j < n && j < ins:
					d.diff(path.Append(kpath.Index(ti)), fromVals[fi], toVals[ti])
					fi++
					ti++
				case j < n:
					d.add(Delete, path.Append(kpath.Index(fi)), fromVals[fi], nil)
					fi++
				default:
					d.add(Insert, path.Append(kpath.Index(ti)), nil, toVals[ti])
					ti++
				}
			}
		case diffpatch.DiffInsert:
			for range n {
				d.add(Insert, path.Append(kpath.Index(ti)), nil, toVals[ti])
				ti++
			}
		case diffpatch.DiffEqual:
			for range n {
				d.diff(path.Append(kpath.Index(ti)), fromVals[fi], toVals[ti])
				fi++
				ti++
			}
		}
	}
}

func elements(sums map[string]rune, arr *ir.Array) ([]*ir.Value, []rune) {
	var vs []*ir.Value
	var rs []rune
	for item := range arr.All() {
		sum := summary(item)
		r, ok := sums[sum]
		if !ok {
			r = rune(len(sums))
			sums[sum] = r
		}
		vs = append(vs, item)
		rs = append(rs, r)
	}
	return vs, rs
}

// summary identifies a scalar by its type and JSON text and a container
// by its type alone.
func summary(v *ir.Value) string {
	switch v.Type() {
	case ir.ObjectType, ir.ArrayType:
		return v.Type().String()
	case ir.BytesType:
		return v.Type().String() + "-" + string(v.Payload())
	default:
		return v.Type().String() + "-" + string(encode.AppendScalar(nil, v))
	}
}
