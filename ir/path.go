package ir

import (
	"fmt"

	"github.com/protoson/go-pson/ir/kpath"
)

// GetPath returns the value at path p, such as `a.b[0]."c d"`. The empty
// path denotes v itself. Missing members and out of range indices are
// errors wrapping ErrPath.
func (v *Value) GetPath(p string) (*Value, error) {
	kp, err := kpath.Parse(p)
	if err != nil {
		return nil, err
	}
	return v.GetKPath(kp)
}

func (v *Value) GetKPath(kp *kpath.KPath) (*Value, error) {
	cur := v
	for x := kp; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			if cur.typ != ObjectType {
				return nil, fmt.Errorf("%w: %s on %s", ErrPath, x.SegmentString(), cur.typ)
			}
			next := cur.obj.Get(*x.Field)
			if next.IsEmpty() {
				return nil, fmt.Errorf("%w: no member %s", ErrPath, x.SegmentString())
			}
			cur = next
		case x.Index != nil:
			if cur.typ != ArrayType {
				return nil, fmt.Errorf("%w: %s on %s", ErrPath, x.SegmentString(), cur.typ)
			}
			next := cur.arr.At(*x.Index)
			if next.IsEmpty() {
				return nil, fmt.Errorf("%w: index %s out of range (len %d)", ErrPath, x.SegmentString(), cur.arr.Len())
			}
			cur = next
		}
	}
	return cur, nil
}
