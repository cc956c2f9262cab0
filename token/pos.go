package token

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets of a document to lines and columns. The newline
// index is built on first use.
type PosDoc struct {
	d       []byte
	n       []int
	indexed bool
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) index() {
	if p.indexed {
		return
	}
	p.indexed = true
	for i := 0; ; {
		j := bytes.IndexByte(p.d[i:], '\n')
		if j < 0 {
			return
		}
		p.n = append(p.n, i+j)
		i += j + 1
	}
}

// LineCol returns the 0-based line and column of offset off.
func (p *PosDoc) LineCol(off int) (int, int) {
	p.index()
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

// Pos is a byte offset into a document.
type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, p.I
	}
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := "?"
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, min(p.I, len(p.D.d))-5):min(p.I+5, len(p.D.d))])
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
