package token

import (
	"fmt"
	"sort"
	"strconv"
)

// contextRadius bounds the snippet embedded in error positions.
const contextRadius = 10

// Doc holds an input buffer together with its newline offsets so that
// byte offsets can be rendered as line/column pairs.
type Doc struct {
	d []byte
	n []int
}

func NewDoc(d []byte) *Doc {
	doc := &Doc{d: d}
	for i, c := range d {
		if c == '\n' {
			doc.n = append(doc.n, i)
		}
	}
	return doc
}

func (d *Doc) Len() int {
	return len(d.d)
}

func (d *Doc) Bytes() []byte {
	return d.d
}

func (d *Doc) LineCol(off int) (int, int) {
	N := len(d.n)
	di := sort.Search(N, func(i int) bool {
		return d.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - d.n[di-1] - 1
}

func (d *Doc) Pos(off int) *Pos {
	return &Pos{I: off, D: d}
}

// Context returns up to contextRadius bytes before and after off.
func (d *Doc) Context(off int) []byte {
	lo := max(0, off-contextRadius)
	hi := min(off+contextRadius, len(d.d))
	return d.d[lo:hi]
}

type Pos struct {
	I int
	D *Doc
}

func (p *Pos) LineCol() (int, int) {
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

func (p *Pos) String() string {
	sample := "?"
	if p.D != nil {
		sample = string(p.D.Context(p.I))
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
