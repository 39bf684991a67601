package diagfmt

import (
	"sort"

	"caret/internal/diag"
	"caret/internal/source"
)

// group is a maximal run of consecutive rendered line numbers in one file.
type group struct {
	lines    []source.Line
	rows     []*row
	maxDepth int
}

// container holds all groups of one file, in render order.
type container struct {
	file   *source.File
	groups []*group
}

func (c *container) firstLine() uint32 {
	return c.groups[0].lines[0].Number
}

func (c *container) lastLine() uint32 {
	g := c.groups[len(c.groups)-1]
	return g.lines[len(g.lines)-1].Number
}

// collectContainers gathers every line referenced by a range, a label, or a
// color, dedupes by (file, line), and groups consecutive runs. Containers are
// ordered by first occurrence of their file.
func collectContainers(d *diag.Diagnostic) []*container {
	type fileLines struct {
		file *source.File
		seen map[uint32]bool
	}
	var ordered []*fileLines
	index := make(map[*source.File]*fileLines)

	touch := func(fr source.FileRange) {
		if fr.File == nil {
			return
		}
		fl, ok := index[fr.File]
		if !ok {
			fl = &fileLines{file: fr.File, seen: make(map[uint32]bool)}
			index[fr.File] = fl
			ordered = append(ordered, fl)
		}
		for _, line := range fr.File.LinesInRange(fr.Range) {
			fl.seen[line.Number] = true
		}
	}

	for _, fr := range d.Ranges {
		touch(fr)
	}
	for _, l := range d.Labels {
		touch(l.Range)
	}
	for _, c := range d.Colors {
		touch(c.Range)
	}

	out := make([]*container, 0, len(ordered))
	for _, fl := range ordered {
		nums := make([]uint32, 0, len(fl.seen))
		for n := range fl.seen {
			nums = append(nums, n)
		}
		sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })

		c := &container{file: fl.file}
		var cur *group
		for _, n := range nums {
			lineRange, err := fl.file.RangeForLine(n)
			if err != nil {
				continue
			}
			line := source.Line{Number: n, Range: lineRange}
			if cur != nil && n == cur.lines[len(cur.lines)-1].Number+1 {
				cur.lines = append(cur.lines, line)
				continue
			}
			cur = &group{lines: []source.Line{line}}
			c.groups = append(c.groups, cur)
		}
		if len(c.groups) > 0 {
			out = append(out, c)
		}
	}
	return out
}
