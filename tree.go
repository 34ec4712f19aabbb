package lumen

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Side selects which half of the skill graph a group occupies.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// ErrUnknownSide is returned by ParseSide.
var ErrUnknownSide = errors.New("lumen: unknown side")

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// ParseSide accepts "left" or "right".
func ParseSide(v string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSide, v)
}

// Range returns the horizontal band, in percent of the graph width, that a
// group on this side is spread across.
func (s Side) Range() Range {
	if s == SideRight {
		return Range{Min: 52, Max: 92}
	}
	return Range{Min: 8, Max: 48}
}

// Layout constants, in percent of the graph box.
const (
	treeTop        = 26.0
	treeLevelStep  = 14.0
	deepestShiftX  = 1.6
	interiorShiftX = 0.8
	interiorShiftY = 0.8
)

// NoParent is the Parent value of a tree root.
const NoParent = -1

// PositionedNode is one slot of a laid-out complete binary tree. X and Y are
// percentages of the graph box. Item is nil for padding slots, which keep
// their geometry but are not drawn.
type PositionedNode struct {
	Index  int     `json:"index"`
	Parent int     `json:"parent"`
	Level  int     `json:"level"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Item   *Skill  `json:"item,omitempty"`
}

// IsRoot reports whether n is the tree root.
func (n PositionedNode) IsRoot() bool { return n.Parent == NoParent }

// LevelsFor returns the number of tree levels needed to hold n items:
// max(1, ceil(log2(n+1))).
func LevelsFor(n int) int {
	if n <= 0 {
		return 1
	}
	return bits.Len(uint(n))
}

// levelOf returns floor(log2(index+1)).
func levelOf(index int) int {
	return bits.Len(uint(index+1)) - 1
}

// LayoutBinaryTree arranges items into a complete binary tree in breadth-first
// order and positions every slot. The result always has 2^levels-1 entries;
// slots past len(items) carry a nil Item. The function is pure: the same
// items and side always give the same nodes.
func LayoutBinaryTree(items []Skill, side Side) []PositionedNode {
	band := side.Range()
	levels := LevelsFor(len(items))
	total := 1<<levels - 1
	deepest := levels - 1

	nodes := make([]PositionedNode, total)
	for i := range nodes {
		level := levelOf(i)
		first := 1<<level - 1
		slots := 1 << level
		t := (float64(i-first) + 0.5) / float64(slots)

		x := band.Min + t*(band.Max-band.Min)
		y := treeTop + float64(level)*treeLevelStep
		switch {
		case level == deepest:
			x -= deepestShiftX
		case level > 0:
			x -= interiorShiftX
			y -= interiorShiftY
		}

		parent := NoParent
		if i > 0 {
			parent = (i - 1) / 2
		}

		var item *Skill
		if i < len(items) {
			it := items[i]
			item = &it
		}

		nodes[i] = PositionedNode{
			Index:  i,
			Parent: parent,
			Level:  level,
			X:      band.Clamp(x),
			Y:      y,
			Item:   item,
		}
	}
	return nodes
}

// Offset is a cosmetic pixel nudge applied to a rendered node. It never
// changes topology or percentage coordinates.
type Offset struct {
	DX float64 `toml:"dx" yaml:"dx" json:"dx,omitempty"`
	DY float64 `toml:"dy" yaml:"dy" json:"dy,omitempty"`
}

// OffsetTable is a sparse side → slot index → nudge table.
type OffsetTable map[Side]map[int]Offset

// Lookup returns the nudge for a slot, or the zero Offset.
func (t OffsetTable) Lookup(side Side, index int) Offset {
	return t[side][index]
}

// DefaultOffsets are the nudges tuned for the default skill sets.
var DefaultOffsets = OffsetTable{
	SideLeft: {
		0: {DY: -8},
		3: {DX: -8},
		4: {DX: -8},
		5: {DX: -8},
		6: {DX: -8},
	},
	SideRight: {
		0: {DY: -8},
		2: {DX: -8},
		5: {DX: -8},
		6: {DX: -8},
	},
}

// Segment is a line between two points in percent coordinates. From and To
// name the slot indices at either end; From is -1 for the shared anchor.
type Segment struct {
	Side     Side
	From, To int
	A, B     Vec2
}

// SkillGraph is two binary trees hung off a shared anchor.
type SkillGraph struct {
	Anchor Vec2
	Left   []PositionedNode
	Right  []PositionedNode
}

// DefaultAnchor is where the shared root sits, in percent.
var DefaultAnchor = Vec2{X: 50, Y: 10}

// NewSkillGraph lays out both groups around DefaultAnchor.
func NewSkillGraph(left, right []Skill) SkillGraph {
	return SkillGraph{
		Anchor: DefaultAnchor,
		Left:   LayoutBinaryTree(left, SideLeft),
		Right:  LayoutBinaryTree(right, SideRight),
	}
}

// Nodes returns the laid-out group for a side.
func (g SkillGraph) Nodes(side Side) []PositionedNode {
	if side == SideRight {
		return g.Right
	}
	return g.Left
}

// Links returns the anchor-to-root segments for groups that have a root item.
func (g SkillGraph) Links() []Segment {
	var out []Segment
	for _, side := range []Side{SideLeft, SideRight} {
		nodes := g.Nodes(side)
		if len(nodes) == 0 || nodes[0].Item == nil {
			continue
		}
		out = append(out, Segment{
			Side: side,
			From: NoParent,
			To:   0,
			A:    g.Anchor,
			B:    Vec2{X: nodes[0].X, Y: nodes[0].Y},
		})
	}
	return out
}

// Edges returns parent-to-child segments for one side, in slot order.
// Children without an item are skipped.
func (g SkillGraph) Edges(side Side) []Segment {
	nodes := g.Nodes(side)
	var out []Segment
	for _, n := range nodes {
		if n.IsRoot() || n.Item == nil {
			continue
		}
		p := nodes[n.Parent]
		out = append(out, Segment{
			Side: side,
			From: p.Index,
			To:   n.Index,
			A:    Vec2{X: p.X, Y: p.Y},
			B:    Vec2{X: n.X, Y: n.Y},
		})
	}
	return out
}
