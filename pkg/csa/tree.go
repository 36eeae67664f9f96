package csa

// The grammar parse yields a transient tree of labeled nodes. The tree is
// consumed entirely by the semantic transformer and discarded; nothing
// outside this package ever sees it.

type nodeKind int

const (
	nodeGameRecord nodeKind = iota

	nodeBlackPlayer
	nodeWhitePlayer
	nodePlayerName

	nodeGameAttr
	nodeAttrKey
	nodeAttrValue
	nodeDatetime
	nodeDate
	nodeTime
	nodeTimelimit
	nodeTimelimitHours
	nodeTimelimitMinutes
	nodeTimelimitByoyomi
	nodeAttrText

	nodePosition
	nodeHandicap
	nodeHandicapPiece
	nodeGrid
	nodeMiniGrid
	nodeWildcatGrid
	nodeGridRow
	nodeGridCell
	nodeGridPiece
	nodeGridEmpty
	nodePlacementLines
	nodePlacement
	nodePlacementPiece

	nodeSideToMove
	nodeColor
	nodeSquare
	nodePieceType

	nodeMoveRecords
	nodeMoveRecord
	nodeNormalMove
	nodeSpecialMove
	nodeTimeConsumed
	nodeSecondsConsumed
)

type node struct {
	kind     nodeKind
	text     string
	line     int
	children []*node
}

func newNode(kind nodeKind, text string, line int) *node {
	return &node{kind: kind, text: text, line: line}
}

func (n *node) add(children ...*node) *node {
	n.children = append(n.children, children...)
	return n
}

// child returns the first direct child of the given kind, or nil.
func (n *node) child(kind nodeKind) *node {
	for _, c := range n.children {
		if c.kind == kind {
			return c
		}
	}
	return nil
}
