package csa

import (
	"regexp"
	"strings"
)

// Line-level grammar shared by the four dialects. Each line form is a
// declarative pattern; the dialect table decides which forms are legal
// (reduced grids, fractional time) and parseTree enforces section order:
// version, header (names/attributes), position, side-to-move, moves.

var (
	playerLineRe    = regexp.MustCompile(`^N([+-])(.*)$`)
	attrLineRe      = regexp.MustCompile(`^\$([A-Z0-9_]+):(.*)$`)
	handicapLineRe  = regexp.MustCompile(`^PI((?:[0-9]{2}[A-Z]{2})*)$`)
	gridRowRe       = regexp.MustCompile(`^P([1-9])(.*)$`)
	placementLineRe = regexp.MustCompile(`^P([+-])((?:[0-9]{2}[A-Z]{2})*)$`)
	moveLineRe      = regexp.MustCompile(`^([+-])([0-9]{2})([0-9]{2})([A-Z]{2})$`)
	gridPieceRe     = regexp.MustCompile(`^([+-])([A-Z]{2})$`)
	timeLineRe      = regexp.MustCompile(`^T([0-9]+)$`)
	timeMilliLineRe = regexp.MustCompile(`^T([0-9]+(?:\.[0-9]{1,3})?)$`)
	datetimeRe      = regexp.MustCompile(`^([0-9]{4}/[0-9]{2}/[0-9]{2})(?: ([0-9]{2}:[0-9]{2}:[0-9]{2}))?$`)
	timelimitRe     = regexp.MustCompile(`^([0-9]{2}):([0-9]{2})\+([0-9]+)$`)
)

const (
	phaseHeader = iota
	phasePosition
	phaseMoves
)

// parseTree parses the whole input against the dialect's grammar and yields
// the root syntax-tree node, or a positional diagnostic. There is no partial
// tree on failure.
func parseTree(input string, d *dialect) (*node, *ParseError) {
	root := newNode(nodeGameRecord, "", 0)

	var (
		sawVersion  bool
		sawEncoding bool
		phase       = phaseHeader
		posNode     *node
		gridRows    []*node
		gridDone    bool
		sawHandicap bool
		placements  *node
		sawSide     bool
		movesNode   *node
	)

	position := func(line int) *node {
		if posNode == nil {
			posNode = newNode(nodePosition, "", line)
			root.add(posNode)
		}
		phase = phasePosition
		return posNode
	}

	// finishGrid resolves which board shape the collected rows form. Runs
	// once, before the move section starts (or at end of input).
	finishGrid := func() *ParseError {
		if gridDone || len(gridRows) == 0 {
			return nil
		}
		gridDone = true
		grid, err := resolveGrid(gridRows, d)
		if err != nil {
			return err
		}
		posNode.add(grid)
		return nil
	}

	moves := func(line int) (*node, *ParseError) {
		if err := finishGrid(); err != nil {
			return nil, err
		}
		if movesNode == nil {
			movesNode = newNode(nodeMoveRecords, "", line)
			root.add(movesNode)
		}
		phase = phaseMoves
		return movesNode, nil
	}

	for i, raw := range strings.Split(input, "\n") {
		lineNo := i + 1
		trimmed := strings.TrimSpace(raw)

		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, encodingComment) {
			sawEncoding = true
			continue
		}
		if strings.HasPrefix(trimmed, "'") {
			continue
		}

		if !sawVersion {
			if trimmed == d.token {
				sawVersion = true
				continue
			}
			// The newest dialect may omit the version line when the
			// encoding declaration already selected it.
			if d.version == V30 && sawEncoding {
				sawVersion = true
			} else {
				return nil, grammarErrorf(lineNo, "expected version line %q, got %q", d.token, trimmed)
			}
		}

		switch {
		case playerLineRe.MatchString(trimmed):
			if phase != phaseHeader {
				return nil, grammarErrorf(lineNo, "player name line after header section: %q", trimmed)
			}
			m := playerLineRe.FindStringSubmatch(trimmed)
			kind := nodeBlackPlayer
			if m[1] == "-" {
				kind = nodeWhitePlayer
			}
			root.add(newNode(kind, trimmed, lineNo).add(newNode(nodePlayerName, m[2], lineNo)))

		case attrLineRe.MatchString(trimmed):
			if phase != phaseHeader {
				return nil, grammarErrorf(lineNo, "attribute line after header section: %q", trimmed)
			}
			m := attrLineRe.FindStringSubmatch(trimmed)
			attr := newNode(nodeGameAttr, trimmed, lineNo)
			attr.add(newNode(nodeAttrKey, m[1], lineNo))
			attr.add(attrValueNode(m[2], lineNo))
			root.add(attr)

		case handicapLineRe.MatchString(trimmed):
			if phase == phaseMoves || sawHandicap || len(gridRows) > 0 || placements != nil {
				return nil, grammarErrorf(lineNo, "misplaced handicap line: %q", trimmed)
			}
			m := handicapLineRe.FindStringSubmatch(trimmed)
			hand := newNode(nodeHandicap, trimmed, lineNo)
			pieces, err := pairNodes(m[1], nodeHandicapPiece, lineNo)
			if err != nil {
				return nil, err
			}
			hand.add(pieces...)
			position(lineNo).add(hand)
			sawHandicap = true

		case placementLineRe.MatchString(trimmed):
			if phase == phaseMoves {
				return nil, grammarErrorf(lineNo, "piece placement after move section: %q", trimmed)
			}
			if err := finishGrid(); err != nil {
				return nil, err
			}
			m := placementLineRe.FindStringSubmatch(trimmed)
			placement := newNode(nodePlacement, trimmed, lineNo)
			placement.add(newNode(nodeColor, m[1], lineNo))
			pieces, err := pairNodes(m[2], nodePlacementPiece, lineNo)
			if err != nil {
				return nil, err
			}
			placement.add(pieces...)
			if placements == nil {
				placements = newNode(nodePlacementLines, "", lineNo)
				position(lineNo).add(placements)
			}
			phase = phasePosition
			placements.add(placement)

		case gridRowRe.MatchString(trimmed):
			if phase == phaseMoves || placements != nil || gridDone {
				return nil, grammarErrorf(lineNo, "misplaced board row: %q", trimmed)
			}
			m := gridRowRe.FindStringSubmatch(trimmed)
			if want := len(gridRows) + 1; m[1] != string(rune('0'+want)) {
				return nil, grammarErrorf(lineNo, "board row out of order: got P%s, want P%d", m[1], want)
			}
			row := newNode(nodeGridRow, m[1], lineNo)
			cells, err := gridCellNodes(m[2], lineNo)
			if err != nil {
				return nil, err
			}
			row.add(cells...)
			position(lineNo)
			gridRows = append(gridRows, row)

		case trimmed == "+" || trimmed == "-":
			if sawSide || phase == phaseMoves {
				return nil, grammarErrorf(lineNo, "unexpected side-to-move line")
			}
			if err := finishGrid(); err != nil {
				return nil, err
			}
			sawSide = true
			phase = phaseMoves
			root.add(newNode(nodeSideToMove, trimmed, lineNo).add(newNode(nodeColor, trimmed, lineNo)))

		case moveLineRe.MatchString(trimmed):
			m := moveLineRe.FindStringSubmatch(trimmed)
			if _, ok := pieceTypeFromCode(m[4]); !ok {
				return nil, grammarErrorf(lineNo, "unknown piece code %q in %q", m[4], trimmed)
			}
			mv := newNode(nodeNormalMove, trimmed, lineNo)
			mv.add(
				newNode(nodeColor, m[1], lineNo),
				newNode(nodeSquare, m[2], lineNo),
				newNode(nodeSquare, m[3], lineNo),
				newNode(nodePieceType, m[4], lineNo),
			)
			moveSection, err := moves(lineNo)
			if err != nil {
				return nil, err
			}
			moveSection.add(newNode(nodeMoveRecord, trimmed, lineNo).add(mv))

		case strings.HasPrefix(trimmed, "%"):
			moveSection, err := moves(lineNo)
			if err != nil {
				return nil, err
			}
			special := newNode(nodeSpecialMove, trimmed, lineNo)
			moveSection.add(newNode(nodeMoveRecord, trimmed, lineNo).add(special))

		case strings.HasPrefix(trimmed, "T"):
			re := timeLineRe
			if d.fractionalTime {
				re = timeMilliLineRe
			}
			m := re.FindStringSubmatch(trimmed)
			if m == nil {
				return nil, grammarErrorf(lineNo, "malformed elapsed-time line: %q", trimmed)
			}
			moveSection, err := moves(lineNo)
			if err != nil {
				return nil, err
			}
			tc := newNode(nodeTimeConsumed, trimmed, lineNo)
			tc.add(newNode(nodeSecondsConsumed, m[1], lineNo))
			moveSection.add(tc)

		default:
			return nil, grammarErrorf(lineNo, "unrecognized line: %q", trimmed)
		}
	}

	if !sawVersion {
		return nil, grammarErrorf(0, "expected version line %q", d.token)
	}
	if err := finishGrid(); err != nil {
		return nil, err
	}
	return root, nil
}

// attrValueNode classifies an attribute value as a structured datetime, a
// structured time limit, or free text. Downstream handlers accept a value
// arriving via either the structured or the free-text path.
func attrValueNode(value string, line int) *node {
	v := newNode(nodeAttrValue, value, line)
	if m := datetimeRe.FindStringSubmatch(value); m != nil {
		dt := newNode(nodeDatetime, value, line)
		dt.add(newNode(nodeDate, m[1], line))
		if m[2] != "" {
			dt.add(newNode(nodeTime, m[2], line))
		}
		return v.add(dt)
	}
	if m := timelimitRe.FindStringSubmatch(value); m != nil {
		tl := newNode(nodeTimelimit, value, line)
		tl.add(
			newNode(nodeTimelimitHours, m[1], line),
			newNode(nodeTimelimitMinutes, m[2], line),
			newNode(nodeTimelimitByoyomi, m[3], line),
		)
		return v.add(tl)
	}
	return v.add(newNode(nodeAttrText, value, line))
}

// pairNodes splits a run of (square)(piece) 4-char groups into child nodes
// of the given kind.
func pairNodes(pairs string, kind nodeKind, line int) ([]*node, *ParseError) {
	var nodes []*node
	for i := 0; i+4 <= len(pairs); i += 4 {
		sq := pairs[i : i+2]
		pc := pairs[i+2 : i+4]
		if _, ok := pieceTypeFromCode(pc); !ok {
			return nil, grammarErrorf(line, "unknown piece code %q", pc)
		}
		n := newNode(kind, pairs[i:i+4], line)
		n.add(newNode(nodeSquare, sq, line), newNode(nodePieceType, pc, line))
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// gridCellNodes splits a board row body into 3-char cells: " * " is empty,
// a signed piece code is occupied. Line trimming may have eaten the trailing
// space of a final empty cell, so the body is padded back to a 3-byte
// multiple first.
func gridCellNodes(body string, line int) ([]*node, *ParseError) {
	for len(body)%3 != 0 {
		body += " "
	}
	var cells []*node
	for i := 0; i < len(body); i += 3 {
		chunk := body[i : i+3]
		cell := newNode(nodeGridCell, chunk, line)
		if chunk == " * " {
			cell.add(newNode(nodeGridEmpty, chunk, line))
			cells = append(cells, cell)
			continue
		}
		m := gridPieceRe.FindStringSubmatch(chunk)
		if m == nil {
			return nil, grammarErrorf(line, "malformed board cell %q", chunk)
		}
		if _, ok := pieceTypeFromCode(m[2]); !ok {
			return nil, grammarErrorf(line, "unknown piece code %q", m[2])
		}
		piece := newNode(nodeGridPiece, chunk, line)
		piece.add(newNode(nodeColor, m[1], line), newNode(nodePieceType, m[2], line))
		cell.add(piece)
		cells = append(cells, cell)
	}
	return cells, nil
}

// resolveGrid picks the board shape by ordered choice: the standard 9x9
// first, then the reduced shapes where the dialect allows them.
func resolveGrid(rows []*node, d *dialect) (*node, *ParseError) {
	minWidth := len(rows[0].children)
	for _, row := range rows[1:] {
		if len(row.children) < minWidth {
			minWidth = len(row.children)
		}
	}

	var kind nodeKind
	switch {
	case len(rows) == 9 && minWidth >= 9:
		kind = nodeGrid
	case d.reducedGrids && len(rows) == 5 && minWidth >= 5:
		kind = nodeMiniGrid
	case d.reducedGrids && len(rows) == 5 && minWidth >= 3:
		kind = nodeWildcatGrid
	default:
		return nil, grammarErrorf(rows[0].line, "malformed board grid: %d rows, narrowest row %d cells", len(rows), minWidth)
	}

	grid := newNode(kind, "", rows[0].line)
	grid.add(rows...)
	return grid, nil
}
