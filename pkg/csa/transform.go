package csa

import "strings"

// Semantic transformer: one depth-first walk over the root node's children,
// shared by all four dialects and parameterized by the capability table.
// Transformation is total: every tree shape the grammar admits has a
// defined mapping, so this never fails.

func transformRecord(root *node, d *dialect) *GameRecord {
	rec := &GameRecord{Version: d.version}

	for _, n := range root.children {
		switch n.kind {
		case nodeBlackPlayer:
			rec.BlackPlayer = playerName(n)
		case nodeWhitePlayer:
			rec.WhitePlayer = playerName(n)
		case nodeGameAttr:
			applyGameAttr(rec, n)
		case nodePosition:
			side := rec.StartPos.SideToMove
			rec.StartPos = assemblePosition(n)
			rec.StartPos.SideToMove = side
		case nodeSideToMove:
			if c := n.child(nodeColor); c != nil {
				rec.StartPos.SideToMove = parseColor(c.text)
			}
		case nodeMoveRecords:
			rec.Moves = assembleMoves(n, d)
		}
	}
	return rec
}

// playerName extracts a trimmed player name; an empty name token means the
// name is absent.
func playerName(n *node) string {
	name := n.child(nodePlayerName)
	if name == nil {
		return ""
	}
	return strings.TrimSpace(name.text)
}

func applyGameAttr(rec *GameRecord, n *node) {
	key := ""
	if k := n.child(nodeAttrKey); k != nil {
		key = k.text
	}
	value := n.child(nodeAttrValue)
	if value == nil {
		return
	}

	for _, inner := range value.children {
		switch inner.kind {
		case nodeDatetime:
			t := parseDatetimeNode(inner)
			switch key {
			case "START_TIME":
				rec.StartTime = t
			case "END_TIME":
				rec.EndTime = t
			}
		case nodeTimelimit:
			if key == "TIME_LIMIT" {
				rec.TimeLimit = parseTimeLimitNode(inner)
			}
		case nodeAttrText:
			text := inner.text
			switch key {
			case "EVENT":
				rec.Event = text
			case "SITE":
				rec.Site = text
			case "OPENING":
				rec.Opening = text
			case "START_TIME":
				rec.StartTime = parseDatetimeText(text)
			case "END_TIME":
				rec.EndTime = parseDatetimeText(text)
			case "TIME_LIMIT":
				rec.TimeLimit = parseTimeLimitText(text)
			}
			// Unknown attribute keys are ignored, not errors.
		}
	}
}
