package csa

import "time"

// Move-stream assembler: folds the flat action / elapsed-time node sequence
// into move records. One pending action slot pairs each action with the
// timing line that follows it, if any.

func assembleMoves(n *node, d *dialect) []MoveRecord {
	var moves []MoveRecord
	var pending *Action

	for _, inner := range n.children {
		switch inner.kind {
		case nodeMoveRecord:
			if pending != nil {
				moves = append(moves, MoveRecord{Action: *pending})
			}
			action := moveRecordAction(inner, d)
			pending = &action
		case nodeTimeConsumed:
			// A timing line with no pending action cannot occur under a
			// well-formed grammar; it is ignored.
			if pending != nil {
				moves = append(moves, MoveRecord{
					Action:     *pending,
					Elapsed:    elapsedOf(inner),
					HasElapsed: true,
				})
				pending = nil
			}
		}
	}

	// A still-pending action at end of input flushes without timing. This is
	// what lets a terminal event on the last line of the file, with no
	// trailing newline, still produce a move record.
	if pending != nil {
		moves = append(moves, MoveRecord{Action: *pending})
	}
	return moves
}

func moveRecordAction(n *node, d *dialect) Action {
	for _, inner := range n.children {
		switch inner.kind {
		case nodeNormalMove:
			return normalMoveAction(inner)
		case nodeSpecialMove:
			return d.classifySpecial(inner.text)
		}
	}
	return Action{Kind: ActionUnrecognized, Token: n.text}
}

func normalMoveAction(n *node) Action {
	action := Action{Kind: ActionMove}
	squares := 0
	for _, inner := range n.children {
		switch inner.kind {
		case nodeColor:
			action.Color = parseColor(inner.text)
		case nodeSquare:
			if squares == 0 {
				action.From = parseSquareText(inner.text)
			} else {
				action.To = parseSquareText(inner.text)
			}
			squares++
		case nodePieceType:
			action.Piece, _ = pieceTypeFromCode(inner.text)
		}
	}
	return action
}

func elapsedOf(n *node) time.Duration {
	if secs := n.child(nodeSecondsConsumed); secs != nil {
		return parseElapsed(secs.text)
	}
	return 0
}
