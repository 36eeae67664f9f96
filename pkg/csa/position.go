package csa

// Position assembler: merges the handicap list, at most one board grid and
// the piece-placement lines into one starting position. The grammar
// guarantees at most one grid node, so the mutual exclusion among the three
// grid encodings holds by construction.

func assemblePosition(n *node) Position {
	var pos Position
	for _, inner := range n.children {
		switch inner.kind {
		case nodeHandicap:
			pos.Handicap = handicapPieces(inner)
		case nodeGrid:
			pos.Grid = standardGrid(inner)
		case nodeMiniGrid:
			pos.MiniGrid = miniGrid(inner)
		case nodeWildcatGrid:
			pos.WildcatGrid = wildcatGrid(inner)
		case nodePlacementLines:
			pos.Placements = placementList(inner)
		}
	}
	return pos
}

func handicapPieces(n *node) []HandicapPiece {
	var pieces []HandicapPiece
	for _, inner := range n.children {
		if inner.kind != nodeHandicapPiece {
			continue
		}
		piece := HandicapPiece{}
		for _, field := range inner.children {
			switch field.kind {
			case nodeSquare:
				piece.Square = parseSquareText(field.text)
			case nodePieceType:
				piece.Piece, _ = pieceTypeFromCode(field.text)
			}
		}
		pieces = append(pieces, piece)
	}
	return pieces
}

func gridCellPiece(cell *node) *BoardPiece {
	p := cell.child(nodeGridPiece)
	if p == nil {
		return nil
	}
	piece := &BoardPiece{}
	for _, field := range p.children {
		switch field.kind {
		case nodeColor:
			piece.Color = parseColor(field.text)
		case nodePieceType:
			piece.Piece, _ = pieceTypeFromCode(field.text)
		}
	}
	return piece
}

// fillRow writes up to width cells of a row node into set; excess cells are
// ignored.
func fillRow(row *node, width int, set func(col int, piece *BoardPiece)) {
	col := 0
	for _, cell := range row.children {
		if cell.kind != nodeGridCell || col >= width {
			continue
		}
		set(col, gridCellPiece(cell))
		col++
	}
}

func standardGrid(n *node) *Grid {
	grid := &Grid{}
	for r, row := range n.children {
		if r >= 9 {
			break
		}
		rowIdx := r
		fillRow(row, 9, func(col int, piece *BoardPiece) {
			grid[rowIdx][col] = piece
		})
	}
	return grid
}

func miniGrid(n *node) *MiniGrid {
	grid := &MiniGrid{}
	for r, row := range n.children {
		if r >= 5 {
			break
		}
		rowIdx := r
		fillRow(row, 5, func(col int, piece *BoardPiece) {
			grid[rowIdx][col] = piece
		})
	}
	return grid
}

func wildcatGrid(n *node) *WildcatGrid {
	grid := &WildcatGrid{}
	for r, row := range n.children {
		if r >= 5 {
			break
		}
		rowIdx := r
		fillRow(row, 3, func(col int, piece *BoardPiece) {
			grid[rowIdx][col] = piece
		})
	}
	return grid
}

func placementList(n *node) []Placement {
	var placements []Placement
	for _, line := range n.children {
		if line.kind != nodePlacement {
			continue
		}
		color := Black
		for _, inner := range line.children {
			switch inner.kind {
			case nodeColor:
				color = parseColor(inner.text)
			case nodePlacementPiece:
				placement := Placement{Color: color}
				for _, field := range inner.children {
					switch field.kind {
					case nodeSquare:
						placement.Square = parseSquareText(field.text)
					case nodePieceType:
						placement.Piece, _ = pieceTypeFromCode(field.text)
					}
				}
				placements = append(placements, placement)
			}
		}
	}
	return placements
}
