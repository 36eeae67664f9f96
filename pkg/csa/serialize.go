package csa

import (
	"fmt"
	"strings"
	"time"
)

// String renders the record back to its dialect's canonical text form.
// Re-parsing the output reproduces the same starting position and move
// sequence.
func (r *GameRecord) String() string {
	var b strings.Builder

	b.WriteString(r.Version.String())
	b.WriteByte('\n')

	if r.BlackPlayer != "" {
		fmt.Fprintf(&b, "N+%s\n", r.BlackPlayer)
	}
	if r.WhitePlayer != "" {
		fmt.Fprintf(&b, "N-%s\n", r.WhitePlayer)
	}
	if r.Event != "" {
		fmt.Fprintf(&b, "$EVENT:%s\n", r.Event)
	}
	if r.Site != "" {
		fmt.Fprintf(&b, "$SITE:%s\n", r.Site)
	}
	if r.Opening != "" {
		fmt.Fprintf(&b, "$OPENING:%s\n", r.Opening)
	}
	if r.StartTime != nil {
		fmt.Fprintf(&b, "$START_TIME:%s\n", r.StartTime)
	}
	if r.EndTime != nil {
		fmt.Fprintf(&b, "$END_TIME:%s\n", r.EndTime)
	}
	if r.TimeLimit != nil {
		fmt.Fprintf(&b, "$TIME_LIMIT:%s\n", r.TimeLimit)
	}

	writePosition(&b, &r.StartPos)
	b.WriteString(r.StartPos.SideToMove.Sign())
	b.WriteByte('\n')

	for _, mv := range r.Moves {
		b.WriteString(actionText(mv.Action))
		b.WriteByte('\n')
		if mv.HasElapsed {
			b.WriteString(elapsedText(mv.Elapsed))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (t *Time) String() string {
	s := fmt.Sprintf("%04d/%02d/%02d", t.Year, int(t.Month), t.Day)
	if t.HasClock {
		s += fmt.Sprintf(" %02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return s
}

func (l *TimeLimit) String() string {
	hours := int(l.MainTime / time.Hour)
	minutes := int(l.MainTime % time.Hour / time.Minute)
	byoyomi := int(l.Byoyomi / time.Second)
	return fmt.Sprintf("%02d:%02d+%d", hours, minutes, byoyomi)
}

func writePosition(b *strings.Builder, pos *Position) {
	hasGrid := pos.Grid != nil || pos.MiniGrid != nil || pos.WildcatGrid != nil

	if len(pos.Handicap) > 0 || (!hasGrid && len(pos.Placements) == 0) {
		b.WriteString("PI")
		for _, h := range pos.Handicap {
			b.WriteString(squareText(h.Square))
			b.WriteString(pieceCode(h.Piece))
		}
		b.WriteByte('\n')
	}

	switch {
	case pos.Grid != nil:
		for i := range pos.Grid {
			writeGridRow(b, i+1, pos.Grid[i][:])
		}
	case pos.MiniGrid != nil:
		for i := range pos.MiniGrid {
			writeGridRow(b, i+1, pos.MiniGrid[i][:])
		}
	case pos.WildcatGrid != nil:
		for i := range pos.WildcatGrid {
			writeGridRow(b, i+1, pos.WildcatGrid[i][:])
		}
	}

	for i := 0; i < len(pos.Placements); {
		color := pos.Placements[i].Color
		b.WriteString("P")
		b.WriteString(color.Sign())
		for i < len(pos.Placements) && pos.Placements[i].Color == color {
			b.WriteString(squareText(pos.Placements[i].Square))
			b.WriteString(pieceCode(pos.Placements[i].Piece))
			i++
		}
		b.WriteByte('\n')
	}
}

func writeGridRow(b *strings.Builder, rank int, cells []*BoardPiece) {
	fmt.Fprintf(b, "P%d", rank)
	for _, cell := range cells {
		if cell == nil {
			b.WriteString(" * ")
			continue
		}
		b.WriteString(cell.Color.Sign())
		b.WriteString(pieceCode(cell.Piece))
	}
	b.WriteByte('\n')
}

func actionText(a Action) string {
	switch a.Kind {
	case ActionMove:
		return a.Color.Sign() + squareText(a.From) + squareText(a.To) + pieceCode(a.Piece)
	case ActionUnrecognized:
		return a.Token
	default:
		return "%" + a.EventToken()
	}
}

// EventToken returns the wire token of a terminal event without the leading
// percent sign, or "" for a normal move.
func (a Action) EventToken() string {
	switch a.Kind {
	case ActionMove:
		return ""
	case ActionIllegalAction:
		return a.Color.Sign() + "ILLEGAL_ACTION"
	case ActionUnrecognized:
		return strings.TrimPrefix(a.Token, "%")
	default:
		return eventTokenName(a.Kind)
	}
}

func eventTokenName(kind ActionKind) string {
	switch kind {
	case ActionToryo:
		return "TORYO"
	case ActionChudan:
		return "CHUDAN"
	case ActionSennichite:
		return "SENNICHITE"
	case ActionTimeUp:
		return "TIME_UP"
	case ActionIllegalMove:
		return "ILLEGAL_MOVE"
	case ActionJishogi:
		return "JISHOGI"
	case ActionKachi:
		return "KACHI"
	case ActionHikiwake:
		return "HIKIWAKE"
	case ActionMatta:
		return "MATTA"
	case ActionTsumi:
		return "TSUMI"
	case ActionFuzumi:
		return "FUZUMI"
	case ActionMaxMoves:
		return "MAX_MOVES"
	default:
		return ""
	}
}

func elapsedText(d time.Duration) string {
	secs := int64(d / time.Second)
	ms := int64(d/time.Millisecond) % 1000
	if ms == 0 {
		return fmt.Sprintf("T%d", secs)
	}
	frac := strings.TrimRight(fmt.Sprintf("%03d", ms), "0")
	return fmt.Sprintf("T%d.%s", secs, frac)
}
