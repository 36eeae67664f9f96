package csa

import "time"

// Version selects one of the four supported CSA notation revisions.
type Version int

const (
	V2 Version = iota
	V21
	V22
	V30
)

func (v Version) String() string {
	switch v {
	case V2:
		return "V2"
	case V21:
		return "V2.1"
	case V22:
		return "V2.2"
	case V30:
		return "V3.0"
	default:
		return "V?"
	}
}

// Color is the side to move. Black moves first.
type Color int

const (
	Black Color = iota
	White
)

func (c Color) Sign() string {
	if c == White {
		return "-"
	}
	return "+"
}

// PieceType is the closed set of piece kinds. Promoted pieces are distinct
// values. All is the wildcard used in handicap removal lists only.
type PieceType int

const (
	Pawn PieceType = iota
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King
	ProPawn
	ProLance
	ProKnight
	ProSilver
	Horse
	Dragon
	All
)

// Square is a board coordinate. The zero square (0,0) is the drop sentinel:
// it only appears as the origin of a drop move, never as a board cell.
type Square struct {
	File uint8
	Rank uint8
}

func NewSquare(file, rank uint8) Square {
	return Square{File: file, Rank: rank}
}

// IsDrop reports whether the square is the in-hand sentinel.
func (s Square) IsDrop() bool {
	return s.File == 0 && s.Rank == 0
}

// ActionKind tags the variants of an Action. The set is the union over all
// dialects; each dialect's classifier recognizes only its own subset.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionToryo
	ActionChudan
	ActionSennichite
	ActionTimeUp
	ActionIllegalMove
	ActionIllegalAction
	ActionJishogi
	ActionKachi
	ActionHikiwake
	ActionMatta
	ActionTsumi
	ActionFuzumi
	ActionMaxMoves
	ActionUnrecognized
)

// Action is one event in the move stream: either a move or a terminal /
// administrative event. Color is meaningful for ActionMove and
// ActionIllegalAction; From, To and Piece only for ActionMove. Token holds
// the raw event text for ActionUnrecognized.
type Action struct {
	Kind  ActionKind
	Color Color
	From  Square
	To    Square
	Piece PieceType
	Token string
}

// MoveAction builds a normal move action.
func MoveAction(color Color, from, to Square, piece PieceType) Action {
	return Action{Kind: ActionMove, Color: color, From: from, To: to, Piece: piece}
}

// MoveRecord is one line item of the game: an action plus the elapsed time
// of the timing line that followed it, if any.
type MoveRecord struct {
	Action     Action
	Elapsed    time.Duration
	HasElapsed bool
}

// Time is a calendar date with an optional clock time.
type Time struct {
	Year     int
	Month    time.Month
	Day      int
	Hour     int
	Minute   int
	Second   int
	HasClock bool
}

// TimeLimit is the game clock configuration: a main allotment plus a
// per-move byoyomi grace period.
type TimeLimit struct {
	MainTime time.Duration
	Byoyomi  time.Duration
}

// BoardPiece is an occupied grid cell.
type BoardPiece struct {
	Color Color
	Piece PieceType
}

// Grid is the standard 9x9 board, row-major from rank 1. Nil cells are empty.
type Grid [9][9]*BoardPiece

// MiniGrid is the 5x5 reduced board (minishogi), V2.2 only.
type MiniGrid [5][5]*BoardPiece

// WildcatGrid is the 3-file, 5-rank reduced board (wild cat shogi), V2.2 only.
type WildcatGrid [5][3]*BoardPiece

// HandicapPiece is one removal directive from the standard starting position.
type HandicapPiece struct {
	Square Square
	Piece  PieceType
}

// Placement is one explicit piece placement from a P+/P- line.
type Placement struct {
	Color  Color
	Square Square
	Piece  PieceType
}

// Position is the starting board state. At most one of Grid, MiniGrid and
// WildcatGrid is set; Placements may accompany a grid or stand alone.
type Position struct {
	Handicap    []HandicapPiece
	Grid        *Grid
	MiniGrid    *MiniGrid
	WildcatGrid *WildcatGrid
	Placements  []Placement
	SideToMove  Color
}

// GameRecord is one parsed game. Fields the input omitted stay at their
// zero values; Moves preserves file order.
type GameRecord struct {
	Version     Version
	BlackPlayer string
	WhitePlayer string
	Event       string
	Site        string
	Opening     string
	StartTime   *Time
	EndTime     *Time
	TimeLimit   *TimeLimit
	StartPos    Position
	Moves       []MoveRecord
}
