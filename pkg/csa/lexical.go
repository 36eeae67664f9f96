package csa

import (
	"strconv"
	"strings"
	"time"
)

// Pure token-to-value converters shared by every dialect.

func parseColor(s string) Color {
	if s == "-" {
		return White
	}
	return Black
}

var pieceCodes = map[string]PieceType{
	"FU": Pawn,
	"KY": Lance,
	"KE": Knight,
	"GI": Silver,
	"KI": Gold,
	"KA": Bishop,
	"HI": Rook,
	"OU": King,
	"TO": ProPawn,
	"NY": ProLance,
	"NK": ProKnight,
	"NG": ProSilver,
	"UM": Horse,
	"RY": Dragon,
	"AL": All,
}

func pieceTypeFromCode(s string) (PieceType, bool) {
	p, ok := pieceCodes[s]
	return p, ok
}

func pieceCode(p PieceType) string {
	for code, piece := range pieceCodes {
		if piece == p {
			return code
		}
	}
	return "FU"
}

// parseSquareText converts a two-digit token to a square. "00" is the drop
// sentinel.
func parseSquareText(s string) Square {
	if len(s) != 2 {
		return Square{}
	}
	return Square{File: s[0] - '0', Rank: s[1] - '0'}
}

func squareText(s Square) string {
	return string([]byte{'0' + s.File, '0' + s.Rank})
}

// parseElapsed converts an elapsed-time token to a duration. A fractional
// suffix of 1-3 digits means tenths, hundredths or thousandths of a second;
// the grammar only admits it in the newest dialect.
func parseElapsed(text string) time.Duration {
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		secs := atoiDefault(text[:dot])
		frac := text[dot+1:]
		ms := atoiDefault(frac)
		switch len(frac) {
		case 1:
			ms *= 100
		case 2:
			ms *= 10
		case 3:
		default:
			ms = 0
		}
		return time.Duration(secs)*time.Second + time.Duration(ms)*time.Millisecond
	}
	return time.Duration(atoiDefault(text)) * time.Second
}

func atoiDefault(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
