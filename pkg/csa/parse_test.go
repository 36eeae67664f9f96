package csa_test

import (
	"path/filepath"
	"testing"
	"time"

	csa "github.com/Arborescent/shogi-kifu/pkg/csa"
)

func mustParse(t *testing.T, input string) *csa.GameRecord {
	t.Helper()
	rec, err := csa.Parse(input)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	return rec
}

func TestParseFullGame(t *testing.T) {
	rec := mustParse(t, "V2.2\nN+NAKAHARA\nN-YONENAGA\n$EVENT:Test\nPI\n+\n+2726FU\nT12\n%TORYO\n")

	if rec.Version != csa.V22 {
		t.Fatalf("version: got %s want V2.2", rec.Version)
	}
	if rec.BlackPlayer != "NAKAHARA" {
		t.Fatalf("black player: got %q want NAKAHARA", rec.BlackPlayer)
	}
	if rec.WhitePlayer != "YONENAGA" {
		t.Fatalf("white player: got %q want YONENAGA", rec.WhitePlayer)
	}
	if rec.Event != "Test" {
		t.Fatalf("event: got %q want Test", rec.Event)
	}
	if rec.StartPos.SideToMove != csa.Black {
		t.Fatalf("side to move: got %v want Black", rec.StartPos.SideToMove)
	}
	if len(rec.Moves) != 2 {
		t.Fatalf("move count: got %d want 2", len(rec.Moves))
	}

	mv := rec.Moves[0]
	want := csa.MoveAction(csa.Black, csa.NewSquare(2, 7), csa.NewSquare(2, 6), csa.Pawn)
	if mv.Action != want {
		t.Fatalf("first move: got %+v want %+v", mv.Action, want)
	}
	if !mv.HasElapsed || mv.Elapsed != 12*time.Second {
		t.Fatalf("first move elapsed: got %v (has=%v) want 12s", mv.Elapsed, mv.HasElapsed)
	}

	end := rec.Moves[1]
	if end.Action.Kind != csa.ActionToryo {
		t.Fatalf("ending: got %+v want resignation", end.Action)
	}
	if end.HasElapsed {
		t.Fatalf("ending carries elapsed time %v", end.Elapsed)
	}
}

func TestParseTerminalEventWithoutTrailingNewline(t *testing.T) {
	withNewline := mustParse(t, "V2.2\nPI\n+\n+7776FU\n%TSUMI\n")
	withoutNewline := mustParse(t, "V2.2\nPI\n+\n+7776FU\n%TSUMI")

	for name, rec := range map[string]*csa.GameRecord{"with": withNewline, "without": withoutNewline} {
		if len(rec.Moves) != 2 {
			t.Fatalf("%s trailing newline: move count got %d want 2", name, len(rec.Moves))
		}
		if rec.Moves[1].Action.Kind != csa.ActionTsumi {
			t.Fatalf("%s trailing newline: ending got %+v want checkmate", name, rec.Moves[1].Action)
		}
		if rec.Moves[1].HasElapsed {
			t.Fatalf("%s trailing newline: ending carries elapsed time", name)
		}
	}
}

func TestParseDropMove(t *testing.T) {
	rec := mustParse(t, "V2\nPI\n-\n-0053FU\n")
	if len(rec.Moves) != 1 {
		t.Fatalf("move count: got %d want 1", len(rec.Moves))
	}
	got := rec.Moves[0].Action
	want := csa.MoveAction(csa.White, csa.NewSquare(0, 0), csa.NewSquare(5, 3), csa.Pawn)
	if got != want {
		t.Fatalf("drop move: got %+v want %+v", got, want)
	}
	if !got.From.IsDrop() {
		t.Fatalf("origin %+v not recognized as drop", got.From)
	}
}

func TestParseSignedIllegalAction(t *testing.T) {
	cases := []struct {
		token string
		kind  csa.ActionKind
		color csa.Color
	}{
		{"%+ILLEGAL_ACTION", csa.ActionIllegalAction, csa.Black},
		{"%-ILLEGAL_ACTION", csa.ActionIllegalAction, csa.White},
		{"%ILLEGAL_MOVE", csa.ActionIllegalMove, csa.Black},
	}
	for _, tc := range cases {
		rec := mustParse(t, "V3.0\nPI\n+\n"+tc.token+"\n")
		action := rec.Moves[0].Action
		if action.Kind != tc.kind {
			t.Fatalf("%s: kind got %d want %d", tc.token, action.Kind, tc.kind)
		}
		if action.Kind == csa.ActionIllegalAction && action.Color != tc.color {
			t.Fatalf("%s: color got %v want %v", tc.token, action.Color, tc.color)
		}
	}
}

func TestParseEventVocabularyByDialect(t *testing.T) {
	// MATTA exists only in the two oldest revisions; MAX_MOVES only in the
	// newest. Outside its dialect a token classifies as unrecognized, never
	// as some other event.
	cases := []struct {
		version string
		token   string
		want    csa.ActionKind
	}{
		{"V2", "%MATTA", csa.ActionMatta},
		{"V2.1", "%MATTA", csa.ActionMatta},
		{"V2.2", "%MATTA", csa.ActionUnrecognized},
		{"V3.0", "%MATTA", csa.ActionUnrecognized},
		{"V3.0", "%MAX_MOVES", csa.ActionMaxMoves},
		{"V2.2", "%MAX_MOVES", csa.ActionUnrecognized},
		{"V2", "%MAX_MOVES", csa.ActionUnrecognized},
		{"V2", "%KACHI", csa.ActionKachi},
		{"V3.0", "%SOMETHING_ELSE", csa.ActionUnrecognized},
	}
	for _, tc := range cases {
		rec := mustParse(t, tc.version+"\nPI\n+\n"+tc.token+"\n")
		action := rec.Moves[0].Action
		if action.Kind != tc.want {
			t.Fatalf("%s %s: kind got %d want %d", tc.version, tc.token, action.Kind, tc.want)
		}
		if tc.want == csa.ActionUnrecognized && action.Token != tc.token {
			t.Fatalf("%s %s: raw token got %q", tc.version, tc.token, action.Token)
		}
	}
}

func TestParseVersionMismatch(t *testing.T) {
	_, err := csa.ParseVersion(csa.V2, "V2.2\nPI\n+\n")
	perr, ok := err.(*csa.ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Kind != csa.GrammarViolation {
		t.Fatalf("error kind: got %d want GrammarViolation", perr.Kind)
	}
	if perr.Line != 1 {
		t.Fatalf("error line: got %d want 1", perr.Line)
	}
}

func TestParseEncodingCommentImpliesVersion(t *testing.T) {
	rec := mustParse(t, "'CSA encoding=UTF-8\nPI\n+\n+7776FU\n")
	if rec.Version != csa.V30 {
		t.Fatalf("version: got %s want V3.0", rec.Version)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	inputs := []string{
		"V2\nPI\n+\nwhat is this\n",
		"V2\nPI\n+\n+7776XX\n",
		"V2\n+7776FU\nN+LATE\n",
		"V2\nP1 *  * \nPI\n+\n",
		"V2\nP2-KY * \n+\n",
	}
	for _, input := range inputs {
		rec, err := csa.Parse(input)
		if err == nil {
			t.Fatalf("accepted malformed input %q: %+v", input, rec)
		}
		if _, ok := err.(*csa.ParseError); !ok {
			t.Fatalf("error type for %q: got %T", input, err)
		}
	}
}

func TestLoadFile(t *testing.T) {
	rec, err := csa.LoadFile(filepath.Join("testdata", "full_game.csa"))
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if rec.BlackPlayer != "NAKAHARA" || rec.WhitePlayer != "YONENAGA" {
		t.Fatalf("players: got %q vs %q", rec.BlackPlayer, rec.WhitePlayer)
	}
	if len(rec.Moves) != 2 {
		t.Fatalf("move count: got %d want 2", len(rec.Moves))
	}
}

func TestLoadFileVersionless(t *testing.T) {
	_, err := csa.LoadFile(filepath.Join("testdata", "versionless.csa"))
	perr, ok := err.(*csa.ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Kind != csa.UnknownDialect {
		t.Fatalf("error kind: got %d want UnknownDialect", perr.Kind)
	}
}
