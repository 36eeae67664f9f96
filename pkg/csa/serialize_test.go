package csa_test

import (
	"reflect"
	"testing"

	csa "github.com/Arborescent/shogi-kifu/pkg/csa"
)

func reparse(t *testing.T, rec *csa.GameRecord) *csa.GameRecord {
	t.Helper()
	again, err := csa.Parse(rec.String())
	if err != nil {
		t.Fatalf("failed to re-parse serialized record: %v\n%s", err, rec)
	}
	return again
}

func TestRoundTripFullGame(t *testing.T) {
	rec := mustParse(t, "V2.2\nN+NAKAHARA\nN-YONENAGA\n$EVENT:Test\n$TIME_LIMIT:00:25+60\nPI\n+\n+2726FU\nT12\n%TORYO\n")
	again := reparse(t, rec)
	if !reflect.DeepEqual(rec, again) {
		t.Fatalf("round trip diverged:\ngot  %+v\nwant %+v", again, rec)
	}
}

func TestRoundTripStandardGrid(t *testing.T) {
	rec := mustParse(t, "V2\n"+standardGridBody+"+\n+7776FU\n")
	again := reparse(t, rec)
	if !reflect.DeepEqual(rec.StartPos.Grid, again.StartPos.Grid) {
		t.Fatalf("9x9 grid diverged after round trip")
	}
}

func TestRoundTripReducedGrids(t *testing.T) {
	mini := mustParse(t, "V2.2\n"+miniGridBody+"+\n")
	if again := reparse(t, mini); !reflect.DeepEqual(mini.StartPos.MiniGrid, again.StartPos.MiniGrid) {
		t.Fatalf("5x5 grid diverged after round trip")
	}

	wildcat := mustParse(t, "V2.2\n"+wildcatGridBody+"-\n")
	again := reparse(t, wildcat)
	if !reflect.DeepEqual(wildcat.StartPos.WildcatGrid, again.StartPos.WildcatGrid) {
		t.Fatalf("3x5 grid diverged after round trip")
	}
	if again.StartPos.SideToMove != csa.White {
		t.Fatalf("side to move diverged: got %v", again.StartPos.SideToMove)
	}
}

func TestRoundTripPlacements(t *testing.T) {
	rec := mustParse(t, "V2\nP+59OU28HI\nP-51OU82HI\n-\n")
	again := reparse(t, rec)
	if !reflect.DeepEqual(rec, again) {
		t.Fatalf("placement round trip diverged:\ngot  %+v\nwant %+v", again, rec)
	}
}

func TestRoundTripTemporalAttributes(t *testing.T) {
	rec := mustParse(t, "V3.0\n$START_TIME:2024/05/03 09:30:00\n$END_TIME:2024/05/03\n$TIME_LIMIT:02:00+30\nPI\n+\n+7776FU\nT15.123\n%KACHI\n")
	again := reparse(t, rec)
	if !reflect.DeepEqual(rec, again) {
		t.Fatalf("round trip diverged:\ngot  %+v\nwant %+v", again, rec)
	}
}

func TestSerializeEvents(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"V2\nPI\n+\n%TORYO\n", "%TORYO"},
		{"V3.0\nPI\n+\n%MAX_MOVES\n", "%MAX_MOVES"},
		{"V3.0\nPI\n+\n%+ILLEGAL_ACTION\n", "%+ILLEGAL_ACTION"},
		{"V3.0\nPI\n+\n%-ILLEGAL_ACTION\n", "%-ILLEGAL_ACTION"},
		{"V3.0\nPI\n+\n%SOMETHING_ELSE\n", "%SOMETHING_ELSE"},
	}
	for _, tc := range cases {
		rec := mustParse(t, tc.input)
		again := reparse(t, rec)
		if len(again.Moves) != 1 {
			t.Fatalf("%q: move count got %d want 1", tc.input, len(again.Moves))
		}
		if again.Moves[0].Action != rec.Moves[0].Action {
			t.Fatalf("%q: action diverged: got %+v want %+v", tc.input, again.Moves[0].Action, rec.Moves[0].Action)
		}
		if got := "%" + again.Moves[0].Action.EventToken(); got != tc.want {
			t.Fatalf("%q: event token got %q want %q", tc.input, got, tc.want)
		}
	}
}
