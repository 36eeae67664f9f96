package csa

import "strings"

// dialect is the per-revision capability table: the version token the
// grammar expects, which board shapes its grid section may take, the
// precision of elapsed-time tokens, and the event vocabulary the classifier
// recognizes. The four dialects share one grammar engine and one
// transformer; everything revision-specific lives here.
type dialect struct {
	version        Version
	token          string
	reducedGrids   bool
	fractionalTime bool
	events         []eventRule
}

// eventRule maps an event-token substring to an action. Rules are checked in
// slice order, so this is an explicit priority list: the signed
// ILLEGAL_ACTION entries must stay ahead of anything that could match their
// unsigned suffix, and ILLEGAL_MOVE ahead of both.
type eventRule struct {
	substr   string
	kind     ActionKind
	color    Color
	hasColor bool
}

func eventRules(v Version) []eventRule {
	rules := []eventRule{
		{substr: "TORYO", kind: ActionToryo},
		{substr: "CHUDAN", kind: ActionChudan},
		{substr: "SENNICHITE", kind: ActionSennichite},
		{substr: "TIME_UP", kind: ActionTimeUp},
		{substr: "ILLEGAL_MOVE", kind: ActionIllegalMove},
		{substr: "+ILLEGAL_ACTION", kind: ActionIllegalAction, color: Black, hasColor: true},
		{substr: "-ILLEGAL_ACTION", kind: ActionIllegalAction, color: White, hasColor: true},
		{substr: "JISHOGI", kind: ActionJishogi},
		{substr: "KACHI", kind: ActionKachi},
		{substr: "HIKIWAKE", kind: ActionHikiwake},
	}
	// Retracted moves exist only in the two oldest revisions; the move-count
	// limit only in the newest.
	if v == V2 || v == V21 {
		rules = append(rules, eventRule{substr: "MATTA", kind: ActionMatta})
	}
	if v == V30 {
		rules = append(rules, eventRule{substr: "MAX_MOVES", kind: ActionMaxMoves})
	}
	rules = append(rules,
		eventRule{substr: "TSUMI", kind: ActionTsumi},
		eventRule{substr: "FUZUMI", kind: ActionFuzumi},
	)
	return rules
}

var dialects = map[Version]*dialect{
	V2:  {version: V2, token: "V2", events: eventRules(V2)},
	V21: {version: V21, token: "V2.1", events: eventRules(V21)},
	V22: {version: V22, token: "V2.2", reducedGrids: true, events: eventRules(V22)},
	V30: {version: V30, token: "V3.0", fractionalTime: true, events: eventRules(V30)},
}

// classifySpecial maps an event token to an action using the dialect's
// priority list. Tokens outside the dialect's vocabulary classify as
// unrecognized; that is a valid terminal action, not a failure.
func (d *dialect) classifySpecial(token string) Action {
	for _, rule := range d.events {
		if !strings.Contains(token, rule.substr) {
			continue
		}
		action := Action{Kind: rule.kind}
		if rule.hasColor {
			action.Color = rule.color
		}
		return action
	}
	return Action{Kind: ActionUnrecognized, Token: token}
}
