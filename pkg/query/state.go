package query

// state is a node of the query state machine.
type state int

const (
	stateStart state = iota
	// stateLeadingTo: "to" seen before any base currency.
	stateLeadingTo
	// stateHaveBase: base set, no "to" pending.
	stateHaveBase
	// stateBaseAwaitingTargets: base set while a leading "to" is pending,
	// so the next code segment is a target list.
	stateBaseAwaitingTargets
	// stateAwaitingTargets: "to" seen after the base.
	stateAwaitingTargets
	// stateHaveTargets: the last target segment added at least one code.
	stateHaveTargets
	// stateNoNewTargets: the last target segment added nothing.
	stateNoNewTargets
	stateFailed
)

var stateNames = map[state]string{
	stateStart:               "Start",
	stateLeadingTo:           "LeadingTo",
	stateHaveBase:            "HaveBase",
	stateBaseAwaitingTargets: "BaseAwaitingTargets",
	stateAwaitingTargets:     "AwaitingTargets",
	stateHaveTargets:         "HaveTargets",
	stateNoNewTargets:        "NoNewTargets",
	stateFailed:              "Failed",
}

func (s state) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// complete reports whether a query ending in s has all the parts it
// started: a base, and targets for every "to" that followed it.
func (s state) complete() bool {
	switch s {
	case stateHaveBase, stateBaseAwaitingTargets, stateHaveTargets:
		return true
	}
	return false
}

type tokenKind int

const (
	kindAmount tokenKind = iota
	kindTo
	kindCode
)

// transition consumes tok and returns the next state.
type transition func(p *parser, tok string) state

// transitions is the full table; a missing entry fails the parse.
// Amount tokens are handled the same way in every live state.
var transitions = map[state]map[tokenKind]transition{
	stateStart: {
		kindAmount: setAmount(stateStart),
		kindTo:     goTo(stateLeadingTo),
		kindCode:   setBase(stateHaveBase),
	},
	stateLeadingTo: {
		kindAmount: setAmount(stateLeadingTo),
		kindTo:     goTo(stateLeadingTo),
		kindCode:   setBase(stateBaseAwaitingTargets),
	},
	stateHaveBase: {
		kindAmount: setAmount(stateHaveBase),
		kindTo:     goTo(stateAwaitingTargets),
	},
	stateBaseAwaitingTargets: {
		kindAmount: setAmount(stateBaseAwaitingTargets),
		kindTo:     goTo(stateAwaitingTargets),
		kindCode:   addTargets,
	},
	stateAwaitingTargets: {
		kindAmount: setAmount(stateAwaitingTargets),
		kindTo:     goTo(stateAwaitingTargets),
		kindCode:   addTargets,
	},
	stateHaveTargets: {
		kindAmount: setAmount(stateHaveTargets),
		kindTo:     goTo(stateAwaitingTargets),
	},
	stateNoNewTargets: {
		kindAmount: setAmount(stateNoNewTargets),
		kindTo:     goTo(stateAwaitingTargets),
	},
}

func setAmount(s state) transition {
	return func(p *parser, tok string) state {
		if p.result.Amount != "" {
			return stateFailed
		}
		p.result.Amount = tok
		return s
	}
}

func goTo(s state) transition {
	return func(*parser, string) state {
		return s
	}
}

func setBase(next state) transition {
	return func(p *parser, tok string) state {
		code := normalizeCode(tok)
		if !isCode(code) {
			return stateFailed
		}
		p.result.BaseCurrency = code
		return next
	}
}

func addTargets(p *parser, tok string) state {
	if p.appendTargets(tok) == 0 {
		return stateNoNewTargets
	}
	return stateHaveTargets
}
