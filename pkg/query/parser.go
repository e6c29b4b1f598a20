// Package query interprets free-text conversion queries such as
// "100 usd to eur,gbp".
package query

import (
	"math"
	"strconv"
	"strings"

	"github.com/amirasaad/fxquery/pkg/currency"
)

const (
	minTerms = 2
	maxTerms = 4

	keywordTo = "to"
)

// ParsedQuery is the structured form of a search string.
type ParsedQuery struct {
	// Amount is the numeric token exactly as typed; empty when absent.
	Amount string
	// BaseCurrency is empty when no code was found.
	BaseCurrency currency.Code
	// TargetCurrencies keeps insertion order without duplicates.
	TargetCurrencies []currency.Code
	Valid            bool
}

// HasAmount reports whether the query supplied an amount.
func (q ParsedQuery) HasAmount() bool {
	return q.Amount != ""
}

type parser struct {
	result ParsedQuery
	state  state
}

// Parse interprets search. It never fails: a query that is not a
// currency conversion comes back with Valid set to false and whatever
// fields were collected before parsing stopped.
func Parse(search string) ParsedQuery {
	terms := strings.Fields(search)
	p := &parser{state: stateStart}
	if len(terms) < minTerms || len(terms) > maxTerms {
		return p.result
	}

	for _, term := range terms {
		p.state = p.next(term)
		if p.state == stateFailed {
			return p.result
		}
	}

	p.result.Valid = p.valid()
	return p.result
}

func (p *parser) next(term string) state {
	t, ok := transitions[p.state][classify(term)]
	if !ok {
		return stateFailed
	}
	return t(p, term)
}

func (p *parser) valid() bool {
	q := p.result
	switch {
	case !p.state.complete():
		return false
	case q.BaseCurrency == "":
		return false
	case !q.HasAmount() && len(q.TargetCurrencies) == 0:
		return false
	case len(q.TargetCurrencies) == 1 && q.TargetCurrencies[0] == q.BaseCurrency:
		return false
	}
	return true
}

// appendTargets adds the codes of a comma-separated segment and returns
// how many were new.
func (p *parser) appendTargets(segment string) int {
	added := 0
	for _, part := range strings.Split(segment, ",") {
		code := normalizeCode(part)
		if !isCode(code) || currency.Contains(p.result.TargetCurrencies, code) {
			continue
		}
		p.result.TargetCurrencies = append(p.result.TargetCurrencies, code)
		added++
	}
	return added
}

func classify(term string) tokenKind {
	switch {
	case isNumeric(term):
		return kindAmount
	case strings.EqualFold(term, keywordTo):
		return kindTo
	default:
		return kindCode
	}
}

// isNumeric accepts finite decimal numbers, including forms such as
// "1e3", ".5" and "+2".
func isNumeric(s string) bool {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func normalizeCode(s string) currency.Code {
	return currency.Code(currency.Normalize(s))
}

func isCode(c currency.Code) bool {
	return currency.IsCode(c.String())
}
