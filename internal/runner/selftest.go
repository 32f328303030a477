package runner

import (
	"strings"

	"github.com/lox/psychic-poker/internal/draw"
	"github.com/lox/psychic-poker/internal/evaluator"
)

// Case pairs a record line with the category its search must find.
type Case struct {
	Line string
	Want evaluator.HandRank
}

// CaseResult is the outcome of one self-test case.
type CaseResult struct {
	Case Case
	Got  evaluator.HandRank
	Err  error
}

// OK reports whether the case produced the expected category
func (cr CaseResult) OK() bool {
	return cr.Err == nil && cr.Got == cr.Case.Want
}

// Cases returns one scenario per hand category, strongest first. They
// double as a startup canary and as documentation of how the search
// behaves.
func Cases() []Case {
	return []Case{
		{Line: "TH JH QC QD QS QH KH AH 2S 6S", Want: evaluator.StraightFlush},
		{Line: "2H 2S 3H 3S 3C 2D 3D 6C 9C TH", Want: evaluator.FourOfAKind},
		{Line: "2H 2S 3H 3S 3C 2D 9C 3D 6C TH", Want: evaluator.FullHouse},
		{Line: "2H AD 5H AC 7H AH 6H 9H 4H 3C", Want: evaluator.Flush},
		{Line: "AC 2D 9C 3S KD 5S 4D KS AS 4C", Want: evaluator.Straight},
		{Line: "KS AH 2H 3C 4H KC 2C TC 2D AS", Want: evaluator.ThreeOfAKind},
		{Line: "AH 2C 9S AD 3C QH KS JS JD KD", Want: evaluator.TwoPairs},
		{Line: "6C 9C 8C 2D 7C 2H TC 4C 9S AH", Want: evaluator.OnePair},
		{Line: "3D 5S 2H QD TD 6S KH 9H AD QH", Want: evaluator.HighestCard},
	}
}

// SelfTest runs every canonical case through the full token pipeline.
func SelfTest() []CaseResult {
	cases := Cases()
	results := make([]CaseResult, 0, len(cases))
	for _, c := range cases {
		res, err := draw.EvaluateTokens(strings.Fields(c.Line))
		results = append(results, CaseResult{Case: c, Got: res.Best, Err: err})
	}
	return results
}

// SelfTestOK reports whether every canonical case passes
func SelfTestOK(results []CaseResult) bool {
	for _, res := range results {
		if !res.OK() {
			return false
		}
	}
	return true
}
