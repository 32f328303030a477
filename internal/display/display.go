// Package display renders evaluated records for terminals.
package display

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/psychic-poker/internal/deck"
	"github.com/lox/psychic-poker/internal/draw"
	"github.com/lox/psychic-poker/internal/evaluator"
	"github.com/lox/psychic-poker/internal/runner"
)

// NoColor forces plain output regardless of terminal support
func NoColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Styled renders result lines with suit-aware colouring. It plugs into
// the runner as its renderer.
type Styled struct{}

// NewStyled creates a styled renderer
func NewStyled() *Styled {
	return &Styled{}
}

// Line renders one evaluated record
func (s *Styled) Line(res draw.Result) string {
	return fmt.Sprintf("%s %s %s %s %s %s",
		labelStyle.Render("Hand:"), formatCards(res.Record.Hand[:]),
		labelStyle.Render("Deck:"), formatCards(res.Record.Deck[:]),
		labelStyle.Render("Best hand:"), rankStyle.Render(res.Best.String()))
}

// Invalid renders the rejected-record line
func (s *Styled) Invalid() string {
	return invalidStyle.Render(draw.InvalidLine)
}

// Advice describes the winning draw: which cards to throw away, or to
// stand pat.
func Advice(res draw.Result) string {
	if res.StandsPat() {
		return adviceStyle.Render("stand pat")
	}

	discards := res.Discards()
	return adviceStyle.Render(fmt.Sprintf("discard %s, draw to %s",
		strings.Join(cardTokens(discards), " "), res.Final.String()))
}

// Summary renders a category table for a finished run, strongest
// category first.
func Summary(stats runner.Stats) string {
	var sb strings.Builder

	// Use tabwriter for proper alignment
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		labelStyle.Render("category"),
		labelStyle.Render("count"),
		labelStyle.Render("share"))

	valid := stats.Records - stats.Invalid
	ranks := evaluator.HandRanks()
	for i := len(ranks) - 1; i >= 0; i-- {
		count := stats.Categories[ranks[i]]
		if count == 0 {
			continue
		}
		share := float64(count) / float64(valid) * 100
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			rankStyle.Render(ranks[i].String()),
			countStyle.Render(fmt.Sprintf("%d", count)),
			countStyle.Render(fmt.Sprintf("%.1f%%", share)))
	}
	if stats.Invalid > 0 {
		fmt.Fprintf(w, "%s\t%s\t\n",
			invalidStyle.Render("invalid"),
			countStyle.Render(fmt.Sprintf("%d", stats.Invalid)))
	}
	_ = w.Flush()

	return sb.String()
}

// SelfTestTable renders the canonical-case results as a pass/fail
// table.
func SelfTestTable(results []runner.CaseResult) string {
	var sb strings.Builder

	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for _, res := range results {
		status := passStyle.Render("ok")
		detail := res.Got.String()
		if !res.OK() {
			status = invalidStyle.Render("FAIL")
			if res.Err != nil {
				detail = res.Err.Error()
			} else {
				detail = fmt.Sprintf("got %s, want %s", res.Got, res.Case.Want)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", status, rankStyle.Render(res.Case.Want.String()), detail)
	}
	_ = w.Flush()

	return sb.String()
}

// formatCards joins card tokens, colouring red suits
func formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		if card.IsRed() {
			parts[i] = redCardStyle.Render(card.String())
		} else {
			parts[i] = blackCardStyle.Render(card.String())
		}
	}
	return strings.Join(parts, " ")
}

// cardTokens renders cards as plain tokens
func cardTokens(cards []deck.Card) []string {
	tokens := make([]string, len(cards))
	for i, card := range cards {
		tokens[i] = card.String()
	}
	return tokens
}
