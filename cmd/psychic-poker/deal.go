package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lox/psychic-poker/cmd/psychic-poker/shared"
	"github.com/lox/psychic-poker/internal/deck"
	"github.com/lox/psychic-poker/internal/randutil"
)

// DealCmd emits random draw records suitable for piping back into
// eval. Each record is ten distinct cards off a freshly shuffled deck.
type DealCmd struct {
	Count int    `kong:"default='10',help='Number of records to generate'"`
	Seed  *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *DealCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		logger.Debug().Int64("seed", seed).Msg("using deterministic seed")
	} else {
		seed = time.Now().UnixNano()
		logger.Debug().Int64("seed", seed).Msg("using random seed")
	}
	rng := randutil.New(seed)

	w := bufio.NewWriter(os.Stdout)
	for i := 0; i < c.Count; i++ {
		d := deck.NewDeck(rng)
		d.Shuffle()

		tokens := make([]string, 0, 10)
		for _, card := range d.DealN(10) {
			tokens = append(tokens, card.String())
		}
		if _, err := fmt.Fprintln(w, strings.Join(tokens, " ")); err != nil {
			return err
		}
	}
	return w.Flush()
}
