package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/psychic-poker/internal/draw"
	"github.com/lox/psychic-poker/internal/evaluator"
)

const sampleInput = `TH JH QC QD QS QH KH AH 2S 6S
2H 2S 3H 3S 3C 2D 3D 6C 9C TH
bogus line

2H 2S 3H 3S 3C 2D 9C 3D 6C TH
`

func TestRunSequential(t *testing.T) {
	r := NewRunner(zerolog.Nop())
	var out bytes.Buffer

	stats, err := r.Run(context.Background(), strings.NewReader(sampleInput), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Hand: TH JH QC QD QS Deck: QH KH AH 2S 6S Best hand: straight-flush", lines[0])
	assert.Equal(t, "Hand: 2H 2S 3H 3S 3C Deck: 2D 3D 6C 9C TH Best hand: four-of-a-kind", lines[1])
	assert.Equal(t, "Invalid line", lines[2])
	assert.Equal(t, "Hand: 2H 2S 3H 3S 3C Deck: 2D 9C 3D 6C TH Best hand: full-house", lines[3])

	assert.Equal(t, 4, stats.Records)
	assert.Equal(t, 1, stats.Invalid)
	assert.Equal(t, 1, stats.Categories[evaluator.StraightFlush])
	assert.Equal(t, 1, stats.Categories[evaluator.FourOfAKind])
	assert.Equal(t, 1, stats.Categories[evaluator.FullHouse])
}

func TestRunSkipsBlankLines(t *testing.T) {
	r := NewRunner(zerolog.Nop())
	var out bytes.Buffer

	stats, err := r.Run(context.Background(), strings.NewReader("\n\n   \n"), &out)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Records)
	assert.Empty(t, out.String())
}

func TestRunEmptyInput(t *testing.T) {
	r := NewRunner(zerolog.Nop())
	var out bytes.Buffer

	stats, err := r.Run(context.Background(), strings.NewReader(""), &out)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Records)
	assert.Empty(t, out.String())
}

func TestRunInvalidRecordsDoNotStopTheRun(t *testing.T) {
	input := strings.Join([]string{
		"TH TH QC QD QS QH KH AH 2S 6S", // duplicate card
		"not cards at all",
		"TH JH QC QD QS QH KH AH 2S 6S",
	}, "\n")

	r := NewRunner(zerolog.Nop())
	var out bytes.Buffer

	stats, err := r.Run(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, draw.InvalidLine, lines[0])
	assert.Equal(t, draw.InvalidLine, lines[1])
	assert.Contains(t, lines[2], "straight-flush")
	assert.Equal(t, 2, stats.Invalid)
}

func TestRunParallelMatchesSequential(t *testing.T) {
	// Enough records that worker interleaving actually happens.
	var input strings.Builder
	cases := Cases()
	for i := 0; i < 50; i++ {
		input.WriteString(cases[i%len(cases)].Line)
		input.WriteString("\n")
		if i%7 == 0 {
			input.WriteString("junk\n")
		}
	}

	var seqOut bytes.Buffer
	seqStats, err := NewRunner(zerolog.Nop()).
		Run(context.Background(), strings.NewReader(input.String()), &seqOut)
	require.NoError(t, err)

	var parOut bytes.Buffer
	parStats, err := NewRunner(zerolog.Nop(), WithWorkers(4)).
		Run(context.Background(), strings.NewReader(input.String()), &parOut)
	require.NoError(t, err)

	assert.Equal(t, seqOut.String(), parOut.String())
	assert.Equal(t, seqStats.Records, parStats.Records)
	assert.Equal(t, seqStats.Invalid, parStats.Invalid)
	assert.Equal(t, seqStats.Categories, parStats.Categories)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(zerolog.Nop())
	var out bytes.Buffer

	_, err := r.Run(ctx, strings.NewReader(sampleInput), &out)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithWorkersIgnoresNonPositive(t *testing.T) {
	r := NewRunner(zerolog.Nop(), WithWorkers(0))
	assert.Equal(t, 1, r.workers)

	r = NewRunner(zerolog.Nop(), WithWorkers(-3))
	assert.Equal(t, 1, r.workers)

	r = NewRunner(zerolog.Nop(), WithWorkers(8))
	assert.Equal(t, 8, r.workers)
}

type markingRenderer struct{}

func (markingRenderer) Line(res draw.Result) string { return ">> " + res.Best.String() }
func (markingRenderer) Invalid() string             { return ">> rejected" }

func TestWithRenderer(t *testing.T) {
	r := NewRunner(zerolog.Nop(), WithRenderer(markingRenderer{}))
	var out bytes.Buffer

	_, err := r.Run(context.Background(), strings.NewReader("TH JH QC QD QS QH KH AH 2S 6S\nnope\n"), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, ">> straight-flush", lines[0])
	assert.Equal(t, ">> rejected", lines[1])
}
