package players

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/cbodonnell/connectn/pkg/board"
	"github.com/cbodonnell/connectn/pkg/log"
)

const (
	// ScoreWin is the score of a move that completes a streak.
	ScoreWin = 999999
	// ScoreBad is the score of a move that cannot be played.
	ScoreBad = 0
)

// AIPlayer picks the column that makes its longest run, breaking ties at random.
type AIPlayer struct {
	basePlayer
	rng *rand.Rand
}

// NewAIPlayer creates an AI player. A nil rng is seeded from the clock.
func NewAIPlayer(color, name string, rng *rand.Rand) *AIPlayer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &AIPlayer{basePlayer: newBase(color, name, KindAI), rng: rng}
}

func (p *AIPlayer) Human() bool {
	return false
}

func (p *AIPlayer) ChooseMove(ctx context.Context, b *board.Board, _ Link) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	moves := EvaluateMoves(b, p.color)
	best := BestMoves(moves)
	if len(best) == 0 {
		return -1, ErrNoMoves
	}
	col := best[p.rng.Intn(len(best))]
	log.Trace("%s scored %v, chose column %d", p.name, moves, col)
	return col, nil
}

// EvaluateMoves scores every legal column for color by placing a piece there
// and undoing it. The board is left as it was found.
func EvaluateMoves(b *board.Board, color string) map[int]int {
	moves := make(map[int]int)
	for _, col := range b.LegalMoves() {
		moves[col] = scoreMove(b, color, col)
	}
	return moves
}

func scoreMove(b *board.Board, color string, col int) int {
	row, err := b.ApplyMove(color, col)
	if err != nil {
		return ScoreBad
	}
	defer b.UndoLastMove()
	longest := b.LongestRun(row, col)
	if longest >= b.Streak() {
		return ScoreWin
	}
	return max(longest, 1)
}

// BestMoves returns the columns sharing the highest score, in column order.
func BestMoves(moves map[int]int) []int {
	top := ScoreBad
	for _, score := range moves {
		top = max(top, score)
	}
	var best []int
	for col, score := range moves {
		if score == top {
			best = append(best, col)
		}
	}
	sort.Ints(best)
	return best
}

// BetterAIPlayer plays like AIPlayer, but when it cannot win this turn it blocks
// any column where an opponent would.
type BetterAIPlayer struct {
	AIPlayer
}

func NewBetterAIPlayer(color, name string, rng *rand.Rand) *BetterAIPlayer {
	p := &BetterAIPlayer{AIPlayer: *NewAIPlayer(color, name, rng)}
	p.kind = KindBetterAI
	return p
}

func (p *BetterAIPlayer) ChooseMove(ctx context.Context, b *board.Board, link Link) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	moves := EvaluateMoves(b, p.color)
	best := BestMoves(moves)
	if len(best) == 0 {
		return -1, ErrNoMoves
	}
	if moves[best[0]] == ScoreWin {
		return best[p.rng.Intn(len(best))], nil
	}

	blocks := make(map[int]int)
	for _, opponent := range opponents(b, p.color) {
		for col, score := range EvaluateMoves(b, opponent) {
			if score == ScoreWin {
				blocks[col] = moves[col]
			}
		}
	}
	if len(blocks) > 0 {
		best = BestMoves(blocks)
		col := best[p.rng.Intn(len(best))]
		log.Trace("%s blocking column %d", p.name, col)
		return col, nil
	}
	return best[p.rng.Intn(len(best))], nil
}

// opponents lists the other identities that have pieces on the board.
func opponents(b *board.Board, color string) []string {
	seen := map[string]bool{color: true}
	var result []string
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			id := b.Color(r, c)
			if id == board.Nobody || seen[id] {
				continue
			}
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}
