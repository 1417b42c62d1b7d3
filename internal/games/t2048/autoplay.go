package t2048

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
)

// Strategy picks the next move from the board's legal moves.
// It is only called when at least one move is legal.
type Strategy interface {
	Name() string
	Choose(b *Board, legal []Direction) Direction
}

type randomStrategy struct {
	rng *rand.Rand
}

// RandomStrategy picks a legal move uniformly at random.
func RandomStrategy(rng *rand.Rand) Strategy {
	return randomStrategy{rng: rng}
}

func (randomStrategy) Name() string { return "random" }

func (s randomStrategy) Choose(_ *Board, legal []Direction) Direction {
	return legal[s.rng.Intn(len(legal))]
}

type greedyStrategy struct{}

// GreedyStrategy picks the move whose slide leaves the most empty cells.
// Ties go to the first direction in Directions order.
func GreedyStrategy() Strategy {
	return greedyStrategy{}
}

func (greedyStrategy) Name() string { return "greedy" }

func (greedyStrategy) Choose(b *Board, legal []Direction) Direction {
	best, bestEmpty := legal[0], -1
	for _, dir := range legal {
		empty := 0
		for _, rank := range b.Prediction(dir) {
			if rank == 0 {
				empty++
			}
		}
		if empty > bestEmpty {
			best, bestEmpty = dir, empty
		}
	}
	return best
}

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string, rng *rand.Rand) (Strategy, error) {
	switch strings.ToLower(name) {
	case "random":
		return RandomStrategy(rng), nil
	case "greedy":
		return GreedyStrategy(), nil
	}
	return nil, fmt.Errorf("unknown strategy %q (want random or greedy)", name)
}

// AutoplayResult summarizes a finished autoplay run.
type AutoplayResult struct {
	Moves       int
	HighestRank uint8
	Won         bool
	GameOver    bool
}

// Autoplay moves the board with the strategy until the game is over,
// maxMoves moves have been made (0 means no limit) or ctx is cancelled.
// onMove, if non-nil, is called after every move.
func Autoplay(ctx context.Context, b *Board, s Strategy, maxMoves int, onMove func(n int, dir Direction)) (AutoplayResult, error) {
	var res AutoplayResult
	for maxMoves == 0 || res.Moves < maxMoves {
		if err := ctx.Err(); err != nil {
			return res.finish(b), err
		}

		legal := b.LegalMoves()
		if len(legal) == 0 {
			break
		}
		dir := s.Choose(b, legal)
		if _, err := b.Move(dir); err != nil {
			return res.finish(b), fmt.Errorf("move %d: %w", res.Moves+1, err)
		}
		res.Moves++
		if onMove != nil {
			onMove(res.Moves, dir)
		}
		if b.IsGameOver() {
			break
		}
	}
	return res.finish(b), nil
}

func (r AutoplayResult) finish(b *Board) AutoplayResult {
	r.HighestRank = b.HighestRank()
	r.Won = b.IsWin()
	r.GameOver = b.IsGameOver()
	return r
}
