package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"stonehenge/game"
	"stonehenge/searcher"
	"strings"

	"golang.org/x/exp/rand"
)

// Interactive reads moves from in, prompting on out, until a legal move is
// given. Pass the same *bufio.Reader to every consumer of a shared input.
func Interactive(in io.Reader, out io.Writer) Strategy {
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}
	return func(g *game.Game) (game.Cell, error) {
		for {
			fmt.Fprint(out, "Enter a move: ")
			text, err := reader.ReadString('\n')
			if errors.Is(err, io.EOF) && text == "" {
				return game.InvalidCell, ErrNoInput
			}
			if err != nil && !errors.Is(err, io.EOF) {
				return game.InvalidCell, fmt.Errorf("failed to read move: %w", err)
			}
			text = strings.TrimSpace(text)
			move := g.StrToMove(text)
			if g.CurrentState.IsValidMove(move) {
				return move, nil
			}
			fmt.Fprintf(out, "%q is not a valid move, choose one of %v\n", text, g.LegalMoves())
		}
	}
}

// Greedy picks the move leaving the opponent with the lowest evaluation.
// The first such move in board order wins ties.
func Greedy(evaluate game.Evaluate) Strategy {
	return func(g *game.Game) (game.Cell, error) {
		state := g.CurrentState
		best := game.InvalidCell
		bestScore := game.Lose - 1
		for _, move := range state.LegalMoves() {
			next, err := state.Play(move)
			if err != nil {
				return game.InvalidCell, err
			}
			// Bad for the opponent is good for us
			if score := -evaluate(next); score > bestScore {
				bestScore = score
				best = move
			}
		}
		if best == game.InvalidCell {
			return game.InvalidCell, searcher.ErrNoMoves
		}
		return best, nil
	}
}

// RoughOutcome is Greedy over the two-ply rough outcome estimate.
func RoughOutcome() Strategy {
	return Greedy(game.RoughOutcome)
}

// Search adapts a searcher to a strategy.
func Search(s searcher.Searcher) Strategy {
	return func(g *game.Game) (game.Cell, error) {
		return s.FindNextMove(g.CurrentState)
	}
}

func RecursiveMinimax(options ...searcher.Option) Strategy {
	return Search(searcher.NewRecursive(options...))
}

func IterativeMinimax(options ...searcher.Option) Strategy {
	return Search(searcher.NewIterative(options...))
}

// Random picks a uniformly random legal move. Not safe for concurrent use.
func Random(seed uint64) Strategy {
	rng := rand.New(rand.NewSource(seed))
	return func(g *game.Game) (game.Cell, error) {
		moves := g.LegalMoves()
		if len(moves) == 0 {
			return game.InvalidCell, searcher.ErrNoMoves
		}
		return moves[rng.Intn(len(moves))], nil
	}
}
