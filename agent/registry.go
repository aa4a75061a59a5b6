package agent

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"stonehenge/experiments/metrics"
	"stonehenge/searcher"
	"strings"

	"golang.org/x/exp/slices"
)

const (
	InteractiveStrategy = "interactive"
	RoughStrategy       = "rough"
	RecursiveStrategy   = "recursive"
	IterativeStrategy   = "iterative"
	RandomStrategy      = "random"
)

// Names lists the strategies New accepts.
func Names() []string {
	return []string{InteractiveStrategy, RoughStrategy, RecursiveStrategy, IterativeStrategy, RandomStrategy}
}

// IsExhaustive reports whether the named strategy searches the whole game tree.
func IsExhaustive(name string) bool {
	return name == RecursiveStrategy || name == IterativeStrategy
}

// Config carries what some strategies need besides the game.
type Config struct {
	Input  io.Reader // Interactive input, os.Stdin if nil
	Output io.Writer // Interactive prompts, os.Stdout if nil
	Seed   uint64    // Random strategy seed

	RemoteURL    string       // Move service base URL for "remote:" strategies
	RemoteClient *http.Client // Defaults to a client with a one minute timeout
}

// New returns a fresh agent playing the named strategy. Agents keep per-move
// state and must not be shared between concurrent games.
func New(name string, config Config) (*Agent, error) {
	a := &Agent{Name: name, Metrics: metrics.NewDummyCollector()}

	if remote, ok := strings.CutPrefix(name, RemotePrefix); ok {
		if config.RemoteURL == "" || remote == InteractiveStrategy || !slices.Contains(Names(), remote) {
			return nil, fmt.Errorf("%w: %q needs a move service and one of %v", ErrUnknownStrategy, name, Names()[1:])
		}
		a.Strategy = Remote(config.RemoteURL, remote, config.RemoteClient)
		return a, nil
	}

	switch name {
	case InteractiveStrategy:
		in, out := config.Input, config.Output
		if in == nil {
			in = os.Stdin
		}
		if out == nil {
			out = os.Stdout
		}
		a.Strategy = Interactive(in, out)
	case RoughStrategy:
		a.Strategy = RoughOutcome()
	case RecursiveStrategy:
		a.Metrics = metrics.NewCollector()
		a.Strategy = RecursiveMinimax(searcher.WithMetrics(a.Metrics))
	case IterativeStrategy:
		a.Metrics = metrics.NewCollector()
		a.Strategy = IterativeMinimax(searcher.WithMetrics(a.Metrics))
	case RandomStrategy:
		a.Strategy = Random(config.Seed)
	default:
		return nil, fmt.Errorf("%w: %q, want one of %v", ErrUnknownStrategy, name, Names())
	}
	return a, nil
}
