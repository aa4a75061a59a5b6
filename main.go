package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"stonehenge/agent"
	"stonehenge/engine"
	"stonehenge/experiments"
	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"stonehenge/meta"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	side := flag.Int("side", 0, "Board side length (1-5), prompted for when 0")
	p1 := flag.String("p1", agent.InteractiveStrategy, "Player 1 strategy: "+strings.Join(agent.Names(), "|"))
	p2 := flag.String("p2", agent.IterativeStrategy, "Player 2 strategy: "+strings.Join(agent.Names(), "|"))
	first := flag.String("first", game.P1.String(), "Player moving first: p1|p2")
	remote := flag.String("remote", "", "Move service URL for \""+agent.RemotePrefix+"<strategy>\" players")
	seed := flag.Uint64("seed", 0, "Seed for random strategies (0 for time-based)")
	serve := flag.String("serve", "", "Serve the move API on this address instead of playing")
	experiment := flag.String("experiment", "", "Run the round robin experiment and write records below this directory")
	games := flag.Int("games", meta.GAMES, "Games per matchup and side length in experiments")
	debug := flag.Bool("debug", false, "Log search details")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case *serve != "":
		err = runServer(ctx, *serve, *seed)
	case *experiment != "":
		exp := experiments.Default(*experiment)
		exp.Games = *games
		exp.Seed = *seed
		err = runExperiment(ctx, exp)
	default:
		in := bufio.NewReader(os.Stdin)
		err = runGame(ctx, in, os.Stdout, gameConfig{
			side:     *side,
			p1:       *p1,
			p2:       *p2,
			first:    *first,
			seed:     *seed,
			remote:   *remote,
		})
	}
	if err != nil {
		log.Fatal().Err(err).Msg("stonehenge failed")
	}
}

type gameConfig struct {
	side     int
	p1, p2   string
	first    string
	seed     uint64
	remote   string
}

func runGame(ctx context.Context, in *bufio.Reader, out io.Writer, config gameConfig) error {
	side := config.side
	if side == 0 {
		var err error
		side, err = promptSideLength(in, out)
		if err != nil {
			return err
		}
	}

	starter, err := game.ParsePlayer(config.first)
	if err != nil {
		return err
	}
	g, err := game.NewGame(starter == game.P1, side)
	if err != nil {
		return err
	}
	agentConfig := agent.Config{Input: in, Output: out, Seed: config.seed, RemoteURL: config.remote}
	a1, err := agent.New(config.p1, agentConfig)
	if err != nil {
		return err
	}
	agentConfig.Seed++
	a2, err := agent.New(config.p2, agentConfig)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, g.Instructions())
	fmt.Fprintln(out, g.CurrentState)
	e := engine.LocalEngine(g, a1, a2).OnMove(func(m metrics.MoveMetric, s *game.State) {
		fmt.Fprintf(out, "%s (%s) claims %s\n%s\n", m.Player, m.Agent, m.Move, s)
	})
	result, err := e.Run(ctx)
	if err != nil {
		return err
	}

	if result.Winner == game.None {
		fmt.Fprintln(out, "Game over: no player captured a majority of ley-lines.")
	} else {
		fmt.Fprintf(out, "Game over: %s wins after %d moves.\n", result.Winner, result.Game.TotalMoves)
	}
	return nil
}

// promptSideLength asks until a side length in range is entered.
func promptSideLength(in *bufio.Reader, out io.Writer) (int, error) {
	for {
		fmt.Fprint(out, "Enter the side length of board:")
		text, err := in.ReadString('\n')
		if n, convErr := strconv.Atoi(strings.TrimSpace(text)); convErr == nil &&
			n >= meta.MIN_SIDE_LENGTH && n <= meta.MAX_SIDE_LENGTH {
			return n, nil
		}
		if err != nil {
			return 0, fmt.Errorf("no side length entered: %w", err)
		}
	}
}

func runServer(ctx context.Context, addr string, seed uint64) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           agent.NewServer(seed),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("server shutdown")
		}
	}()

	log.Info().Msgf("serving move API on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func runExperiment(ctx context.Context, exp experiments.Experiment) error {
	report, err := experiments.Run(ctx, exp)
	if err != nil {
		return err
	}
	for _, config := range exp.Agents {
		log.Info().Msgf("agent %d (%s) won %d games", config.ID, config.Strategy, report.Wins[config.ID])
	}
	log.Info().Msgf("records written to %s", report.Dir)
	return nil
}
