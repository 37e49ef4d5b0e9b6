// Command blokusworker implements the line-based test-client protocol: it
// reads one FEN per line from stdin and writes "action: <N>" to stdout,
// resetting its search state whenever a new game starts.
package main

import (
	"bufio"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	blokus "github.com/polyform/blokus"
)

func main() {
	var (
		timeLimitMs int
		iterations  int
		seed        uint64
		playerName  string
		verbose     bool
	)

	root := &cobra.Command{
		Use:   "blokusworker",
		Short: "MCTS move server for the four-color Blokus test-client protocol",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
				Level(level).With().Timestamp().Logger()

			if seed == 0 {
				var buf [8]byte
				if _, err := rand.Read(buf[:]); err != nil {
					return err
				}
				seed = binary.LittleEndian.Uint64(buf[:])
			}

			var player blokus.Player
			switch playerName {
			case "random":
				player = blokus.NewRandomPlayer(seed)
			case "mcts", "":
				opts := blokus.SearchOptions{
					Seed:   seed,
					Logger: &logger,
				}
				if iterations > 0 {
					opts.IterationLimit = iterations
				} else {
					opts.TimeLimit = time.Duration(timeLimitMs) * time.Millisecond
				}
				player = blokus.NewMCTS(opts)
			default:
				return fmt.Errorf("blokus: unknown --player %q", playerName)
			}

			return runWorker(cmd.InOrStdin(), cmd.OutOrStdout(), logger, player)
		},
	}

	root.Flags().IntVar(&timeLimitMs, "time-limit-ms", 1960, "time budget per move in milliseconds")
	root.Flags().IntVar(&iterations, "iterations", 0, "fixed MCTS iteration count per move, overrides --time-limit-ms (0 disables)")
	root.Flags().Uint64Var(&seed, "seed", 0, "PRNG seed, 0 selects OS entropy")
	root.Flags().StringVar(&playerName, "player", "mcts", `move selection strategy: "mcts" or "random"`)
	root.Flags().BoolVar(&verbose, "verbose", false, "log one event per MCTS iteration batch")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runWorker(in io.Reader, out io.Writer, logger zerolog.Logger, player blokus.Player) error {
	scanner := bufio.NewScanner(in)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		state, err := blokus.FromFEN(line)
		if err != nil {
			logger.Error().Err(err).Str("fen", line).Msg("failed to parse request")
			return err
		}
		if state.Ply < 2 {
			player.OnReset()
		}
		action := player.OnMoveRequest(&state)
		logger.Info().
			Uint8("ply", state.Ply).
			Str("action", action.String()).
			Msg("move request handled")
		fmt.Fprintf(writer, "action: %s\n", action.Serialize())
		writer.Flush()
	}
	return scanner.Err()
}
