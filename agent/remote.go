package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"stonehenge/game"
	"time"
)

// RemotePrefix selects a strategy served by another process: "remote:iterative"
// asks the move service at Config.RemoteURL to play "iterative".
const RemotePrefix = "remote:"

const remoteTimeout = time.Minute

// Remote asks the move service at baseURL for the named strategy's move.
func Remote(baseURL, strategy string, client *http.Client) Strategy {
	if client == nil {
		client = &http.Client{Timeout: remoteTimeout}
	}
	return func(g *game.Game) (game.Cell, error) {
		return requestMove(client, baseURL, strategy, g.CurrentState)
	}
}

// requestMove posts the state to /move/{strategy} and checks the reply is legal.
func requestMove(client *http.Client, baseURL, strategy string, state *game.State) (game.Cell, error) {
	body, err := json.Marshal(state)
	if err != nil {
		return game.InvalidCell, err
	}

	endpoint, err := url.JoinPath(baseURL, "move", strategy)
	if err != nil {
		return game.InvalidCell, err
	}
	resp, err := client.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return game.InvalidCell, fmt.Errorf("failed to reach move service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var reply errorResponse
		out, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(out, &reply) != nil || reply.Error == "" {
			reply.Error = string(bytes.TrimSpace(out))
		}
		return game.InvalidCell, fmt.Errorf("move service returned status %d: %s", resp.StatusCode, reply.Error)
	}

	var reply moveResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return game.InvalidCell, fmt.Errorf("failed to decode move: %w", err)
	}
	move := game.ParseCell(reply.Move)
	if !state.IsValidMove(move) {
		return game.InvalidCell, fmt.Errorf("%w: move service returned %q", game.ErrInvalidMove, reply.Move)
	}
	return move, nil
}
