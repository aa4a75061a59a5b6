package agent

import (
	"net/http"
	"net/http/httptest"
	"stonehenge/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemote(t *testing.T) {
	srv := httptest.NewServer(NewServer(1))
	defer srv.Close()

	t.Run("plays the served strategy", func(t *testing.T) {
		g := newGame(t, true, 1)

		move, err := Remote(srv.URL, IterativeStrategy, srv.Client())(g)

		require.NoError(t, err)
		require.Equal(t, game.Cell('A'), move)
	})

	t.Run("through the registry", func(t *testing.T) {
		a, err := New(RemotePrefix+RoughStrategy, Config{RemoteURL: srv.URL, RemoteClient: srv.Client()})
		require.NoError(t, err)
		g := newGame(t, false, 2, 'A')

		move, _, err := a.FindMove(g)

		require.NoError(t, err)
		require.True(t, g.CurrentState.IsValidMove(move))
	})

	t.Run("reports service errors", func(t *testing.T) {
		g := newGame(t, true, 1)

		_, err := Remote(srv.URL, "oracle", srv.Client())(g)

		require.ErrorContains(t, err, "status 404")
	})

	t.Run("rejects illegal replies", func(t *testing.T) {
		liar := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, moveResponse{Move: "Z"})
		}))
		defer liar.Close()
		g := newGame(t, true, 1)

		_, err := Remote(liar.URL, RoughStrategy, liar.Client())(g)

		require.ErrorIs(t, err, game.ErrInvalidMove)
	})

	t.Run("needs a service and a served strategy", func(t *testing.T) {
		_, err := New(RemotePrefix+RoughStrategy, Config{})
		require.ErrorIs(t, err, ErrUnknownStrategy)

		_, err = New(RemotePrefix+InteractiveStrategy, Config{RemoteURL: srv.URL})
		require.ErrorIs(t, err, ErrUnknownStrategy)
	})
}
