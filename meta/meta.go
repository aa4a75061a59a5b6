// meta/meta.go
package meta

// MIN_SIDE_LENGTH and MAX_SIDE_LENGTH bound the supported board sizes.
const MIN_SIDE_LENGTH = 1
const MAX_SIDE_LENGTH = 5

// DEFAULT_SIDE_LENGTH is used by experiments when no side length is given.
const DEFAULT_SIDE_LENGTH = 2

// GO_ROUTINES defines the number of games an experiment plays concurrently.
const GO_ROUTINES = 8

// GAMES defines the number of games per matchup and side length.
const GAMES = 10

// MAX_TURNS bounds a game; no board has more cells than this.
const MAX_TURNS = 25

// MAX_SERVED_SEARCH_CELLS bounds the open cells of a position the move service
// will search exhaustively.
const MAX_SERVED_SEARCH_CELLS = 10
