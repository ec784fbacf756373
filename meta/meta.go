// meta/meta.go
package meta

// MAX_TURNS caps the number of moves in a game before it is declared a draw.
const MAX_TURNS = 300

// REPETITION_LIMIT is the number of times a position may occur before the game is drawn.
const REPETITION_LIMIT = 3

// GO_ROUTINES defines the number of games played in parallel by experiments.
const GO_ROUTINES = 8

// GAMES defines the number of games per experiment match-up.
const GAMES = 10

// BENCHMARK_DEPTH caps the depth of the search benchmark.
const BENCHMARK_DEPTH = 5
