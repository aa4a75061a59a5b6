package metrics

import (
	"stonehenge/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm string        `json:"algorithm,omitempty"`
	Duration  time.Duration `json:"duration_ns"`
	Expanded  int           `json:"expanded"`  // Non-terminal nodes whose children were generated
	Terminals int           `json:"terminals"` // Terminal nodes scored
}

type MoveMetric struct {
	Step     int
	Player   game.Player
	Agent    string
	Move     game.Cell
	Duration time.Duration
	SearchMetric
}

type GameMetric struct {
	ID             string
	SideLength     int
	StartingPlayer game.Player
	Winner         game.Player // None if the game stopped early or ended drawn
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(algorithm string)
	AddExpansion()
	AddTerminal()
	Complete() SearchMetric
}

type collector struct {
	algorithm string
	startTime time.Time
	expanded  atomic.Int64
	terminals atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string) {
	m.algorithm = algorithm
	m.startTime = time.Now()
	m.expanded.Store(0)
	m.terminals.Store(0)
}

func (m *collector) AddExpansion() {
	m.expanded.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm: m.algorithm,
		Duration:  time.Since(m.startTime),
		Expanded:  int(m.expanded.Load()),
		Terminals: int(m.terminals.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string) {}
func (m *dummyCollector) AddExpansion()          {}
func (m *dummyCollector) AddTerminal()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
