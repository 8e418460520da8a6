package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy string
	Duration time.Duration
	Nodes    int
	Leaves   int
	Cutoffs  int
	MemoHits int
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string // "" for a pass
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" on a tie
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	RedBlobs       int
	BlueBlobs      int
}

// Collector counts what a single search does. Implementations are safe for
// concurrent use so parallel searches can share one.
type Collector interface {
	Start(strategy string)
	AddNode()
	AddLeaf()
	AddCutoff()
	AddMemoHit()
	Complete() SearchMetric
}

type collector struct {
	strategy  string
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
	memoHits  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string) {
	m.strategy = strategy
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.memoHits.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddMemoHit() {
	m.memoHits.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy: m.strategy,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Cutoffs:  int(m.cutoffs.Load()),
		MemoHits: int(m.memoHits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string)  {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) AddMemoHit()            {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
