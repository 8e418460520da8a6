package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting concurrently", func(t *testing.T) {
		c := NewCollector()
		c.Start("test")

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddNode()
					c.AddLeaf()
				}
				c.AddCutoff()
				c.AddMemoHit()
			}()
		}
		wg.Wait()

		m := c.Complete()
		require.Equal(t, "test", m.Strategy)
		require.Equal(t, 800, m.Nodes)
		require.Equal(t, 800, m.Leaves)
		require.Equal(t, 8, m.Cutoffs)
		require.Equal(t, 8, m.MemoHits)
	})

	t.Run("starting again resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start("first")
		c.AddNode()
		c.Start("second")
		require.Equal(t, SearchMetric{Strategy: "second"}, withoutDuration(c.Complete()))
	})

	t.Run("dummy collector", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("ignored")
		c.AddNode()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func withoutDuration(m SearchMetric) SearchMetric {
	m.Duration = 0
	return m
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "bench")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "bench"), filepath.Dir(w.Dir()))

	read := func(name string) [][]string {
		f, err := os.Open(filepath.Join(w.Dir(), name))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return rows
	}

	t.Run("move records", func(t *testing.T) {
		require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
			Game: 3,
			MoveMetric: MoveMetric{
				Step: 1, Player: "red", Move: "a1+b2",
				SearchMetric: SearchMetric{Strategy: "Greedy", Duration: time.Millisecond, Nodes: 1, Leaves: 5},
			},
		}}))
		rows := read("move_records.csv")
		require.Len(t, rows, 2)
		require.Equal(t, []string{"3", "1", "red", "a1+b2", "Greedy", "1ms", "1", "5", "0", "0"}, rows[1])
	})

	t.Run("summaries", func(t *testing.T) {
		require.NoError(t, w.WriteSummaries([]Summary{{
			Agent: AgentConfig{ID: 2, Spec: "memo:4"}, Games: 4, Wins: 3, Losses: 1,
			MeanNodes: 10.5, StdNodes: 1.25, MeanMillis: 0.5,
		}}))
		rows := read("summary.csv")
		require.Equal(t, []string{"2", "memo:4", "4", "3", "1", "0", "10.50", "1.25", "0.500", "0.000"}, rows[1])
	})

	t.Run("search metrics and agent configs", func(t *testing.T) {
		require.NoError(t, w.WriteSearchMetrics("effort.csv", []SearchMetric{{Strategy: "x", Nodes: 7}}))
		require.Equal(t, "7", read("effort.csv")[1][2])

		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Spec: "greedy"}}))
		require.Equal(t, [][]string{{"id", "spec"}, {"1", "greedy"}}, read("agent_configs.csv"))
	})
}
