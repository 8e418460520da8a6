package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentConfig struct {
	ID   int
	Spec string // strategy as given on the command line, e.g. "alphabeta:4"
}

type GameRecord struct {
	ID   int
	Red  int // AgentConfig.ID
	Blue int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Summary aggregates the games and movements of one agent.
type Summary struct {
	Agent                 AgentConfig
	Games                 int
	Wins, Losses, Ties    int
	MeanNodes, StdNodes   float64 // per movement
	MeanMillis, StdMillis float64 // search time per movement
}

type Writer struct {
	baseDir string
}

// NewWriter creates a directory for one run of the named experiment under
// root, named by the current time.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{strconv.Itoa(config.ID), config.Spec})
	}
	return w.write("agent_configs.csv", []string{"id", "spec"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "red", "blue", "starting_player", "winner", "start_time", "end_time",
		"duration", "total_moves", "red_blobs", "blue_blobs"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Red),
			strconv.Itoa(record.Blue),
			record.StartingPlayer,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.RedBlobs),
			strconv.Itoa(record.BlueBlobs),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "strategy", "duration", "nodes", "leaves",
		"cutoffs", "memo_hits"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			record.Strategy,
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.MemoHits),
		})
	}
	return w.write("move_records.csv", header, rows)
}

// WriteSearchMetrics stores single searches, such as those of an effort
// comparison, one row per search.
func (w *Writer) WriteSearchMetrics(name string, searches []SearchMetric) error {
	header := []string{"strategy", "duration", "nodes", "leaves", "cutoffs", "memo_hits"}
	rows := make([][]string, 0, len(searches))
	for _, s := range searches {
		rows = append(rows, []string{
			s.Strategy,
			s.Duration.String(),
			strconv.Itoa(s.Nodes),
			strconv.Itoa(s.Leaves),
			strconv.Itoa(s.Cutoffs),
			strconv.Itoa(s.MemoHits),
		})
	}
	return w.write(name, header, rows)
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	header := []string{"id", "spec", "games", "wins", "losses", "ties", "mean_nodes", "std_nodes",
		"mean_ms", "std_ms"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			strconv.Itoa(s.Agent.ID),
			s.Agent.Spec,
			strconv.Itoa(s.Games),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Ties),
			strconv.FormatFloat(s.MeanNodes, 'f', 2, 64),
			strconv.FormatFloat(s.StdNodes, 'f', 2, 64),
			strconv.FormatFloat(s.MeanMillis, 'f', 3, 64),
			strconv.FormatFloat(s.StdMillis, 'f', 3, 64),
		})
	}
	return w.write("summary.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
