package experiments

import (
	"fmt"

	"blobwar/engine"
	"blobwar/experiments/metrics"
	"blobwar/game"
	"blobwar/searcher"

	"github.com/rs/zerolog/log"
)

// NumGames is the default number of games per match up.
const NumGames = 10

// Builder turns an agent spec into a fresh strategy for one game.
type Builder func(spec string) (searcher.Strategy, error)

// Experiment plays every match up a number of times on one board. The two
// agents of a match up swap colors after each game.
type Experiment struct {
	Name     string
	Board    *game.Board
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
	Games    int // per match up
	Build    Builder
	MaxTurns int // zero for the engine default
}

// Results of an experiment, ready to be written.
type Results struct {
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Summaries []metrics.Summary
}

// RoundRobin numbers specs from 1 and pairs each agent with every other one.
func RoundRobin(specs []string) ([]metrics.AgentConfig, [][2]metrics.AgentConfig) {
	configs := make([]metrics.AgentConfig, len(specs))
	for i, spec := range specs {
		configs[i] = metrics.AgentConfig{ID: i + 1, Spec: spec}
	}
	var matchUps [][2]metrics.AgentConfig
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, [2]metrics.AgentConfig{configs[i], configs[j]})
		}
	}
	return configs, matchUps
}

func (e Experiment) Run() (Results, error) {
	games := e.Games
	if games <= 0 {
		games = NumGames
	}
	var results Results
	count := 0

	log.Info().Msgf("starting %s experiment...", e.Name)

	for mi, matchUp := range e.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between %s and %s...",
			mi+1, len(e.MatchUps), matchUp[0].Spec, matchUp[1].Spec)

		for i := 0; i < games; i++ {
			red, blue := matchUp[0], matchUp[1]
			if i%2 == 1 {
				red, blue = blue, red
			}
			outcome, gameMetric, moveMetrics, err := e.runGame(red, blue)
			if err != nil {
				return Results{}, err
			}
			count++
			results.Games = append(results.Games, metrics.GameRecord{
				ID:         count,
				Red:        red.ID,
				Blue:       blue.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				results.Moves = append(results.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d: %v", mi+1, len(e.MatchUps), i+1, outcome)
		}
	}

	log.Info().Msgf("completed %s experiment", e.Name)
	results.Summaries = Summarize(e.Configs, results.Games, results.Moves)
	return results, nil
}

func (e Experiment) runGame(red, blue metrics.AgentConfig) (engine.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	redStrategy, err := e.Build(red.Spec)
	if err != nil {
		return engine.Outcome{}, metrics.GameMetric{}, nil, fmt.Errorf("failed to create agent %d: %w", red.ID, err)
	}
	blueStrategy, err := e.Build(blue.Spec)
	if err != nil {
		return engine.Outcome{}, metrics.GameMetric{}, nil, fmt.Errorf("failed to create agent %d: %w", blue.ID, err)
	}
	eng := engine.LocalEngine(game.NewConfiguration(e.Board), redStrategy, blueStrategy)
	if e.MaxTurns > 0 {
		eng.MaxTurns = e.MaxTurns
	}
	outcome, gameMetric, moveMetrics := eng.Run()
	return outcome, gameMetric, moveMetrics, nil
}

// Write stores the configs and results of the experiment in a new directory
// under root and returns it.
func (e Experiment) Write(root string, results Results) (string, error) {
	writer, err := metrics.NewWriter(root, e.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(e.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(results.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	if err := writer.WriteSummaries(results.Summaries); err != nil {
		return "", fmt.Errorf("failed to write summaries: %w", err)
	}
	log.Info().Msgf("stored %s experiment in %s", e.Name, writer.Dir())
	return writer.Dir(), nil
}
