package experiments

import (
	"blobwar/experiments/metrics"
	"blobwar/game"

	"gonum.org/v1/gonum/stat"
)

// Summarize counts the results of each agent and the mean and standard
// deviation of its search effort per movement.
func Summarize(configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) []metrics.Summary {
	index := make(map[int]int, len(configs))
	summaries := make([]metrics.Summary, len(configs))
	for i, config := range configs {
		index[config.ID] = i
		summaries[i].Agent = config
	}

	// Agent behind each color of each game.
	players := make(map[int][2]int, len(games))
	for _, g := range games {
		players[g.ID] = [2]int{g.Red, g.Blue}
		for color, id := range [2]int{g.Red, g.Blue} {
			i, ok := index[id]
			if !ok {
				continue
			}
			s := &summaries[i]
			s.Games++
			switch g.Winner {
			case "":
				s.Ties++
			case game.Player(color).String():
				s.Wins++
			default:
				s.Losses++
			}
		}
	}

	nodes := make([][]float64, len(configs))
	millis := make([][]float64, len(configs))
	for _, m := range moves {
		color := 0
		if m.Player == game.Blue.String() {
			color = 1
		}
		i, ok := index[players[m.Game][color]]
		if !ok {
			continue
		}
		nodes[i] = append(nodes[i], float64(m.Nodes))
		millis[i] = append(millis[i], float64(m.Duration.Microseconds())/1000)
	}
	for i := range summaries {
		if len(nodes[i]) == 0 {
			continue
		}
		summaries[i].MeanNodes, summaries[i].StdNodes = meanStdDev(nodes[i])
		summaries[i].MeanMillis, summaries[i].StdMillis = meanStdDev(millis[i])
	}
	return summaries
}

func meanStdDev(x []float64) (float64, float64) {
	if len(x) == 1 {
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}
