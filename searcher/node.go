package searcher

import (
	"math"
	"sync"

	"blobwar/game"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for a won playout
const Loss = -Win // Reward for a lost playout, the opponent's win

// node of an MCTS tree. Rewards are counted for the player whose movement
// led to the node, so a parent maximizes over its children's rewards.
type node struct {
	sync.RWMutex
	parent   *node
	mover    game.Player
	terminal bool
	passes   bool // no movement but the game goes on: a single pass edge
	moves    []game.Movement
	children []*node
	rewards  float64
	visits   int
}

func newNode(parent *node, state game.Configuration) *node {
	n := &node{
		parent:   parent,
		mover:    state.Player().Opponent(),
		terminal: state.GameOver(),
	}
	if !n.terminal {
		n.moves = state.MovementList()
		n.passes = len(n.moves) == 0
	}
	n.children = make([]*node, 0, n.edges())
	return n
}

func (n *node) edges() int {
	switch {
	case n.terminal:
		return 0
	case n.passes:
		return 1
	}
	return len(n.moves)
}

func (n *node) play(state game.Configuration, i int) game.Configuration {
	if n.passes {
		return state.Pass()
	}
	return state.Play(n.moves[i])
}

// selectOrExpand returns the child to descend into and its configuration.
// expanded is true when the child was just added, which ends the descent.
func (n *node) selectOrExpand(state game.Configuration) (child *node, childState game.Configuration, expanded bool) {
	n.Lock()
	defer n.Unlock()

	if n.terminal {
		return n, state, false
	}

	if i := len(n.children); i < n.edges() { // Expandable node
		childState = n.play(state, i)
		child = newNode(n, childState)
		n.children = append(n.children, child)
		child.applyLoss()
		return child, childState, true
	}

	// Fully expanded node
	i := n.pickChild()
	child = n.children[i]
	child.applyLoss()
	return child, n.play(state, i), false
}

func (n *node) pickChild() int {
	// Children may all carry virtual visits before the first backup.
	normalizer := CSquared * math.Log(float64(max(n.visits, 1)))

	maxIndex := 0
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		if score := child.score(normalizer); score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

// applyLoss counts a pending playout as lost so that concurrent descents
// spread over the tree. backup reverses it.
func (n *node) applyLoss() {
	n.Lock()
	defer n.Unlock()

	n.rewards += Loss
	n.visits++
}

func (n *node) score(normalizer float64) float64 {
	n.RLock()
	defer n.RUnlock()

	return ucb(n.rewards, n.visits, normalizer)
}

func ucb(rewards float64, visits int, normalizer float64) float64 {
	if visits == 0 {
		panic("cannot compute UCB: 0 visits")
	}
	return rewards/float64(visits) + math.Sqrt(normalizer/float64(visits))
}

func (n *node) backup(winner game.Player, decided bool) *node {
	n.Lock()
	defer n.Unlock()

	if n.parent != nil { // Non-root node
		n.rewards -= Loss
		n.visits--
	}
	n.rewards += reward(n.mover, winner, decided)
	n.visits++

	return n.parent
}

func reward(player, winner game.Player, decided bool) float64 {
	switch {
	case !decided:
		return 0
	case player == winner:
		return Win
	}
	return Loss
}

func (n *node) Visits() int {
	n.RLock()
	defer n.RUnlock()

	return n.visits
}

// best returns the index of the most visited child, the first on ties.
func (n *node) best() int {
	n.RLock()
	defer n.RUnlock()

	if len(n.children) == 0 {
		panic("node has no children")
	}
	bestIndex, maxVisits := 0, -1
	for i, child := range n.children {
		if v := child.Visits(); v > maxVisits {
			bestIndex, maxVisits = i, v
		}
	}
	return bestIndex
}
