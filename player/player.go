package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"blobwar/game"
)

// Human asks a person for each movement on a terminal.
type Human struct {
	in  *bufio.Reader
	out io.Writer
}

// NewHuman reads answers from in and writes prompts to out.
func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewReader(in), out: out}
}

func (h *Human) String() string {
	return "Human"
}

// ComputeNextMove lists the legal movements and reads either the index of
// one of them or a movement in "a1+b2" / "a1-c3" notation. Invalid answers
// are asked again; end of input gives up the game.
func (h *Human) ComputeNextMove(state game.Configuration) (game.Movement, bool) {
	moves := state.MovementList()
	if len(moves) == 0 {
		fmt.Fprintf(h.out, "%v has no movement and passes\n", state.Player())
		return game.Movement{}, false
	}

	fmt.Fprint(h.out, state)
	for i, m := range moves {
		fmt.Fprintf(h.out, "%3d: %v\n", i, m)
	}
	for {
		fmt.Fprintf(h.out, "%v to move: ", state.Player())
		line, err := h.in.ReadString('\n')
		if answer := strings.TrimSpace(line); answer != "" {
			if m, ok := choose(answer, state, moves); ok {
				return m, true
			}
			fmt.Fprintf(h.out, "invalid movement %q\n", answer)
		}
		if err != nil { // End of input
			fmt.Fprintln(h.out)
			return game.Movement{}, false
		}
	}
}

func choose(answer string, state game.Configuration, moves []game.Movement) (game.Movement, bool) {
	if i, err := strconv.Atoi(answer); err == nil {
		if i < 0 || i >= len(moves) {
			return game.Movement{}, false
		}
		return moves[i], true
	}
	m, err := game.ParseMovement(answer)
	if err != nil || !state.Legal(m) {
		return game.Movement{}, false
	}
	return m, true
}
