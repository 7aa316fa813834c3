// Package solver adapts an external two-phase solver binary to the
// cubevision.Solver interface. The engine treats the solver as a black
// box: any structurally valid state it rejects is a validator bug and is
// surfaced as such, never swallowed.
package solver

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/SeamusWaldron/cubevision"
)

// ErrSolverFailed indicates the external solver process failed to run or
// produced unusable output.
var ErrSolverFailed = errors.New("solver: external solver failed")

// CommandSolver invokes an external solver binary with the 54-character
// cube string as its final argument and reads a space-separated move
// sequence from stdout.
type CommandSolver struct {
	path string
	args []string
}

// NewCommandSolver creates a solver backed by the binary at path.
// Extra args are passed before the cube string.
func NewCommandSolver(path string, args ...string) *CommandSolver {
	return &CommandSolver{path: path, args: args}
}

// Solve runs the external solver. A non-zero exit is reported as the
// solver rejecting the state; since callers only pass validated states,
// they should treat that as ErrSolverContradiction territory.
func (s *CommandSolver) Solve(ctx context.Context, facelets string) (cubevision.Solution, error) {
	args := append(append([]string(nil), s.args...), facelets)
	cmd := exec.CommandContext(ctx, s.path, args...)

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return cubevision.Solution{}, fmt.Errorf("%w: %s", cubevision.ErrSolverContradiction, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return cubevision.Solution{}, fmt.Errorf("%w: %v", ErrSolverFailed, err)
	}

	moves, err := cubevision.ParseMoves(strings.TrimSpace(string(out)))
	if err != nil {
		return cubevision.Solution{}, fmt.Errorf("%w: unparseable move sequence %q", ErrSolverFailed, strings.TrimSpace(string(out)))
	}

	return cubevision.Solution{Moves: moves}, nil
}
