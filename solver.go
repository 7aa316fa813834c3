package cubevision

import "context"

// Solution is a move sequence returned by an external solver.
type Solution struct {
	Moves []Move
}

// Length returns the number of moves in the solution.
func (s Solution) Length() int { return len(s.Moves) }

// Notation returns the space-separated notation string for the solution.
func (s Solution) Notation() string { return FormatMoves(s.Moves) }

// Solver is the external move-search collaborator. It accepts a cube
// notation string that has passed structural validation and returns a
// move sequence, or an error when it considers the string unsolvable.
type Solver interface {
	Solve(ctx context.Context, facelets string) (Solution, error)
}

// VerifySolution applies a solution to a state and checks that it ends
// solved. A validated state the solver failed to solve contradicts the
// validator and comes back as ErrSolverContradiction.
func VerifySolution(state CubeState, sol Solution) error {
	if !state.Apply(sol.Moves...).IsSolved() {
		return ErrSolverContradiction
	}
	return nil
}
