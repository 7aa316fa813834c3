// Package cubevision turns photographs of the six faces of a Rubik's cube
// into a validated, canonical 54-facelet cube state ready for a move-search
// solver.
//
// # Pipeline
//
// A capture session runs each face image through the same stages:
//
//	img -> SampleFace -> Classifier.Classify (x9) -> CapturedFace
//
// and then combines the six captured faces:
//
//	Assemble (x6 faces) -> CubeState -> Validate -> Correct -> solver
//
// Every stage is a pure function of its inputs and the package's immutable
// reference tables, so the engine is safe to call from concurrent sessions
// without locking.
//
// # Quick start
//
// Classify six already-sampled faces and validate the result:
//
//	cl := cubevision.NewClassifier()
//	var faces [6]cubevision.CapturedFace
//	for i, img := range faceImages {
//	    samples, err := cubevision.SampleFace(img)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    faces[i], _ = cubevision.ClassifyFace(fmt.Sprintf("face-%d", i), samples, cl)
//	}
//
//	state, err := cubevision.Assemble(faces)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report := cubevision.Validate(state)
//	if !report.Valid {
//	    state, report = cubevision.Correct(state, report)
//	}
//	fmt.Println(state.String()) // 54-char URFDLB string for the solver
//
// # Validation
//
// Validate checks the group-theoretic laws a physical cube must satisfy:
// global color counts, per-corner color sets and clockwise order, corner
// twist parity (mod 3), per-edge color sets and flip parity (mod 2), and
// corner/edge permutation parity consistency. Each violation is reported
// as a ValidationError naming the offending corner or edge, so a caller
// can localize the exact stickers to re-examine.
//
// # Correction
//
// Correct repairs the two common capture artifacts - faces photographed in
// the wrong order and faces rotated relative to canonical orientation -
// with a bounded, deterministic search driven by the validator's
// diagnostics. Genuine physical impossibilities (a repainted sticker, a
// twisted corner) never converge and come back with an UncorrectableError
// entry in the report.
package cubevision
