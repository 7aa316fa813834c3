package cubevision

// ClassifyFace classifies nine sampled patches into one CapturedFace.
// Ambiguous facelets do not abort the face: the best candidate is kept
// with its low confidence and the per-facelet errors are returned
// alongside, indexed by sticker position, for the caller to act on.
func ClassifyFace(label string, samples [9]ColorSample, cl *Classifier) (CapturedFace, map[int]error) {
	face := CapturedFace{Label: label}
	var ambiguous map[int]error
	for i, s := range samples {
		color, conf, err := cl.Classify(s)
		face.Colors[i] = color
		face.Confidence[i] = conf
		if err != nil {
			if ambiguous == nil {
				ambiguous = make(map[int]error)
			}
			ambiguous[i] = err
		}
	}
	return face, ambiguous
}

// Assemble combines six captured faces into one canonical CubeState.
// Faces may arrive in any order: each face's center color decides which
// canonical face it lands on. The nine colors are placed exactly as
// captured - rotation errors are left for the validator and corrector,
// which have the cross-face information needed to detect them.
//
// Duplicate or missing center colors abort assembly; no partial state is
// produced.
func Assemble(faces [6]CapturedFace) (CubeState, error) {
	var byCenter [6]*CapturedFace
	for i := range faces {
		center := faces[i].Center()
		if prev := byCenter[center]; prev != nil {
			return CubeState{}, &DuplicateCenterError{
				Color:  center,
				First:  prev.Label,
				Second: faces[i].Label,
			}
		}
		byCenter[center] = &faces[i]
	}
	for _, c := range Colors {
		if byCenter[c] == nil {
			return CubeState{}, &MissingCenterError{Color: c}
		}
	}

	var state CubeState
	for _, c := range Colors {
		cf := byCenter[c]
		target := FaceOfColor(c)
		base := int(target) * 9
		for i := 0; i < 9; i++ {
			state.Facelets[base+i] = Facelet{
				Pos:        base + i,
				Face:       target,
				Color:      cf.Colors[i],
				Confidence: cf.Confidence[i],
			}
		}
	}
	return state, nil
}
