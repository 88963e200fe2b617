package strokedpath

// CommonCapData derives the shared geometry of a cap from the normal at
// a contour endpoint and whether it is the start or the end cap.
type CommonCapData struct {
	P       Point
	N       Point
	V       Point
	IsStart bool
}

func newCommonCapData(p, normal Point, isStart bool) CommonCapData {
	sigma := 1.0
	if isStart {
		sigma = -1
	}
	return CommonCapData{
		P:       p,
		N:       normal.Mul(sigma),
		V:       normal.PerpInv().Mul(sigma),
		IsStart: isStart,
	}
}
