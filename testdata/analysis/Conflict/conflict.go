package conflict

//enumn:derive
type Color int // want `cannot generate ColorN for Color: already declared at .*conflict.go:11:6`

const (
	Red Color = iota
	Green
)

func ColorN(v int) (Color, bool) { return Color(v), v >= 0 && v <= 1 }

//enumn:derive
type Free int

const Only Free = 0
