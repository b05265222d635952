package shapes

//enumn:derive
type Shape interface{ isShape() }

type Circle struct{ R float64 }

func (Circle) isShape() {}

//enumn:derive
type Point struct{ X, Y int }
