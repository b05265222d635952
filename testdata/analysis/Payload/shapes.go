package shapes

//enumn:derive
type Shape interface{ isShape() }

type Empty struct{}

type Circle struct{ R float64 } // want `variant Circle with data is not supported`

type Pair [2]int // want `variant Pair with data is not supported`

type Tagged struct { // want `variant Tagged with data is not supported`
	Name string
}

func (Empty) isShape()  {}
func (Circle) isShape() {}
func (Pair) isShape()   {}
func (Tagged) isShape() {}
