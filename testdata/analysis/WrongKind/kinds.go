package kinds

//enumn:derive
type Point struct{ X, Y int } // want `input must be an enum; Point is a struct`

//enumn:derive
type Name string // want `input must be an enum; Name is a non-enum type`

//enumn:derive
type Ratio float64 // want `input must be an enum; Ratio is a non-enum type`

//enumn:derive
type Level = int // want `input must be an enum; Level is a non-enum type`

//enumn:derive
type Box[T any] interface{ isBox(T) } // want `generic type Box is not supported`
