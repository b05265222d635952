package emit

//enumn:derive repr=u128
type Wide int // want `representation u128 of Wide has no Go integer type`

const WideA Wide = 0

//enumn:derive repr=i128
type Event interface{ isEvent() } // want `representation i128 of Event has no Go integer type`

type Start struct{}

func (Start) isEvent() {}

//enumn:derive
type Dup interface{ isDup() }

//enumn:value 1
type DupA struct{}

//enumn:value 1
type DupB struct{} // want `discriminant 1 of DupB is already assigned to DupA`

type DupC struct{}

func (DupA) isDup() {}
func (DupB) isDup() {}
func (DupC) isDup() {}

//enumn:derive repr=u8
type Wrap interface{ isWrap() }

//enumn:value 255
type Max struct{}

type Zero struct{}

//enumn:value 256
type Again struct{} // want `discriminant 0 of Again is already assigned to Zero`

func (Max) isWrap()   {}
func (Zero) isWrap()  {}
func (Again) isWrap() {}
