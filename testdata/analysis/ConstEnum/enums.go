package enums

//enumn:derive
type Status uint8

const (
	Active Status = iota + 1
	Inactive
	Banned Status = 10
	Blocked       = Banned // alias
)

// Width is declared without a representation.
//
//enumn:derive repr=isize
type Width int16

const (
	Narrow Width = -1
	Wide   Width = 1
)

// Direction has no members.
//
//enumn:derive
type Direction int
