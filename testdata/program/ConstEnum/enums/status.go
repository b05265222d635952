package enums

//enumn:derive
type Status uint8

const (
	Active Status = iota + 1
	Inactive
	Banned  Status = 10
	Blocked        = Banned
)

func (s Status) String() string {
	switch s {
	case Active:
		return "Active"
	case Inactive:
		return "Inactive"
	case Banned:
		return "Banned"
	}
	return "Status(?)"
}

//enumn:derive repr=u8
type Code int

const (
	Small Code = 1
	Big   Code = 300
	Huge  Code = 301
)
