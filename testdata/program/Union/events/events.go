package events

//enumn:derive
type Event interface{ isEvent() }

type Open struct{}

//enumn:value 10
type Close struct{}

type Reset struct{}

func (Open) isEvent()   {}
func (*Close) isEvent() {}
func (Reset) isEvent()  {}
