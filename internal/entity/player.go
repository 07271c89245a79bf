package entity

// Participant is one of the two sides of a game.
type Participant uint8

const (
	Human Participant = iota
	Automated
)

func (that Participant) Other() Participant {
	if that == Human {
		return Automated
	}
	return Human
}

func (that Participant) String() string {
	if that == Human {
		return "human"
	}
	return "bot"
}
