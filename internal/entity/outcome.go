package entity

type Result uint8

const (
	ResultOngoing Result = iota
	ResultWon
	ResultDrawn
)

// Outcome is the state of a board as seen by the evaluator. Winner is set only for ResultWon.
type Outcome struct {
	Result Result
	Winner Mark
}

func Ongoing() Outcome {
	return Outcome{Result: ResultOngoing}
}

func Won(mark Mark) Outcome {
	return Outcome{Result: ResultWon, Winner: mark}
}

func Drawn() Outcome {
	return Outcome{Result: ResultDrawn}
}

func (that Outcome) IsTerminal() bool {
	return that.Result != ResultOngoing
}

func (that Outcome) IsWonBy(mark Mark) bool {
	return that.Result == ResultWon && that.Winner == mark
}

func (that Outcome) String() string {
	switch that.Result {
	case ResultWon:
		return "won by " + that.Winner.String()
	case ResultDrawn:
		return "drawn"
	default:
		return "ongoing"
	}
}
