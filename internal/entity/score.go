package entity

type Standing string

const (
	StandingHumanWon Standing = "human"
	StandingBotWon   Standing = "bot"
	StandingTie      Standing = "tie"
)

// Score is the running tally of finished games for one profile.
type Score struct {
	HumanWins int `json:"human_wins"`
	BotWins   int `json:"bot_wins"`
	Ties      int `json:"ties"`
}

func (that *Score) Add(standing Standing) {
	switch standing {
	case StandingHumanWon:
		that.HumanWins++
	case StandingBotWon:
		that.BotWins++
	case StandingTie:
		that.Ties++
	}
}

func (that *Score) Total() int {
	return that.HumanWins + that.BotWins + that.Ties
}
