package entity

// Mark is the content of a board cell. The zero value is an empty cell.
type Mark uint8

const (
	EmptyCell Mark = iota
	MarkX
	MarkO
)

// Opponent returns the complementary mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return EmptyCell
	}
}

// String is meant for logs. The console renders marks on its own.
func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "empty"
	}
}
