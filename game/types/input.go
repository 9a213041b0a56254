package types

// Input is a discrete event coming from a frontend.
type Input int

const (
	MoveUp Input = iota + 1
	MoveDown
	MoveLeft
	MoveRight
	Restart
	Quit
	Screenshot
)

// Direction maps a movement input to the direction it requests.
// ok is false for non-movement inputs.
func (in Input) Direction() (d Direction, ok bool) {
	switch in {
	case MoveUp:
		return Up, true
	case MoveDown:
		return Down, true
	case MoveLeft:
		return Left, true
	case MoveRight:
		return Right, true
	default:
		return None, false
	}
}

func (in Input) String() string {
	switch in {
	case MoveUp:
		return "move-up"
	case MoveDown:
		return "move-down"
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	case Screenshot:
		return "screenshot"
	default:
		return "unknown"
	}
}
