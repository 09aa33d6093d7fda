package tetris

import "fmt"

// Intent is a player request. Intents carry no payload.
type Intent uint8

const (
	MoveLeft Intent = iota
	MoveRight
	SoftDrop
	HardDrop
	Rotate
	Restart
)

var intentNames = [...]string{
	MoveLeft:  "move-left",
	MoveRight: "move-right",
	SoftDrop:  "soft-drop",
	HardDrop:  "hard-drop",
	Rotate:    "rotate",
	Restart:   "restart",
}

// Intents lists every intent in declaration order.
func Intents() []Intent {
	return []Intent{MoveLeft, MoveRight, SoftDrop, HardDrop, Rotate, Restart}
}

func (i Intent) Valid() bool {
	return int(i) < len(intentNames)
}

func (i Intent) String() string {
	if !i.Valid() {
		return fmt.Sprintf("intent(%d)", uint8(i))
	}
	return intentNames[i]
}

// direction maps the movement intents onto Entity.Move directions.
func (i Intent) direction() (Direction, bool) {
	switch i {
	case MoveLeft:
		return Left, true
	case MoveRight:
		return Right, true
	case SoftDrop:
		return Down, true
	case Rotate:
		return Up, true
	}
	return 0, false
}
