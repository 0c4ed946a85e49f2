package sim

type MessageType int

const (
	_ MessageType = iota
	MsgBoost
	MsgGround
	MsgCeiling
	MsgRespawn
	MsgDawn
	MsgDropped
)

func (mt MessageType) String() string {
	switch mt {
	case MsgBoost:
		return "Boost"
	case MsgGround:
		return "Ground"
	case MsgCeiling:
		return "Ceiling"
	case MsgRespawn:
		return "Respawn"
	case MsgDawn:
		return "Dawn"
	case MsgDropped:
		return "Dropped"
	default:
		return "Unknown"
	}
}

type Message struct {
	Type    MessageType
	World   World // State right after the event.
	Message string
}

func NewMessage(mt MessageType, w World, msg string) Message {
	return Message{
		Type:    mt,
		World:   w,
		Message: msg,
	}
}
