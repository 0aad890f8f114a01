package blockgame

// Button is a bit mask of pressed buttons. Only single-bit values are acted on.
type Button uint8

const (
	ButtonLeft  Button = 0x01
	ButtonRight Button = 0x02
	ButtonUp    Button = 0x04
	ButtonDown  Button = 0x08
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	default:
		return "none"
	}
}

// OnButton applies one button edge to the falling piece. LEFT and RIGHT move
// it along the lateral axis within the field, UP rotates it. DOWN and any
// combined or unknown value are ignored, as is input outside a running game.
// Nothing is redrawn until the next logical frame or Refresh.
func (s *Session) OnButton(b Button) {
	if s.state != StateFalling {
		return
	}

	switch b {
	case ButtonLeft:
		s.pos.Lateral = min(s.pos.Lateral+1, s.maxLateral())
	case ButtonRight:
		if s.pos.Lateral > 0 {
			s.pos.Lateral--
		}
	case ButtonUp:
		s.rotation = (s.rotation + 1) % Rotations
		s.LoadBlock()
		s.clampLateral()
	case ButtonDown:
	}
}
