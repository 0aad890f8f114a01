package blockgame

// Collides reports whether the falling pose rests on the far boundary or on
// landed pixels. Each pose row is checked only at its leading pixel, the set
// pixel furthest along the advance axis; a gap behind it is not looked at.
func (s *Session) Collides() bool {
	pose := s.currentPose
	width, height := pose.Width(), pose.Height()

	if s.pos.Advance+width >= s.landed.Width() {
		return true
	}

	for row := 0; row < height; row++ {
		for col := width - 1; col >= 0; col-- {
			if !pose.Bit(col, row) {
				continue
			}
			if s.landed.Pixel(s.pos.Advance+col+1, s.pos.Lateral+row) {
				return true
			}
			break
		}
	}
	return false
}
