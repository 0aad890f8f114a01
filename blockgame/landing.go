package blockgame

// CommitToLanded ORs the falling pose into the landed field.
func (s *Session) CommitToLanded() {
	s.landed.PlaceTile(s.pos.Advance, s.pos.Lateral, s.currentPose, false)
}

// ClearCompletedLines removes every line that is occupied across the whole
// lateral axis and returns how many were removed. Lines are scanned from the
// far boundary towards the spawn line. A removed line is replaced by the
// content inward of it, so the same line is checked again until it is no
// longer complete. The display buffer is shifted alongside the landed field.
func (s *Session) ClearCompletedLines() int {
	cleared := 0
	for col := s.landed.Width() - 1; col > 0; col-- {
		for s.lineComplete(col) {
			s.removeLine(col)
			cleared++
		}
	}

	if cleared > 0 {
		s.lines += cleared
		s.logger.Printf("cleared %d line(s): lines=%d", cleared, s.lines)
	}
	return cleared
}

func (s *Session) lineComplete(col int) bool {
	for row := 0; row < s.landed.Height(); row++ {
		if !s.landed.Pixel(col, row) {
			return false
		}
	}
	return true
}

// removeLine shifts columns [0, col) one step outward over col and vacates
// the spawn line.
func (s *Session) removeLine(col int) {
	for row := 0; row < s.landed.Height(); row++ {
		for c := col; c > 0; c-- {
			v := s.landed.Pixel(c-1, row)
			s.landed.SetPixel(c, row, v)
			s.display.SetPixel(c, row, v)
		}
		s.landed.SetPixel(0, row, false)
		s.display.SetPixel(0, row, false)
	}
}
