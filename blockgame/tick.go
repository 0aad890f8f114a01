package blockgame

// OnTick advances the game by one scheduler tick. Every TicksPerFrame-th
// call is a logical frame; every speed-th logical frame is a gravity frame in
// which the piece either advances or lands. A landed piece is merged into the
// field, completed lines are removed and a new piece spawns, unless the
// piece landed next to the spawn line which ends the game.
func (s *Session) OnTick() {
	if s.state != StateFalling {
		return
	}

	s.tickCounter++
	if s.tickCounter < s.cfg.TicksPerFrame {
		return
	}
	s.tickCounter = 0
	s.speedStep++

	landed := false
	if s.speedStep >= s.speed {
		s.speedStep = 0

		if s.Collides() {
			s.CommitToLanded()
			s.ClearCompletedLines()
			landed = true

			if s.pos.Advance <= 1 {
				s.gameOver()
				return
			}
			s.respawn()
		} else {
			s.pos.Advance++
		}
	}

	s.refresh(landed)
}

func (s *Session) respawn() {
	s.pos.Advance = 0
	s.pos.Lateral = s.cfg.SpawnLateral
	s.SelectNewBlock()
	s.LoadBlock()
	s.clampLateral()
}

// Refresh redraws the falling piece if it moved or rotated since the last
// render and reports whether a frame was rendered.
func (s *Session) Refresh() bool {
	if s.state != StateFalling {
		return false
	}
	return s.refresh(false)
}

// refresh erases the previous pose unless it just landed, draws the current
// one and renders.
func (s *Session) refresh(landed bool) bool {
	if s.pos == s.previousPos && s.rotation == s.previousRot {
		return false
	}

	if !landed {
		s.display.EraseTile(s.previousPos.Advance, s.previousPos.Lateral, s.previousPose)
		s.restoreLanded(s.previousPos, s.previousPose.Width(), s.previousPose.Height())
	}
	s.display.PlaceTile(s.pos.Advance, s.pos.Lateral, s.currentPose, false)

	s.previousPos = s.pos
	s.previousRot = s.rotation
	s.previousPose = s.currentPose

	s.renderer.Render(s.display)
	return true
}

// restoreLanded redraws landed pixels inside a footprint after an erase, so a
// pose moved across landed pixels does not leave holes on the display.
func (s *Session) restoreLanded(at Position, width, height int) {
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if s.landed.Pixel(at.Advance+col, at.Lateral+row) {
				s.display.SetPixel(at.Advance+col, at.Lateral+row, true)
			}
		}
	}
}
