package blockgame

// SelectNewBlock draws the next shape, counts it towards the score and
// speeds the game up every SpeedUpEvery points until MinSpeed is reached.
func (s *Session) SelectNewBlock() {
	s.shape = Shape(s.src.Next() % ShapeCount)
	s.score++
	if s.speed > s.cfg.MinSpeed && s.score%s.cfg.SpeedUpEvery == 0 {
		s.speed--
		s.logger.Printf("speed up: score=%d speed=%d", s.score, s.speed)
	}
}

// LoadBlock copies the catalog pose for the current shape and rotation into
// the falling pose.
func (s *Session) LoadBlock() {
	s.currentPose = Pose(s.shape, s.rotation)
}
