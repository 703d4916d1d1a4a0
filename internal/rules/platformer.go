package rules

import "game-forge/internal/domain"

// PlatformerSession - сбор монет; победа, когда собраны все, поражение при падении.
type PlatformerSession struct {
	session
	balancing domain.PlatformerBalancing
	coinsLeft int
}

func NewPlatformerSession(balancing domain.PlatformerBalancing) *PlatformerSession {
	return &PlatformerSession{
		session:   newSession(),
		balancing: balancing,
		coinsLeft: balancing.CoinCount,
	}
}

func (s *PlatformerSession) CoinsLeft() int { return s.coinsLeft }

// CoinPositions - стартовые точки монет: ряд с шагом CoinStepX.
func (s *PlatformerSession) CoinPositions() []domain.Point {
	b := s.balancing
	out := make([]domain.Point, b.CoinCount)
	for i := range out {
		out[i] = domain.Point{X: b.CoinStart.X + float64(i*b.CoinStepX), Y: b.CoinStart.Y}
	}
	return out
}

// CollectCoin засчитывает монету.
func (s *PlatformerSession) CollectCoin() {
	if s.Over() || s.coinsLeft == 0 {
		return
	}
	s.coinsLeft--
	s.score += s.balancing.PointsPerCoin
	if s.coinsLeft == 0 {
		s.finish(OutcomeWon)
	}
}

// CheckFall завершает игру, если игрок упал ниже FallLimitY.
func (s *PlatformerSession) CheckFall(y float64) bool {
	if y > s.balancing.FallLimitY {
		s.finish(OutcomeLost)
		return true
	}
	return false
}

// Jump возвращает скорость прыжка (вверх, отрицательная), только с опоры.
func (s *PlatformerSession) Jump(grounded bool) (float64, bool) {
	if s.Over() || !grounded {
		return 0, false
	}
	return -float64(s.balancing.JumpVelocity), true
}
