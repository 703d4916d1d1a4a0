package rules

import (
	"math"

	"game-forge/internal/domain"
)

// BreakoutSession - правила арканоида: отскоки, разбивание кирпичей, потеря мяча.
type BreakoutSession struct {
	session
	balancing domain.ArcadeBalancing
	bricks    int
}

func NewBreakoutSession(balancing domain.ArcadeBalancing) *BreakoutSession {
	return &BreakoutSession{
		session:   newSession(),
		balancing: balancing,
		bricks:    balancing.Rows * balancing.Cols,
	}
}

// BricksLeft - сколько кирпичей ещё на поле.
func (s *BreakoutSession) BricksLeft() int { return s.bricks }

// InitialVelocity - мяч стартует по диагонали вверх-вправо.
func (s *BreakoutSession) InitialVelocity() Velocity {
	speed := float64(s.balancing.BallSpeed)
	return Velocity{X: speed, Y: -speed}
}

// BrickPositions возвращает центры кирпичей построчно.
func (s *BreakoutSession) BrickPositions() []domain.Point {
	b := s.balancing
	out := make([]domain.Point, 0, b.Rows*b.Cols)
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			out = append(out, domain.Point{
				X: b.BrickOrigin.X + float64(col*b.BrickSpacingX),
				Y: b.BrickOrigin.Y + float64(row*b.BrickSpacingY),
			})
		}
	}
	return out
}

// HitPaddle отражает мяч вверх; горизонталь зависит от точки удара.
func (s *BreakoutSession) HitPaddle(v Velocity, ballX, paddleX float64) Velocity {
	return Velocity{
		X: (ballX - paddleX) * float64(s.balancing.PaddleSpin),
		Y: -math.Abs(v.Y),
	}
}

// HitBrick убирает кирпич, начисляет очки и ускоряет мяч на SpeedIncrement.
// Направление нормируется по max(старая скорость, 1).
func (s *BreakoutSession) HitBrick(v Velocity) Velocity {
	if s.Over() {
		return v
	}
	s.bricks--
	s.score += s.balancing.PointsPerBrick

	inc := float64(s.balancing.SpeedIncrement)
	speed := math.Hypot(v.X, v.Y) + inc
	norm := math.Max(speed-inc, 1)
	next := Velocity{X: v.X / norm * speed, Y: v.Y / norm * speed}

	if s.bricks <= 0 {
		s.finish(OutcomeWon)
	}
	return next
}

// BallLost - мяч ушёл за нижнюю границу.
func (s *BreakoutSession) BallLost() {
	s.finish(OutcomeLost)
}
