package rules

import (
	"math/rand"

	"game-forge/internal/domain"
)

// RunnerSession - бесконечный бег: очки за время, ускорение, препятствия.
type RunnerSession struct {
	session
	balancing domain.RunnerBalancing
	speed     int
}

func NewRunnerSession(balancing domain.RunnerBalancing) *RunnerSession {
	return &RunnerSession{
		session:   newSession(),
		balancing: balancing,
		speed:     balancing.BaseSpeed,
	}
}

// Speed - текущая скорость мира.
func (s *RunnerSession) Speed() int { return s.speed }

// Tick обрабатывает кадр: timeMs - время с начала сцены, deltaMs - длительность кадра.
// Очки растут на max(1, deltaMs/FrameMs); скорость растёт, когда кадр пересекает границу интервала.
func (s *RunnerSession) Tick(timeMs, deltaMs int64) {
	if s.Over() {
		return
	}
	gain := 1
	if s.balancing.FrameMs > 0 {
		gain = max(1, int(deltaMs/int64(s.balancing.FrameMs)))
	}
	s.score += gain

	interval := int64(s.balancing.SpeedRampIntervalMs)
	if interval > 0 && timeMs%interval < deltaMs {
		s.speed += s.balancing.SpeedRampStep
	}
}

// Jump возвращает вертикальную скорость прыжка; прыгать можно только с земли.
func (s *RunnerSession) Jump(grounded bool) (float64, bool) {
	if s.Over() || !grounded {
		return 0, false
	}
	return -float64(s.balancing.JumpVelocity), true
}

// SpawnObstacle выбирает вид препятствия и его горизонтальную скорость.
func (s *RunnerSession) SpawnObstacle(rng *rand.Rand) (kind string, velocityX float64, ok bool) {
	kinds := s.balancing.ObstacleKinds
	if s.Over() || len(kinds) == 0 {
		return "", 0, false
	}
	kind = kinds[0]
	if rng != nil {
		kind = kinds[rng.Intn(len(kinds))]
	}
	return kind, -float64(s.speed), true
}

// HitObstacle - любое касание препятствия заканчивает забег.
func (s *RunnerSession) HitObstacle() {
	s.finish(OutcomeLost)
}
