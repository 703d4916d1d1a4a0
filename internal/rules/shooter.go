package rules

import (
	"math"
	"math/rand"

	"game-forge/internal/domain"
)

// ShooterSession - счёт и нарастание скорости врагов вертикального шутера.
type ShooterSession struct {
	session
	balancing  domain.ShooterBalancing
	enemySpeed float64
	kills      int
}

func NewShooterSession(balancing domain.ShooterBalancing) *ShooterSession {
	return &ShooterSession{
		session:    newSession(),
		balancing:  balancing,
		enemySpeed: float64(balancing.BaseEnemySpeed),
	}
}

// EnemySpeed - текущая (не ограниченная) скорость врагов.
func (s *ShooterSession) EnemySpeed() float64 { return s.enemySpeed }

// SpawnEnemy выбирает x появления и скорость падения врага, затем ускоряет следующих.
// ok = false после конца игры.
func (s *ShooterSession) SpawnEnemy(rng *rand.Rand) (x float64, fallSpeed float64, ok bool) {
	if s.Over() {
		return 0, 0, false
	}
	span := s.balancing.SpawnMaxX - s.balancing.SpawnMinX + 1
	x = float64(s.balancing.SpawnMinX)
	if rng != nil && span > 0 {
		x += float64(rng.Intn(span))
	}
	fallSpeed = math.Min(s.enemySpeed, s.balancing.EnemySpeedCap)
	s.enemySpeed += s.balancing.EnemySpeedStep
	return x, fallSpeed, true
}

// BulletVelocity - вертикальная скорость пули (вверх, поэтому отрицательная).
// Привязана к текущей скорости врагов с тем же потолком.
func (s *ShooterSession) BulletVelocity() float64 {
	return -math.Min(s.enemySpeed, s.balancing.EnemySpeedCap)
}

// HitEnemy засчитывает сбитого врага.
func (s *ShooterSession) HitEnemy() {
	if s.Over() {
		return
	}
	s.kills++
	s.score += s.balancing.PointsPerKill
}

// HitPlayer - враг коснулся игрока, игра проиграна.
func (s *ShooterSession) HitPlayer() {
	s.finish(OutcomeLost)
}

func (s *ShooterSession) Kills() int { return s.kills }
