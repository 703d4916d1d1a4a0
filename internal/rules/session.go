package rules

// Outcome - исход сессии физических архетипов.
type Outcome string

const (
	OutcomePlaying Outcome = "playing"
	OutcomeWon     Outcome = "won"
	OutcomeLost    Outcome = "lost"
)

// Velocity - скорость в пикселях в секунду. Y растёт вниз.
type Velocity struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type session struct {
	score   int
	outcome Outcome
}

func newSession() session {
	return session{outcome: OutcomePlaying}
}

func (s *session) Score() int       { return s.score }
func (s *session) Outcome() Outcome { return s.outcome }
func (s *session) Over() bool       { return s.outcome != OutcomePlaying }

func (s *session) finish(o Outcome) {
	if s.outcome == OutcomePlaying {
		s.outcome = o
	}
}
