package domain

// Balancing - набор констант одного архетипа. Заполнено ровно одно поле,
// и оно соответствует GameDefinition.Archetype.
type Balancing struct {
	Platformer *PlatformerBalancing `json:"platformer,omitempty"`
	Shooter    *ShooterBalancing    `json:"shooter,omitempty"`
	Puzzle     *PuzzleBalancing     `json:"puzzle,omitempty"`
	TicTacToe  *TicTacToeBalancing  `json:"tictactoe,omitempty"`
	Memory     *MemoryBalancing     `json:"memory,omitempty"`
	Arcade     *ArcadeBalancing     `json:"arcade,omitempty"`
	Runner     *RunnerBalancing     `json:"runner,omitempty"`
}

// Archetype возвращает архетип заполненного поля или "" если не заполнено ни одно.
func (b Balancing) Archetype() Archetype {
	switch {
	case b.Platformer != nil:
		return ArchetypePlatformer
	case b.Shooter != nil:
		return ArchetypeShooter
	case b.Puzzle != nil:
		return ArchetypePuzzle
	case b.TicTacToe != nil:
		return ArchetypeTicTacToe
	case b.Memory != nil:
		return ArchetypeMemory
	case b.Arcade != nil:
		return ArchetypeArcade
	case b.Runner != nil:
		return ArchetypeRunner
	}
	return ""
}

// Point - координата на холсте.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Platform - статичная платформа; ScaleX растягивает текстуру по горизонтали.
type Platform struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	ScaleX float64 `json:"scaleX"`
}

type PlatformerBalancing struct {
	HumanPlayer   bool       `json:"humanPlayer"`
	PlayerColor   Color      `json:"playerColor"`
	PlatformColor Color      `json:"platformColor"`
	CoinColor     Color      `json:"coinColor"`
	PlayerStart   Point      `json:"playerStart"`
	Platforms     []Platform `json:"platforms"`
	CoinCount     int        `json:"coinCount"`
	CoinStart     Point      `json:"coinStart"`
	CoinStepX     int        `json:"coinStepX"`
	Gravity       int        `json:"gravity"`
	MoveSpeed     int        `json:"moveSpeed"`
	JumpVelocity  int        `json:"jumpVelocity"`
	FallLimitY    float64    `json:"fallLimitY"`
	PointsPerCoin int        `json:"pointsPerCoin"`
}

type ShooterBalancing struct {
	HumanPlayer    bool    `json:"humanPlayer"`
	PlayerColor    Color   `json:"playerColor"`
	EnemyColor     Color   `json:"enemyColor"`
	BulletColor    Color   `json:"bulletColor"`
	PlayerStart    Point   `json:"playerStart"`
	PlayerSpeed    int     `json:"playerSpeed"`
	BaseEnemySpeed int     `json:"baseEnemySpeed"`
	EnemySpeedCap  float64 `json:"enemySpeedCap"`
	EnemySpeedStep float64 `json:"enemySpeedStep"`
	SpawnDelayMs   int     `json:"spawnDelayMs"`
	SpawnMinX      int     `json:"spawnMinX"`
	SpawnMaxX      int     `json:"spawnMaxX"`
	PointsPerKill  int     `json:"pointsPerKill"`
}

type PuzzleBalancing struct {
	GridSize     int   `json:"gridSize"`
	TileSize     int   `json:"tileSize"`
	TileColor    Color `json:"tileColor"`
	ShuffleMoves int   `json:"shuffleMoves"`
	MaxScore     int   `json:"maxScore"`
	MovePenalty  int   `json:"movePenalty"`
	MinScore     int   `json:"minScore"`
}

type TicTacToeBalancing struct {
	AccentColor     Color `json:"accentColor"`
	CellSize        int   `json:"cellSize"`
	ComputerDelayMs int   `json:"computerDelayMs"`
	WinScore        int   `json:"winScore"`
	LossScore       int   `json:"lossScore"`
	DrawScore       int   `json:"drawScore"`
}

type MemoryBalancing struct {
	Rows            int     `json:"rows"`
	Cols            int     `json:"cols"`
	Pairs           int     `json:"pairs"`
	PreviewMs       int     `json:"previewMs"`
	MismatchDelayMs int     `json:"mismatchDelayMs"`
	BackColor       Color   `json:"backColor"`
	FaceColors      []Color `json:"faceColors"`
	BaseScore       int     `json:"baseScore"`
	PenaltyPerMove  int     `json:"penaltyPerMove"`
	MinScore        int     `json:"minScore"`
}

type ArcadeBalancing struct {
	PaddleColor    Color `json:"paddleColor"`
	BallColor      Color `json:"ballColor"`
	BrickColor     Color `json:"brickColor"`
	PaddleStart    Point `json:"paddleStart"`
	PaddleSpeed    int   `json:"paddleSpeed"`
	BallStart      Point `json:"ballStart"`
	BallSpeed      int   `json:"ballSpeed"`
	Rows           int   `json:"rows"`
	Cols           int   `json:"cols"`
	BrickOrigin    Point `json:"brickOrigin"`
	BrickSpacingX  int   `json:"brickSpacingX"`
	BrickSpacingY  int   `json:"brickSpacingY"`
	SpeedIncrement int   `json:"speedIncrement"`
	PaddleSpin     int   `json:"paddleSpin"`
	PointsPerBrick int   `json:"pointsPerBrick"`
}

type RunnerBalancing struct {
	HumanPlayer         bool     `json:"humanPlayer"`
	PlayerColor         Color    `json:"playerColor"`
	GroundColor         Color    `json:"groundColor"`
	PlayerStart         Point    `json:"playerStart"`
	BaseSpeed           int      `json:"baseSpeed"`
	Gravity             int      `json:"gravity"`
	JumpVelocity        int      `json:"jumpVelocity"`
	SpawnDelayMs        int      `json:"spawnDelayMs"`
	SpawnX              float64  `json:"spawnX"`
	ObstacleKinds       []string `json:"obstacleKinds"`
	SpeedRampStep       int      `json:"speedRampStep"`
	SpeedRampIntervalMs int      `json:"speedRampIntervalMs"`
	FrameMs             int      `json:"frameMs"`
}
