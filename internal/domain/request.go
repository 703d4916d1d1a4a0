package domain

// DefaultDuration используется, когда длительность сессии не передана.
const DefaultDuration = 5

// Parameters - необязательные параметры запроса на генерацию.
// Duration == nil означает "не задано"; заданное значение зажимается в 1..15.
type Parameters struct {
	Difficulty string `json:"difficulty,omitempty"`
	Theme      string `json:"theme,omitempty"`
	Duration   *int   `json:"duration,omitempty"` // минуты
}

// SessionMinutes - длительность сессии с учётом значения по умолчанию, без зажима.
func (p Parameters) SessionMinutes() int {
	if p.Duration == nil {
		return DefaultDuration
	}
	return *p.Duration
}

// GenerationRequest - неизменяемый вход одного вызова синтеза.
type GenerationRequest struct {
	Prompt     string     `json:"prompt"`
	Parameters Parameters `json:"parameters"`
}

// ClassifierOverride - частичное мнение внешнего классификатора.
// Каждое непустое поле имеет приоритет над эвристиками анализатора.
type ClassifierOverride struct {
	GameType        *Archetype `json:"gameType,omitempty"`
	HumanCharacter  *bool      `json:"humanCharacter,omitempty"`
	Theme           *string    `json:"theme,omitempty"`
	SpeedFactor     *float64   `json:"speedFactor,omitempty"`
	DensityFactor   *float64   `json:"densityFactor,omitempty"`
	DifficultyScale *float64   `json:"difficultyScale,omitempty"`
}

// IsEmpty возвращает true, если в переопределении нет ни одного поля.
func (o *ClassifierOverride) IsEmpty() bool {
	if o == nil {
		return true
	}
	return o.GameType == nil && o.HumanCharacter == nil && o.Theme == nil &&
		o.SpeedFactor == nil && o.DensityFactor == nil && o.DifficultyScale == nil
}

// Color - RGB цвет, упакованный в целое число (0xRRGGBB).
type Color uint32

// TuningProfile - детерминированные коэффициенты, выведенные из промпта и параметров.
type TuningProfile struct {
	DifficultyScale float64 `json:"difficultyScale"`
	SpeedFactor     float64 `json:"speedFactor"`
	DensityFactor   float64 `json:"densityFactor"`
	MainColor       Color   `json:"mainColor"`
	BgColor         Color   `json:"bgColor"`
	Theme           string  `json:"theme"`
}
