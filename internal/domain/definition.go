package domain

// Размер холста одинаков для всех архетипов.
const (
	DisplayWidth  = 800
	DisplayHeight = 600
)

// AssetType - тип ассета в манифесте. Пока используется только спрайт.
const AssetTypeSprite = "sprite"

// Формы процедурных текстур.
const (
	ShapeRect        = "rect"
	ShapeRoundedRect = "rounded_rect"
	ShapeCircle      = "circle"
	ShapeTriangle    = "triangle"
	ShapeHuman       = "human"
)

// AssetDescriptor описывает процедурно рисуемую текстуру.
type AssetDescriptor struct {
	Shape  string `json:"shape"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Color  Color  `json:"color"`
}

// Asset - элемент манифеста ассетов. URL всегда вида "data:<name>".
type Asset struct {
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	URL        string          `json:"url"`
	Descriptor AssetDescriptor `json:"descriptor"`
}

// NewSpriteAsset собирает спрайт с синтетическим URL.
func NewSpriteAsset(name, shape string, width, height int, color Color) Asset {
	return Asset{
		Name: name,
		Type: AssetTypeSprite,
		URL:  "data:" + name,
		Descriptor: AssetDescriptor{
			Shape:  shape,
			Width:  width,
			Height: height,
			Color:  color,
		},
	}
}

// DisplayConfig - параметры холста рантайма.
type DisplayConfig struct {
	Width   int  `json:"width"`
	Height  int  `json:"height"`
	Physics bool `json:"physics"`
}

// NewDisplayConfig возвращает стандартный холст для архетипа.
func NewDisplayConfig(a Archetype) DisplayConfig {
	return DisplayConfig{Width: DisplayWidth, Height: DisplayHeight, Physics: a.UsesPhysics()}
}

// GameDefinition - самодостаточное описание игры одного архетипа.
// Содержит только данные; правила живут в пакете rules.
type GameDefinition struct {
	Archetype Archetype     `json:"archetype"`
	Tuning    TuningProfile `json:"tuning"`
	Assets    []Asset       `json:"assets"`
	Balancing Balancing     `json:"balancing"`
	Config    DisplayConfig `json:"config"`
}

// AssetNames возвращает имена ассетов в порядке манифеста.
func (d *GameDefinition) AssetNames() []string {
	names := make([]string, 0, len(d.Assets))
	for _, a := range d.Assets {
		names = append(names, a.Name)
	}
	return names
}
