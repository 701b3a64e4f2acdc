package core

// Kind tags the occupant of a cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindBlock
	KindObstacle
	KindRocket
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindBlock:
		return "block"
	case KindObstacle:
		return "obstacle"
	case KindRocket:
		return "rocket"
	default:
		return "unknown"
	}
}

// Color is the color of a block.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
)

// Colors is the set refill and random level cells draw from.
var Colors = [...]Color{ColorRed, ColorGreen, ColorBlue, ColorYellow}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	default:
		return "none"
	}
}

// ObstacleKind identifies an obstacle type.
type ObstacleKind uint8

const (
	ObstacleNone ObstacleKind = iota
	ObstacleBox
	ObstacleStone
	ObstacleVase
)

// ObstacleKinds lists the obstacle kinds in display order.
var ObstacleKinds = [...]ObstacleKind{ObstacleBox, ObstacleStone, ObstacleVase}

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleBox:
		return "box"
	case ObstacleStone:
		return "stone"
	case ObstacleVase:
		return "vase"
	default:
		return "none"
	}
}

// MaxHealth is the starting health of a fresh obstacle.
func (k ObstacleKind) MaxHealth() int {
	switch k {
	case ObstacleVase:
		return 2
	case ObstacleBox, ObstacleStone:
		return 1
	default:
		return 0
	}
}

// CanFall reports whether gravity moves this obstacle.
func (k ObstacleKind) CanFall() bool {
	return k == ObstacleVase
}

// Accepts reports whether the obstacle takes damage of the given type.
func (k ObstacleKind) Accepts(t DamageType) bool {
	switch k {
	case ObstacleBox, ObstacleVase:
		return true
	case ObstacleStone:
		return t == DamageRocket
	default:
		return false
	}
}

// Orientation is the firing axis of a rocket.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Entity is the occupant of one cell. Only the fields relevant to Kind are set.
type Entity struct {
	Kind        Kind
	Color       Color
	Obstacle    ObstacleKind
	Health      int
	Orientation Orientation

	// lastBlast is the last blast id a vase took adjacency damage from.
	lastBlast BlastID
}

// Empty returns the empty occupant.
func Empty() Entity {
	return Entity{}
}

// Block returns a colored block.
func Block(c Color) Entity {
	return Entity{Kind: KindBlock, Color: c}
}

// NewObstacle returns an obstacle at full health.
func NewObstacle(k ObstacleKind) Entity {
	return Entity{Kind: KindObstacle, Obstacle: k, Health: k.MaxHealth()}
}

// NewRocket returns a rocket with the given orientation.
func NewRocket(o Orientation) Entity {
	return Entity{Kind: KindRocket, Orientation: o}
}

func (e Entity) IsEmpty() bool    { return e.Kind == KindEmpty }
func (e Entity) IsBlock() bool    { return e.Kind == KindBlock }
func (e Entity) IsRocket() bool   { return e.Kind == KindRocket }
func (e Entity) IsObstacle() bool { return e.Kind == KindObstacle }

// CanFall reports whether gravity moves this entity.
func (e Entity) CanFall() bool {
	switch e.Kind {
	case KindBlock, KindRocket:
		return true
	case KindObstacle:
		return e.Obstacle.CanFall()
	default:
		return false
	}
}

// Code returns the level-file type code for the entity, or "" for empty cells.
func (e Entity) Code() string {
	switch e.Kind {
	case KindBlock:
		switch e.Color {
		case ColorRed:
			return "r"
		case ColorGreen:
			return "g"
		case ColorBlue:
			return "b"
		case ColorYellow:
			return "y"
		}
	case KindObstacle:
		switch e.Obstacle {
		case ObstacleBox:
			return "bo"
		case ObstacleStone:
			return "s"
		case ObstacleVase:
			return "v"
		}
	case KindRocket:
		if e.Orientation == Vertical {
			return "vro"
		}
		return "hro"
	}
	return ""
}
