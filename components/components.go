// Package components defines ECS components for the simulation.
package components

// Kind identifies what an entity is. The set is closed; collision handling
// switches over it exhaustively.
type Kind uint8

const (
	KindFish Kind = iota
	KindFood
	KindBubble
)

// String returns the display name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindFish:
		return "fish"
	case KindFood:
		return "food"
	case KindBubble:
		return "bubble"
	default:
		return "unknown"
	}
}

// KindSet is a set of kinds, used for contact interest.
type KindSet uint8

// NewKindSet returns a set holding the given kinds.
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

// Has reports whether k is in the set.
func (s KindSet) Has(k Kind) bool {
	return s&(1<<k) != 0
}

// Texture selects the sprite a renderer should draw.
type Texture uint8

const (
	TextureFish Texture = iota
	TextureDeadFish
	TextureFood
	TextureBubble
)

// String returns the asset name for a Texture.
func (t Texture) String() string {
	switch t {
	case TextureFish:
		return "fish"
	case TextureDeadFish:
		return "deadfish"
	case TextureFood:
		return "food"
	case TextureBubble:
		return "bubble"
	default:
		return "unknown"
	}
}

// Fish tag component. The sprite faces left at positive X scale, so a
// negative Scale.X means the fish faces right.
type Fish struct {
	Texture Texture
}

// Food tag component.
type Food struct{}

// Bubble holds per-bubble identity.
type Bubble struct {
	ID        uint64
	CreatedAt float64 // simulation seconds
}
