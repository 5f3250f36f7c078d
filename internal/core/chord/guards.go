package chord

import (
	"fmt"
	"strings"

	"github.com/example/fretsvg/internal/core/geometry"
)

// MaxFret is the highest fret a registered shape may use.
const MaxFret = 24

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed  bool
	Reason   string
	Conflict bool // true when the rejection is a duplicate name
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// RegisterChordContext provides context for chord registration guards.
type RegisterChordContext struct {
	Name       string
	Shape      Shape
	NameExists bool // true if a chord with this name is already known
}

// CanRegisterChord evaluates whether a chord shape can be registered.
// Rules:
// - Name must not be empty
// - Name must be unique
// - Exactly one fret value per string
// - Fret values must be muted, open or a fret up to MaxFret
// - Barres must reference real strings and a fretted position
func CanRegisterChord(ctx RegisterChordContext) GuardResult {
	// Rule 1: Name must not be empty
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "chord name cannot be empty",
		}
	}

	// Rule 2: Name must be unique
	if ctx.NameExists {
		return GuardResult{
			Allowed:  false,
			Reason:   fmt.Sprintf("chord %q already exists", ctx.Name),
			Conflict: true,
		}
	}

	// Rule 3: one value per string
	if len(ctx.Shape.Frets) != geometry.StringCount {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("chord needs exactly %d frets (got %d)", geometry.StringCount, len(ctx.Shape.Frets)),
		}
	}

	// Rule 4: fret range
	for i, f := range ctx.Shape.Frets {
		if f < Muted || f > MaxFret {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("fret %d on string %d is out of range (-1..%d)", f, i+1, MaxFret),
			}
		}
	}

	// Rule 5: barres
	for _, b := range ctx.Shape.Barres {
		if !validString(b.FromString) || !validString(b.ToString) {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("barre strings must be between 1 and %d (got %d-%d)", geometry.StringCount, b.FromString, b.ToString),
			}
		}
		if b.Fret < 1 || b.Fret > MaxFret {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("barre fret %d is out of range (1..%d)", b.Fret, MaxFret),
			}
		}
	}

	return GuardResult{Allowed: true}
}

func validString(n int) bool {
	return n >= 1 && n <= geometry.StringCount
}
