package simulation

import (
	"errors"
	"fmt"
	"math"

	"github.com/lao-tseu-is-alive/go-flock/pkg/flock"
	"go.uber.org/multierr"
)

// ErrInvalidParameters is wrapped by every violation reported by ValidateUpdate.
var ErrInvalidParameters = errors.New("invalid parameters")

// ValidateUpdate checks the fields named by u and returns every violation at once.
// The world itself accepts anything; this is the guard for values coming from outside.
func ValidateUpdate(u flock.ParamUpdate) error {
	var err error
	check := func(name string, v *float64, valid func(float64) bool, rule string) {
		if v == nil {
			return
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			err = multierr.Append(err, fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParameters, name, *v))
			return
		}
		if valid != nil && !valid(*v) {
			err = multierr.Append(err, fmt.Errorf("%w: %s must be %s, got %v", ErrInvalidParameters, name, rule, *v))
		}
	}

	check("separation weight", u.SeparationWeight, nil, "")
	check("alignment weight", u.AlignmentWeight, nil, "")
	check("cohesion weight", u.CohesionWeight, nil, "")
	check("inertia", u.Inertia, func(v float64) bool { return v >= 0 && v <= 1 }, "in [0, 1]")
	check("speed", u.Speed, func(v float64) bool { return v >= 0 }, ">= 0")
	check("neighborhood radius", u.NeighborhoodRadius, func(v float64) bool { return v > 0 }, "> 0")
	check("view angle", u.ViewAngle, func(v float64) bool { return v >= 0 }, ">= 0")
	return err
}
