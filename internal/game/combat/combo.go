package combat

import (
	"log/slog"

	"github.com/takkar/brimstone/internal/data"
)

// ComboController is the melee combo state machine: a step counter over the
// configured multiplier table, a per-punch cooldown, and a combo window
// that resets the chain when it lapses before the next punch.
//
// The per-punch cooldown and the combo window are independent timers: both
// must be satisfied for a punch to register and to continue the chain.
type ComboController struct {
	multipliers []float64
	step        int

	cooldown    float64 // seconds until the next punch may register
	cooldownMax float64

	window    float64 // seconds left to continue the chain; 0 = no chain
	windowMax float64
}

// NewComboController builds a controller from the combat balance table.
func NewComboController(table data.CombatTable) *ComboController {
	return &ComboController{
		multipliers: table.ComboMultipliers,
		cooldownMax: table.PunchCooldown,
		windowMax:   table.ComboWindow,
	}
}

// Punch attempts to land the next punch. When the per-punch cooldown has
// not elapsed the punch does not register and ok is false. Otherwise the
// current step's damage multiplier is returned, the step advances (wrapping
// past the last step), and both timers re-arm.
func (c *ComboController) Punch() (multiplier float64, ok bool) {
	if c.cooldown > 0 {
		return 0, false
	}

	multiplier = c.multipliers[c.step]
	c.step = (c.step + 1) % len(c.multipliers)
	c.cooldown = c.cooldownMax
	c.window = c.windowMax

	slog.Debug("punch landed", "multiplier", multiplier, "nextStep", c.step)
	return multiplier, true
}

// Update advances both timers. When the combo window lapses the chain
// breaks and the step resets to 0.
func (c *ComboController) Update(delta float64) {
	if delta <= 0 {
		return
	}
	if c.cooldown > 0 {
		c.cooldown -= delta
		if c.cooldown < 0 {
			c.cooldown = 0
		}
	}
	if c.window > 0 {
		c.window -= delta
		if c.window <= 0 {
			c.window = 0
			if c.step != 0 {
				slog.Debug("combo window lapsed", "droppedStep", c.step)
				c.step = 0
			}
		}
	}
}

// Step returns the step the next punch will use.
func (c *ComboController) Step() int { return c.step }

// Ready reports whether the per-punch cooldown has elapsed.
func (c *ComboController) Ready() bool { return c.cooldown <= 0 }

// WindowRemaining returns the seconds left to continue the chain.
func (c *ComboController) WindowRemaining() float64 { return c.window }
