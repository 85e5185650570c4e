package component

// Speed is horizontal movement speed in pixels per second.
type Speed struct {
	Value float64
}

// JumpVelocity is the vertical velocity applied on jump. Negative is upward
// in screen space.
type JumpVelocity struct {
	Value float64
}

// Gravity is downward acceleration in pixels per second squared.
type Gravity struct {
	Value float64
}

const (
	DefaultSpeed        = 100.0
	DefaultJumpVelocity = -400.0
	DefaultGravity      = 980.0
)

func DefaultSpeedComponent() *Speed {
	return &Speed{Value: DefaultSpeed}
}

func DefaultJumpVelocityComponent() *JumpVelocity {
	return &JumpVelocity{Value: DefaultJumpVelocity}
}

func DefaultGravityComponent() *Gravity {
	return &Gravity{Value: DefaultGravity}
}

var SpeedComponent = NewComponent[Speed]()
var JumpVelocityComponent = NewComponent[JumpVelocity]()
var GravityComponent = NewComponent[Gravity]()
