package skill

import "fmt"

// CastErrorCode classifies why a cast was rejected.
type CastErrorCode int8

const (
	CodeOnCooldown CastErrorCode = iota
	CodeInsufficientMana
	CodeInvalidSkillID
	CodeNoTargetFound
	CodeCasterDead
)

func (c CastErrorCode) String() string {
	switch c {
	case CodeOnCooldown:
		return "on cooldown"
	case CodeInsufficientMana:
		return "insufficient mana"
	case CodeInvalidSkillID:
		return "invalid skill id"
	case CodeNoTargetFound:
		return "no target found"
	case CodeCasterDead:
		return "caster is dead"
	default:
		return "unknown cast error"
	}
}

// CastError is a local, non-fatal cast rejection. All state is unchanged
// when one is returned (the teleport-miss case rolls its partial mutation
// back before returning).
type CastError struct {
	Code    CastErrorCode
	SkillID string
}

func (e *CastError) Error() string {
	if e.SkillID == "" {
		return fmt.Sprintf("cast failed: %s", e.Code)
	}
	return fmt.Sprintf("cast %s failed: %s", e.SkillID, e.Code)
}

// Is matches any CastError with the same code, so callers can use
// errors.Is(err, skill.ErrOnCooldown).
func (e *CastError) Is(target error) bool {
	t, ok := target.(*CastError)
	return ok && t.Code == e.Code
}

// Sentinel values for errors.Is checks.
var (
	ErrOnCooldown       = &CastError{Code: CodeOnCooldown}
	ErrInsufficientMana = &CastError{Code: CodeInsufficientMana}
	ErrInvalidSkillID   = &CastError{Code: CodeInvalidSkillID}
	ErrNoTargetFound    = &CastError{Code: CodeNoTargetFound}
	ErrCasterDead       = &CastError{Code: CodeCasterDead}
)

func castErr(code CastErrorCode, skillID string) *CastError {
	return &CastError{Code: code, SkillID: skillID}
}
