package progress

import (
	"crypto/hmac"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// ErrTampered is returned by Open when a payload's MAC does not verify.
var ErrTampered = errors.New("progress: payload MAC mismatch")

const envelopeVersion = 1

// envelope is the sealed on-store shape of a payload.
type envelope struct {
	Version int             `json:"v"`
	MAC     string          `json:"mac"`
	Payload json.RawMessage `json:"payload"`
}

// Codec seals and opens progression payloads with a keyed blake2b MAC.
type Codec struct {
	key []byte
}

// NewCodec derives the MAC key from secret. An empty secret is rejected:
// unsealed saves would be silently rewritable.
func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("progress: save secret must not be empty")
	}
	key := blake2b.Sum256([]byte(secret))
	return &Codec{key: key[:]}, nil
}

// Seal wraps a JSON payload with its MAC.
func (c *Codec) Seal(payload []byte) ([]byte, error) {
	mac, err := c.mac(payload)
	if err != nil {
		return nil, err
	}
	sealed, err := json.Marshal(envelope{
		Version: envelopeVersion,
		MAC:     hex.EncodeToString(mac),
		Payload: json.RawMessage(payload),
	})
	if err != nil {
		return nil, fmt.Errorf("sealing payload: %w", err)
	}
	return sealed, nil
}

// Open verifies a sealed payload and returns the inner JSON.
// Returns ErrTampered when the MAC does not match.
func (c *Codec) Open(sealed []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(sealed, &env); err != nil {
		return nil, fmt.Errorf("parsing sealed payload: %w", err)
	}
	if env.Version != envelopeVersion {
		return nil, fmt.Errorf("unsupported envelope version %d", env.Version)
	}
	claimed, err := hex.DecodeString(env.MAC)
	if err != nil {
		return nil, fmt.Errorf("decoding MAC: %w", err)
	}
	actual, err := c.mac(env.Payload)
	if err != nil {
		return nil, err
	}
	if !hmac.Equal(claimed, actual) {
		return nil, ErrTampered
	}
	return env.Payload, nil
}

func (c *Codec) mac(payload []byte) ([]byte, error) {
	h, err := blake2b.New256(c.key)
	if err != nil {
		return nil, fmt.Errorf("initializing MAC: %w", err)
	}
	h.Write(payload)
	return h.Sum(nil), nil
}
