package cipher

import (
	"strings"

	"github.com/rs/zerolog"

	"bifid/internal/crypto"
	"bifid/internal/domain"
	"bifid/internal/protocol/bifid"
)

// Service encrypts and decrypts with one fixed key square.
type Service struct {
	square      bifid.Square
	padding     rune
	fingerprint domain.Fingerprint
	log         zerolog.Logger
}

// New returns a service whose square is built from key. padding is appended
// to odd-length plaintext.
func New(key string, padding rune, log zerolog.Logger) *Service {
	sq := bifid.NewSquare(key)
	s := &Service{
		square:      sq,
		padding:     padding,
		fingerprint: crypto.FingerprintSquare(sq.Letters()),
		log:         log.With().Str("component", "cipher").Logger(),
	}
	s.log.Debug().
		Bool("keyed", sq.Letters() != domain.Alphabet).
		Str("fingerprint", s.fingerprint.String()).
		Msg("key square built")
	return s
}

// Encrypt enciphers plaintext with the session square.
func (s *Service) Encrypt(plaintext string) string {
	ct := bifid.Encrypt(s.square, plaintext, s.padding)
	s.log.Debug().
		Int("in", len(plaintext)).
		Int("out", len(ct)).
		Str("fingerprint", s.fingerprint.String()).
		Msg("encrypt")
	return ct
}

// Decrypt deciphers ciphertext with the session square. Padding is kept;
// see StripPadding.
func (s *Service) Decrypt(ciphertext string) string {
	pt := bifid.Decrypt(s.square, ciphertext)
	s.log.Debug().
		Int("in", len(ciphertext)).
		Int("out", len(pt)).
		Str("fingerprint", s.fingerprint.String()).
		Msg("decrypt")
	return pt
}

// StripPadding removes one trailing padding letter from plaintext, if present.
func (s *Service) StripPadding(plaintext string) string {
	return strings.TrimSuffix(plaintext, string(s.padding))
}

// Square returns the session key square.
func (s *Service) Square() bifid.Square { return s.square }

// Render returns the labelled session square.
func (s *Service) Render() string { return bifid.Render(s.square) }

// Fingerprint returns the short fingerprint of the session square.
func (s *Service) Fingerprint() domain.Fingerprint { return s.fingerprint }

// Compile-time assertion that Service implements domain.CipherService.
var _ domain.CipherService = (*Service)(nil)
