package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// HMACStrategy implements auth token creation/verification using HMAC signatures.
// The signed payload is "userID:role:profileID:expires".
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed auth token carrying the actor claims.
func (s *HMACStrategy) IssueToken(claims Claims) (string, error) {
	expires := time.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%d:%s:%d:%d", claims.UserID, claims.Role, claims.ProfileID, expires)
	sig := s.sign(payload)
	token := fmt.Sprintf("%s:%s", payload, sig)
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates the signature and expiry and returns the embedded
// claims.
func (s *HMACStrategy) ParseToken(token string) (Claims, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 5 {
		return Claims{}, ErrInvalidToken
	}

	payload := strings.Join(parts[:4], ":")
	expectedSig := s.sign(payload)
	if !hmac.Equal([]byte(expectedSig), []byte(parts[4])) {
		return Claims{}, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || userID <= 0 {
		return Claims{}, ErrInvalidToken
	}

	role := model.Role(parts[1])
	if !role.Valid() {
		return Claims{}, ErrInvalidToken
	}

	profileID, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	if time.Unix(expires, 0).Before(time.Now()) {
		return Claims{}, ErrInvalidToken
	}

	return Claims{UserID: userID, Role: role, ProfileID: profileID}, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
