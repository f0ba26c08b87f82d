package jwtmanager

import (
	"context"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"freeslot-service/internal/app/config"
	"freeslot-service/internal/pkg/constvars"
	"freeslot-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	AlgHS256 = "HS256"
	AlgES256 = "ES256"
	AlgRS256 = "RS256"
)

var ErrSigningDisabled = errors.New("webhook token signing is not configured")

// JWTManager signs the bearer tokens attached to outgoing webhook calls.
type JWTManager struct {
	log     *zap.Logger
	alg     string
	ttl     time.Duration
	secret  []byte
	ecPriv  *ecdsa.PrivateKey
	rsaPriv *rsa.PrivateKey
}

// NewJWTManager reads Webhook.JWTAlg with either Webhook.JWTSecret (HS256) or
// the PEM encoded Webhook.JWTPrivateKey (ES256, RS256). It returns
// ErrSigningDisabled when neither secret nor key is set.
func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.Webhook.JWTSecret)
	pemKey := strings.TrimSpace(cfg.Webhook.JWTPrivateKey)
	if secret == "" && pemKey == "" {
		return nil, ErrSigningDisabled
	}

	alg := strings.ToUpper(strings.TrimSpace(cfg.Webhook.JWTAlg))
	if alg == "" {
		alg = AlgHS256
		if pemKey != "" {
			alg = AlgES256
		}
	}

	jm := &JWTManager{
		log: log,
		alg: alg,
		ttl: constvars.WebhookTokenTTLInMin * time.Minute,
	}

	switch alg {
	case AlgHS256:
		if secret == "" {
			return nil, fmt.Errorf("%s requires WEBHOOK_JWT_SECRET", alg)
		}
		jm.secret = []byte(secret)
	case AlgES256, AlgRS256:
		block, _ := pem.Decode([]byte(pemKey))
		if block == nil {
			return nil, fmt.Errorf("failed to decode PEM for WEBHOOK_JWT_PRIVATE_KEY")
		}
		var err error
		if alg == AlgES256 {
			jm.ecPriv, err = parseECPrivateKey(block)
		} else {
			jm.rsaPriv, err = parseRSAPrivateKey(block)
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported JWT algorithm: %s", alg)
	}

	return jm, nil
}

// CreateToken returns a token for subject valid from now until now + ttl.
func (j *JWTManager) CreateToken(ctx context.Context, subject string) (string, error) {
	j.log.Debug("JWTManager.CreateToken called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("alg", j.alg),
	)

	if strings.TrimSpace(subject) == "" {
		return "", fmt.Errorf("subject is required")
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	}

	switch j.alg {
	case AlgHS256:
		return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	case AlgES256:
		return jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(j.ecPriv)
	case AlgRS256:
		return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(j.rsaPriv)
	default:
		return "", fmt.Errorf("unsupported algorithm: %s", j.alg)
	}
}

// VerifyToken checks signature, algorithm and expiry and returns the subject.
func (j *JWTManager) VerifyToken(tokenString string) (string, error) {
	claims := new(jwt.RegisteredClaims)
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != j.alg {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		switch j.alg {
		case AlgHS256:
			return j.secret, nil
		case AlgES256:
			return j.ecPriv.Public(), nil
		case AlgRS256:
			return j.rsaPriv.Public(), nil
		default:
			return nil, fmt.Errorf("unsupported algorithm: %s", j.alg)
		}
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid {
		return "", errors.New("invalid token")
	}

	return claims.Subject, nil
}

func parseECPrivateKey(block *pem.Block) (*ecdsa.PrivateKey, error) {
	if block.Type == "EC PRIVATE KEY" {
		key, err := x509.ParseECPrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse EC private key: %w", err)
		}
		return key, nil
	}
	if block.Type == "PRIVATE KEY" {
		keyAny, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse PKCS8 private key: %w", err)
		}
		if ec, ok := keyAny.(*ecdsa.PrivateKey); ok {
			return ec, nil
		}
		return nil, fmt.Errorf("PKCS8 key is not ECDSA")
	}
	return nil, fmt.Errorf("unsupported EC PEM type: %s", block.Type)
}

func parseRSAPrivateKey(block *pem.Block) (*rsa.PrivateKey, error) {
	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse PKCS1 private key: %w", err)
		}
		return key, nil
	case "PRIVATE KEY":
		keyAny, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse PKCS8 private key: %w", err)
		}
		if rsaKey, ok := keyAny.(*rsa.PrivateKey); ok {
			return rsaKey, nil
		}
		return nil, fmt.Errorf("PKCS8 key is not RSA")
	default:
		return nil, fmt.Errorf("unsupported RSA PEM type: %s", block.Type)
	}
}
