package jwtmanager

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"freeslot-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWebhookConfig(alg, secret, key string) *config.InternalConfig {
	return &config.InternalConfig{Webhook: config.Webhook{JWTAlg: alg, JWTSecret: secret, JWTPrivateKey: key}}
}

func TestNewJWTManager(t *testing.T) {
	t.Run("Disabled Without Secret Or Key", func(t *testing.T) {
		_, err := NewJWTManager(newWebhookConfig("", "", ""), zap.NewNop())

		assert.ErrorIs(t, err, ErrSigningDisabled)
	})

	t.Run("Unsupported Algorithm", func(t *testing.T) {
		_, err := NewJWTManager(newWebhookConfig("PS512", "secret", ""), zap.NewNop())

		assert.Error(t, err)
	})

	t.Run("Broken PEM", func(t *testing.T) {
		_, err := NewJWTManager(newWebhookConfig("ES256", "", "not a pem"), zap.NewNop())

		assert.Error(t, err)
	})
}

func TestJWTManager_RoundTrip(t *testing.T) {
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	ecDER, err := x509.MarshalECPrivateKey(ecKey)
	require.NoError(t, err)
	ecPEM := string(pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: ecDER}))

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	rsaPEM := string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(rsaKey)}))

	testCases := []struct {
		name   string
		config *config.InternalConfig
	}{
		{name: "HS256 Secret", config: newWebhookConfig("", "s3cret", "")},
		{name: "ES256 Key", config: newWebhookConfig("", "", ecPEM)},
		{name: "RS256 Key", config: newWebhookConfig("RS256", "", rsaPEM)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			manager, err := NewJWTManager(tc.config, zap.NewNop())
			require.NoError(t, err)

			token, err := manager.CreateToken(context.Background(), "email-confirmation")
			require.NoError(t, err)

			subject, err := manager.VerifyToken(token)
			require.NoError(t, err)
			assert.Equal(t, "email-confirmation", subject)
		})
	}
}

func TestJWTManager_RejectsForeignToken(t *testing.T) {
	signer, err := NewJWTManager(newWebhookConfig("", "one-secret", ""), zap.NewNop())
	require.NoError(t, err)
	verifier, err := NewJWTManager(newWebhookConfig("", "another-secret", ""), zap.NewNop())
	require.NoError(t, err)

	token, err := signer.CreateToken(context.Background(), "email-confirmation")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RequiresSubject(t *testing.T) {
	manager, err := NewJWTManager(newWebhookConfig("", "s3cret", ""), zap.NewNop())
	require.NoError(t, err)

	_, err = manager.CreateToken(context.Background(), " ")
	assert.Error(t, err)
}
