package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SURUWE_BACK-END/internal/config"
)

func sessionConfig(ttl time.Duration) *config.SessionConfig {
	return &config.SessionConfig{Secret: "test-secret", TokenTTL: ttl}
}

func TestIssueAndValidateToken(t *testing.T) {
	cfg := sessionConfig(time.Hour)
	profileID := uuid.New()

	token, err := IssueToken(profileID, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, profileID, claims.ProfileID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := IssueToken(uuid.New(), sessionConfig(time.Hour))
	require.NoError(t, err)

	_, err = ValidateToken(token, &config.SessionConfig{Secret: "other-secret", TokenTTL: time.Hour})
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := IssueToken(uuid.New(), sessionConfig(-time.Minute))
	require.NoError(t, err)

	_, err = ValidateToken(token, sessionConfig(-time.Minute))
	assert.Error(t, err)
}

func TestSessionMiddleware(t *testing.T) {
	cfg := sessionConfig(time.Hour)
	profileID := uuid.New()
	token, err := IssueToken(profileID, cfg)
	require.NoError(t, err)

	var gotID uuid.UUID
	var gotOK bool
	handler := SessionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = ProfileIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}, cfg)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, gotOK = uuid.Nil, false
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.True(t, gotOK)
				assert.Equal(t, profileID, gotID)
			} else {
				assert.False(t, gotOK)
			}
		})
	}
}

func TestProfileIDFromContext_Unset(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := ProfileIDFromContext(req.Context())
	assert.False(t, ok)
}
