package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	identity := Identity{UserID: "user-1", Role: RoleCustomer, ProfileComplete: true}

	token, err := manager.Generate(identity)
	require.NoError(t, err)

	got, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestJWTManager_Verify(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)
	expired := NewJWTManager("test-secret", -time.Minute)

	foreign, err := other.Generate(Identity{UserID: "u", Role: RoleAdmin})
	require.NoError(t, err)
	stale, err := expired.Generate(Identity{UserID: "u", Role: RoleAdmin})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: stale},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := manager.Verify(testCase.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestJWTManager_GenerateRejectsAnonymous(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	_, err := manager.Generate(Anonymous())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	token, err := manager.Generate(Identity{UserID: "owner-1", Role: RoleRestaurantOwner})
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantUser string
		wantRole Role
	}{
		{name: "no header is anonymous", header: "", wantCode: http.StatusOK, wantRole: RoleAnonymous},
		{name: "valid bearer", header: "Bearer " + token, wantCode: http.StatusOK, wantUser: "owner-1", wantRole: RoleRestaurantOwner},
		{name: "wrong scheme", header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer nope", wantCode: http.StatusUnauthorized},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var seen Identity
			handler := Middleware(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if testCase.header != "" {
				req.Header.Set("Authorization", testCase.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				assert.Equal(t, testCase.wantUser, seen.UserID)
				assert.Equal(t, testCase.wantRole, seen.Role)
			}
		})
	}
}
