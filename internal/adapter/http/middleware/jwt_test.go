package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWT(secret), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c)+"/"+Role(c))
	})
	return r
}

func TestJWT(t *testing.T) {
	const secret = "s3cret"
	valid, err := GenerateToken(secret, "corp-1", "corporate", time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken(secret, "corp-1", "corporate", -time.Minute)
	require.NoError(t, err)
	foreign, err := GenerateToken("other", "corp-1", "corporate", time.Hour)
	require.NoError(t, err)
	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "corp-1"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := []struct {
		name     string
		header   string
		query    string
		wantCode int
		wantBody string
	}{
		{name: "bearer header", header: "Bearer " + valid, wantCode: http.StatusOK, wantBody: "corp-1/corporate"},
		{name: "query token", query: "?access_token=" + valid, wantCode: http.StatusOK, wantBody: "corp-1/corporate"},
		{name: "missing", wantCode: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, wantCode: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, wantCode: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + foreign, wantCode: http.StatusUnauthorized},
		{name: "alg none", header: "Bearer " + unsigned, wantCode: http.StatusUnauthorized},
	}
	r := newAuthRouter(secret)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me"+tc.query, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, w.Body.String())
			}
		})
	}
}
