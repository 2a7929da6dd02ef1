package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/careerdesk/job-portal/internal/utils"
)

// JWTAuth returns an Echo middleware that validates a bearer access token and
// injects the token's subject into the request context.  The token is read
// from the standard Authorization header; for compatibility with older
// clients it is also accepted as a `token` request parameter.  An absent or
// invalid token yields 401 with the uniform response envelope.  Validation is
// stateless: only the signature and the embedded expiry are checked.
// Handlers behind this middleware can read the admin's username via
// `c.Get("username")`.
func JWTAuth(secret, alg string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            raw := ""
            if auth := c.Request().Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
                raw = strings.TrimPrefix(auth, "Bearer ")
            } else if t := c.QueryParam("token"); t != "" {
                raw = t
            }
            if raw == "" {
                return unauthorized(c, "missing bearer token")
            }

            claims, err := utils.VerifyAccessToken(secret, alg, raw)
            if err != nil {
                // Malformed, forged and expired tokens are indistinguishable here.
                return unauthorized(c, "invalid token")
            }

            if sub, ok := claims["sub"].(string); ok {
                c.Set("username", sub)
            }
            return next(c)
        }
    }
}

// unauthorized writes a 401 response in the envelope shape used everywhere else.
func unauthorized(c echo.Context, reason string) error {
    return c.JSON(http.StatusUnauthorized, echo.Map{
        "statuscode": http.StatusUnauthorized,
        "data":       "",
        "error":      reason,
        "message":    nil,
    })
}
