package middleware

import (
    "context"
    "encoding/json"
    "log"
    "net/http"
    "strings"

    "investpro/utils"
)

type contextKey string

const UserContextKey contextKey = "user"

func JWTAuth(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        authHeader := r.Header.Get("Authorization")
        if authHeader == "" {
            http.Error(w, "Authorization header required", http.StatusUnauthorized)
            return
        }

        bearerToken := strings.Split(authHeader, " ")
        if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
            http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
            return
        }

        claims, err := utils.ValidateToken(bearerToken[1])
        if err != nil {
            log.Printf("Token validation failed for %s: %v", r.URL.Path, err)
            http.Error(w, "Invalid token", http.StatusUnauthorized)
            return
        }

        ctx := context.WithValue(r.Context(), UserContextKey, claims)
        next.ServeHTTP(w, r.WithContext(ctx))
    })
}

// AdminAuth gates admin endpoints on the role flag carried in the token. The
// flag originates from the users.is_admin column, not from a hardcoded
// identity.
func AdminAuth(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
        if !ok {
            w.Header().Set("Content-Type", "application/json")
            w.WriteHeader(http.StatusUnauthorized)
            json.NewEncoder(w).Encode(map[string]string{
                "error": "Unauthorized - No user context",
            })
            return
        }

        if !claims.IsAdmin {
            log.Printf("User %d attempted to access admin endpoint %s without admin privileges",
                claims.UserID, r.URL.Path)
            w.Header().Set("Content-Type", "application/json")
            w.WriteHeader(http.StatusForbidden)
            json.NewEncoder(w).Encode(map[string]string{
                "error":   "Admin access required",
                "message": "This endpoint requires admin privileges",
            })
            return
        }

        next.ServeHTTP(w, r)
    })
}

func GetUserFromContext(r *http.Request) *utils.Claims {
    if claims, ok := r.Context().Value(UserContextKey).(*utils.Claims); ok {
        return claims
    }
    return nil
}
