package auth

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/tonance/tonance/pkg/utils"
)

// AdminMiddleware guards catalog and promo administration. The plaintext
// admin key is never stored; config carries only its bcrypt hash.
func AdminMiddleware(keyHash string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Admin-Key")
			if key == "" || keyHash == "" {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}
			if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
