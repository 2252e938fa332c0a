package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// HeaderStaffPIN заголовок с пин-кодом персонала для служебных ручек
const HeaderStaffPIN = "X-Staff-Pin"

// StaffAuth проверяет пин-код персонала в заголовке запроса.
// Публичные ручки (создание бронирования, слоты, каталог) не используют
// этот middleware.
func StaffAuth(pin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(HeaderStaffPIN)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(pin)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "неверный пин-код"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
