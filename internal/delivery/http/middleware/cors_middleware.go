package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

type CORSMiddleware struct {
	cors *cors.Cors
}

// NewCORSMiddleware allows every origin when allowedOrigins is empty or
// contains "*".
func NewCORSMiddleware(allowedOrigins []string) *CORSMiddleware {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return &CORSMiddleware{
		cors: cors.New(cors.Options{
			AllowedOrigins:       allowedOrigins,
			AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:       []string{"Content-Type", "Authorization"},
			OptionsSuccessStatus: http.StatusOK,
		}),
	}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return m.cors.Handler(next)
}
