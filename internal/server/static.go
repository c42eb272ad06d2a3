package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"lak_auction/pkg/errcodes"
	"lak_auction/pkg/httpx/reply"
)

// SPAHandler serves the public directory and falls back to the entry
// document for any unknown non-API path, so client-side routing keeps
// working after a refresh. Unmatched API paths still answer JSON 404.
func SPAHandler(publicDir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(publicDir))
	index := filepath.Join(publicDir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api" {
			reply.Error(r.Context(), w, failure.NewNotFoundError(
				"no such endpoint",
				failure.WithCode(errcodes.NotFound),
				failure.WithDescription("Not found"),
			))

			return
		}

		requested := filepath.Join(publicDir, filepath.Clean("/"+r.URL.Path))

		info, err := os.Stat(requested)
		if err != nil || info.IsDir() {
			http.ServeFile(w, r, index)

			return
		}

		fileServer.ServeHTTP(w, r)
	}
}
