package api

import (
	"fmt"
	"net/http"

	"github.com/npezzotti/go-microblog/internal/stats"
	"github.com/teris-io/shortid"
)

const requestIdHeader = "X-Request-Id"

func (s *MicroblogApp) errorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				var panicError error
				switch e := err.(type) {
				case error:
					panicError = e
				default:
					panicError = fmt.Errorf("%v", e)
				}
				s.log.Printf("panic: %v", panicError)
				errResp := NewInternalServerError(panicError)
				w.Header().Set("Connection", "close")
				s.writeJson(w, errResp.StatusCode, errResp)
				return
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// requestIdHandler tags every response with a short unique id so a log
// line can be tied back to a client-reported failure.
func (s *MicroblogApp) requestIdHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqId := r.Header.Get(requestIdHeader)
		if reqId == "" {
			var err error
			reqId, err = shortid.Generate()
			if err != nil {
				s.log.Println("generate request id:", err)
			}
		}

		w.Header().Set(requestIdHeader, reqId)
		s.stats.Incr(stats.RequestsServed)

		next.ServeHTTP(w, r)
	})
}
