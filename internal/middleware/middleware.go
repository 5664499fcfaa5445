package middleware

import (
	"net/http"
	"strconv"

	"github.com/nkondratev/doctasks/internal/metrics"
	"github.com/nkondratev/doctasks/pkg/logger_i"
)

var logMW = logger_i.NewLogger("Middleware")

type requestResponseStruct struct {
	writer  http.ResponseWriter
	request *http.Request
}

type middlewareFunc func(rr requestResponseStruct) (requestResponseStruct, bool)

// Wrap chains the middleware funcs in order around the handler and records
// request metrics. A middleware returning false stops the chain; it is
// responsible for having written the response already.
func Wrap(handler http.HandlerFunc, chain ...middlewareFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recorder := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: http.StatusOK}
		rr := requestResponseStruct{writer: recorder, request: r}

		for _, mw := range chain {
			var proceed bool
			rr, proceed = mw(rr)
			if !proceed {
				metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(recorder.Status)).Inc()
				return
			}
		}

		handler(rr.writer, rr.request)
		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(recorder.Status)).Inc()
	}
}
