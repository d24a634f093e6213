package middleware

import (
	"net/http"
	"runtime/debug"
)

// Recoverer is the fault boundary for everything below it in the chain.
// A panic is converted into a *PanicError and handed to onFault, so the
// listener keeps serving subsequent requests.
func Recoverer(onFault ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				// Aborted responses must keep aborting.
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				onFault(w, r, &PanicError{Value: rvr, Stack: debug.Stack()})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
