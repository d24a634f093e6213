package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRecoverer_ConvertsPanicToFault(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantMsg string
	}{
		{"string panic", "boom", "boom"},
		{"error panic", errors.New("kaput"), "kaput"},
		{"other panic", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got error
			onFault := func(w http.ResponseWriter, r *http.Request, err error) {
				got = err
				w.WriteHeader(http.StatusInternalServerError)
			}

			handler := Recoverer(onFault)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.value)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusInternalServerError {
				t.Errorf("status = %d, want 500", rec.Code)
			}

			var perr *PanicError
			if !errors.As(got, &perr) {
				t.Fatalf("fault = %T, want *PanicError", got)
			}
			if perr.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", perr.Error(), tt.wantMsg)
			}
			if len(perr.Stack) == 0 {
				t.Error("expected stack to be captured")
			}
		})
	}
}

func TestRecoverer_PassThrough(t *testing.T) {
	called := false
	onFault := func(w http.ResponseWriter, r *http.Request, err error) {
		called = true
	}

	handler := Recoverer(onFault)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if called {
		t.Error("onFault called without a panic")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestRecoverer_RepanicsOnAbort(t *testing.T) {
	handler := Recoverer(func(w http.ResponseWriter, r *http.Request, err error) {
		t.Error("onFault should not handle ErrAbortHandler")
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if rvr := recover(); rvr != http.ErrAbortHandler {
			t.Errorf("recovered %v, want ErrAbortHandler", rvr)
		}
	}()

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestPanicError_Unwrap(t *testing.T) {
	sentinel := errors.New("sentinel")

	err := &PanicError{Value: sentinel}
	if !errors.Is(err, sentinel) {
		t.Error("expected PanicError to unwrap to its error value")
	}

	if (&PanicError{Value: "text"}).Unwrap() != nil {
		t.Error("expected nil Unwrap for non-error panic value")
	}
}
