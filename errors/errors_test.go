package errors

import (
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind      *Error
		err       error
		wantMatch bool
	}{
		"instance of the same root error": {
			kind:      ErrNotFound,
			err:       ErrNotFound,
			wantMatch: true,
		},
		"wrapped error matches the root": {
			kind:      ErrNotFound,
			err:       Wrap(ErrNotFound, "wallet"),
			wantMatch: true,
		},
		"double wrapped error matches the root": {
			kind:      ErrNotFound,
			err:       Wrap(Wrap(ErrNotFound, "wallet"), "handler"),
			wantMatch: true,
		},
		"different root does not match": {
			kind:      ErrNotFound,
			err:       Wrap(ErrDuplicate, "wallet"),
			wantMatch: false,
		},
		"stdlib error does not match": {
			kind:      ErrNotFound,
			err:       fmt.Errorf("not found"),
			wantMatch: false,
		},
		"nil error does not match": {
			kind:      ErrNotFound,
			err:       nil,
			wantMatch: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.wantMatch {
				t.Fatalf("want match=%v, got %v", tc.wantMatch, got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "whatever"); err != nil {
		t.Fatalf("want nil, got %+v", err)
	}
}

func TestWrapAttachesStackTraceOnce(t *testing.T) {
	err := Wrap(ErrState, "inner")
	st := stackTrace(err)
	if st == nil {
		t.Fatal("wrapped error carries no stacktrace")
	}

	// A second wrap must not re-record the frames.
	outer := Wrap(err, "outer")
	if got := stackTrace(outer); fmt.Sprintf("%v", got) != fmt.Sprintf("%v", st) {
		t.Fatal("second wrap recorded a new stacktrace")
	}
}

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"nil is success": {
			err:      nil,
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"classified error returns its code": {
			err:      Wrap(ErrNotFound, "wallet"),
			wantCode: 3,
			wantLog:  "wallet: not found",
		},
		"stdlib error is internal": {
			err:      fmt.Errorf("badness"),
			wantCode: 1,
			wantLog:  "internal error",
		},
		"pkg/errors error is internal": {
			err:      pkgerrors.New("badness"),
			wantCode: 1,
			wantLog:  "internal error",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want code %d, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want log %q, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("totally unexpected")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
}

func TestRegisterDuplicateCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(2, "also unauthorized")
}
