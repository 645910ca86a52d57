package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	cases := map[string]struct {
		args      []string
		wantAddr  string
		wantDebug bool
	}{
		"defaults": {
			args:     nil,
			wantAddr: "tcp://localhost:46658",
		},
		"bind override": {
			args:     []string{"-bind", "unix://test.socket"},
			wantAddr: "unix://test.socket",
		},
		"debug": {
			args:      []string{"-debug"},
			wantAddr:  "tcp://localhost:46658",
			wantDebug: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			addr, debug, err := parseFlags(tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.wantAddr, addr)
			assert.Equal(t, tc.wantDebug, debug)
		})
	}
}
