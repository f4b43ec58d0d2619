package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("  alice  \n"))
	var out bytes.Buffer

	got, err := GetSimpleText(r, "Enter nickname", &out)
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
	assert.Contains(t, out.String(), "Enter nickname")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("partial"))
	var out bytes.Buffer

	got, err := GetSimpleText(r, "p", &out)
	require.NoError(t, err)
	assert.Equal(t, "partial", got)
}

func TestGetPassword_UsesStubbedReader(t *testing.T) {
	old := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter22"), nil }
	defer func() { readPassword = old }()

	var out bytes.Buffer
	pw, err := GetPassword(&out, "Enter password")
	require.NoError(t, err)
	assert.Equal(t, []byte("hunter22"), pw)
	assert.Contains(t, out.String(), "Enter password")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"whatever\n", false},
	}
	for _, tt := range tests {
		r := bufio.NewReader(strings.NewReader(tt.answer))
		var out bytes.Buffer
		got, err := Confirm(r, "Sure?", &out)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "answer %q", tt.answer)
	}
}
