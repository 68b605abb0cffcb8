package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spo2-monitor/decrypt-spo2-payloads/config"
	"github.com/spo2-monitor/decrypt-spo2-payloads/pkg/log"
	"github.com/spo2-monitor/decrypt-spo2-payloads/pkg/spo2"
)

func runForTest(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cfg := &config.Config{Output: config.OutputConfig{NoColor: true}}
	logger := log.Init(log.ZapConfig{Level: log.LevelDebug, Encoding: log.EncodingJSON, Output: io.Discard})

	err := run(context.Background(), args, out, cfg, logger)
	return out.String(), err
}

func TestRunDecryptsPayloadFlag(t *testing.T) {
	out, err := runForTest(t, "-payload", "a11JYwq2PvlGadgGlnIqmQ==")
	require.NoError(t, err)
	assert.Equal(t, "Decrypted SpO₂ value: 98\n", out)
}

func TestRunDecryptsArgument(t *testing.T) {
	out, err := runForTest(t, "a11JYwq2PvlGadgGlnIqmQ==")
	require.NoError(t, err)
	assert.Contains(t, out, "Decrypted SpO₂ value: 98")
	assert.NotContains(t, out, "warning")
}

func TestRunPlaceholder(t *testing.T) {
	out, err := runForTest(t)
	assert.ErrorIs(t, err, spo2.ErrMalformedBase64)
	assert.Contains(t, out, "warning: payload argument not set")
}

func TestRunRaw(t *testing.T) {
	out, err := runForTest(t, "-raw", "-payload", "a11JYwq2PvlGadgGlnIqmQ==")
	require.NoError(t, err)
	assert.Contains(t, out, "Block: [39 38 0e 0e 0e 0e 0e 0e 0e 0e 0e 0e 0e 0e 0e 0e] Decrypted\n")
	assert.Contains(t, out, "Decrypted SpO₂ value: 98\n")
}

func TestRunRawShowsBlockOnBadPadding(t *testing.T) {
	out, err := runForTest(t, "-raw", "BGrryTbOZ58POvYZmy2YEQ==")
	assert.ErrorIs(t, err, spo2.ErrInvalidPadding)
	assert.Contains(t, out, "Block: [39 38 0e 0e 0e 0e 0e 0e 0e 0e 0e 0e 0e 0e 0e 00]")
}

func TestRunEncrypt(t *testing.T) {
	out, err := runForTest(t, "-encrypt", "98")
	require.NoError(t, err)
	assert.Equal(t, "a11JYwq2PvlGadgGlnIqmQ==\n", out)
}

func TestRunRejectsInvalidCombinations(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{name: "payload and encrypt", args: []string{"-payload", "a11JYwq2PvlGadgGlnIqmQ==", "-encrypt", "98"}},
		{name: "argument and encrypt", args: []string{"-encrypt", "98", "a11JYwq2PvlGadgGlnIqmQ=="}},
		{name: "argument and payload flag", args: []string{"-payload", "a11JYwq2PvlGadgGlnIqmQ==", "a11JYwq2PvlGadgGlnIqmQ=="}},
		{name: "two arguments", args: []string{"a11JYwq2PvlGadgGlnIqmQ==", "3riZxeBe9A0tD2srYBUTWQ=="}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runForTest(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestRunHelp(t *testing.T) {
	out, err := runForTest(t, "-h")
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out, "-payload")
}

func TestHexStyle(t *testing.T) {
	setupOutput(io.Discard, true)

	assert.Equal(t, "[39 38 02 02]", hexStyle([]byte{0x39, 0x38, 0x02, 0x02}, hexStyleContainsPadding))
	assert.Equal(t, "[00] Decrypted", hexStyle([]byte{0x00}, hexStyleDecrypted|hexStyleContainsPadding))
	assert.Equal(t, "[]", hexStyle(nil, 0))
}

func TestBToHex(t *testing.T) {
	assert.Equal(t, "62 74 73", bToHex([]byte("bts")))
	assert.Equal(t, "", bToHex(nil))
}
