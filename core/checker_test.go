package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vuuvv/vcrc/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testConfig = `
algorithms:
  - name: buypass
    poly: 0x8005
    init: 0
  - name: dnp_like
    poly: 0x3D65
    init: "0"
    xorout: 0xFFFF
    reflect: false
  - name: defaults
frames:
  - name: modbus_rtu
    algorithm: crc16_modbus
    endian: little
  - name: stx
    algorithm: crc16_xmodem
    start: "1"
    end: vars.packet_len - 2
  - name: custom
    algorithm: buypass
`

func newTestChecker(t *testing.T) *Checker {
	checker, err := NewCheckerFromBytes([]byte(testConfig))
	require.NoError(t, err)
	return checker
}

func TestCheckerAlgorithms(t *testing.T) {
	checker := newTestChecker(t)
	data := []byte("123456789")

	testCases := []struct {
		name string
		want uint16
	}{
		{"buypass", 0xFEE8},
		{"dnp_like", 0xC2B7},
		{"defaults", 0x29B1},
		{"crc16_modbus", 0x4B37},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := checker.Checksum(data, tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.want, got, "%#04x", got)
		})
	}

	_, err := checker.Checksum(data, "missing")
	require.Error(t, err)

	names := checker.Names()
	require.Equal(t, []string{"buypass", "defaults", "dnp_like"}, names[:3])
	require.Equal(t, []string{"custom", "modbus_rtu", "stx"}, checker.FrameNames())
}

func TestCheckerVerify(t *testing.T) {
	checker := newTestChecker(t)

	request := []byte{0x01, 0x03, 0x00, 0x00, 0x00, 0x0A, 0xC5, 0xCD}
	require.NoError(t, checker.Verify("modbus_rtu", request))

	corrupted := append([]byte{}, request...)
	corrupted[3] = 0x01
	require.Error(t, checker.Verify("modbus_rtu", corrupted))

	require.NoError(t, checker.Verify("stx", []byte{0x7E, 0x01, 0x02, 0x03, 0x61, 0x31}))
	require.Error(t, checker.Verify("stx", []byte{0x7E, 0x01, 0x02, 0x03, 0x31, 0x61}))

	// too short for a checksum field
	require.Error(t, checker.Verify("modbus_rtu", []byte{0x01}))
	require.Error(t, checker.Verify("nope", request))
}

func TestCheckerSeal(t *testing.T) {
	checker := newTestChecker(t)

	packet, err := checker.Seal("modbus_rtu", []byte{0x01, 0x03, 0x00, 0x00, 0x00, 0x0A})
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x03, 0x00, 0x00, 0x00, 0x0A, 0xC5, 0xCD}, packet)

	packet, err = checker.Seal("stx", []byte{0x7E, 0x01, 0x02, 0x03})
	require.NoError(t, err)
	require.Equal(t, []byte{0x7E, 0x01, 0x02, 0x03, 0x61, 0x31}, packet)

	packet, err = checker.Seal("custom", []byte("123456789"))
	require.NoError(t, err)
	require.NoError(t, checker.Verify("custom", packet))
	require.Equal(t, []byte{0xFE, 0xE8}, packet[len(packet)-2:])
}

func TestFrameVerifyFields(t *testing.T) {
	checker := newTestChecker(t)
	frame, err := checker.Frame("modbus_rtu")
	require.NoError(t, err)

	ctx, err := frame.Verify([]byte{0x01, 0x03, 0x00, 0x00, 0x00, 0x0A, 0x00, 0x00})
	require.Error(t, err)
	require.Equal(t, uint16(0xCDC5), ctx.Fields[FieldExpected])
	require.Equal(t, uint16(0), ctx.Fields[FieldChecksum])
	require.Equal(t, 0, ctx.Fields[FieldStart])
	require.Equal(t, 6, ctx.Fields[FieldEnd])
}

func TestCheckerConfigErrors(t *testing.T) {
	testCases := map[string]string{
		"shadow builtin": "algorithms:\n  - name: crc16_modbus\n",
		"duplicate":      "algorithms:\n  - name: a\n  - name: a\n",
		"overflow":       "algorithms:\n  - name: a\n    poly: 0x10000\n",
		"bad reflect":    "algorithms:\n  - name: a\n    reflect: maybe\n",
		"empty name":     "algorithms:\n  - poly: 0x1021\n",
		"unknown alg":    "frames:\n  - name: f\n    algorithm: crc16_nope\n",
		"bad expr":       "frames:\n  - name: f\n    algorithm: crc16_x25\n    start: \"vars.\"\n",
		"frame no name":  "frames:\n  - algorithm: crc16_x25\n",
		"bad yaml":       "algorithms: [",
		"null frame":     "frames:\n  - ~\n",
		"null algorithm": "algorithms:\n  - ~\n",
	}
	for name, config := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := NewCheckerFromBytes([]byte(config))
			require.Error(t, err)
		})
	}
}

func TestNewCheckerFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "checker.yaml")
	require.NoError(t, os.WriteFile(file, []byte(testConfig), 0o644))

	checker, err := NewCheckerFromFile(file)
	require.NoError(t, err)
	require.Equal(t, []string{"custom", "modbus_rtu", "stx"}, checker.FrameNames())

	_, err = NewCheckerFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestCheckerAddNilFrame(t *testing.T) {
	checker := NewChecker()
	require.ErrorContains(t, checker.AddFrame(nil), "nil")
}

func TestCheckerEmptyScope(t *testing.T) {
	checker := newTestChecker(t)

	packet, err := checker.Seal("modbus_rtu", nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 0xFF}, packet)

	require.NoError(t, checker.Verify("modbus_rtu", []byte{0xFF, 0xFF}))
	require.Error(t, checker.Verify("modbus_rtu", []byte{0x00, 0x00}))
}

func TestCheckerVerifyLogsMismatch(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	log.SetLogger(zap.New(obs))
	defer log.SetLogger(nil)

	checker := newTestChecker(t)
	require.Error(t, checker.Verify("modbus_rtu", []byte{0x01, 0x03, 0x00, 0x00, 0x00, 0x0A, 0x00, 0x00}))

	entries := logs.FilterMessage("Frame verify failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, uint16(0xCDC5), fields["expected"])
	require.Equal(t, uint16(0), fields["actual"])
}

func TestToUint16(t *testing.T) {
	testCases := []struct {
		in   any
		want uint16
	}{
		{nil, 0x1021},
		{0x8005, 0x8005},
		{"0xA001", 0xA001},
		{"0b101", 5},
		{"0o17", 15},
		{"65535", 0xFFFF},
	}
	for _, tc := range testCases {
		got, err := ToUint16(tc.in, 0x1021)
		require.NoError(t, err, "%v", tc.in)
		require.Equal(t, tc.want, got, "%v", tc.in)
	}

	for _, in := range []any{0x10000, "0x10000", "-1", "xyz"} {
		_, err := ToUint16(in, 0)
		require.Error(t, err, "%v", in)
	}
}
