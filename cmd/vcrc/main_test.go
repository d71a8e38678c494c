package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/stretchr/testify/require"
)

const testConfig = `
algorithms:
  - name: buypass
    poly: 0x8005
    init: 0
frames:
  - name: modbus_rtu
    algorithm: crc16_modbus
    endian: little
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	in := strings.NewReader(stdin)
	out := &bytes.Buffer{}

	rootCmd, cfg := newRootCmd()
	rootCmd.Subcommands = []*ffcli.Command{
		newCalcCmd(cfg, in, out),
		newTableCmd(cfg, out),
		newVerifyCmd(cfg, in, out),
		newSealCmd(cfg, in, out),
		newListCmd(cfg, out),
	}
	err := rootCmd.ParseAndRun(context.Background(), args)
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "vcrc.yaml")
	require.NoError(t, os.WriteFile(file, []byte(testConfig), 0o644))
	return file
}

func TestCalc(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{"default modbus", []string{"calc", "s'123456789'"}, "0x4B37"},
		{"xmodem hex", []string{"calc", "-alg", "crc16_xmodem", "313233343536373839"}, "0x31C3"},
		{"init override", []string{"calc", "-alg", "crc16_modbus", "-init", "0", "s'123456789'"}, "0xBB3D"},
		{"ibm poly", []string{"calc", "-alg", "crc16_ibm", "-poly", "0x8005", "s'123456789'"}, "0xFEE8"},
		{"hacker defaults", []string{"calc", "-alg", "hacker16", "s'123456789'"}, "0x29B1"},
		{"hacker reflect", []string{"calc", "-alg", "hacker16", "-ref", "s'123456789'"}, "0x0520"},
		{"hacker xorout", []string{"calc", "-alg", "hacker16", "-poly", "0x3D65", "-init", "0", "-xorout", "0xFFFF", "s'123456789'"}, "0xC2B7"},
		{"fletcher dec", []string{"calc", "-alg", "checksum_fletcher16", "-format", "dec", "s'123456789'"}, "7902"},
		{"internet", []string{"calc", "-alg", "checksum_internet", "s'123456789'"}, "0xF62A"},
		{"binary init", []string{"calc", "-alg", "crc16_modbus", "-init", "0b0", "s'123456789'"}, "0xBB3D"},
		{"concatenated args", []string{"calc", "s'1234'", "s'56789'"}, "0x4B37"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, "", tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want+"\n", out)
		})
	}
}

func TestCalcStdin(t *testing.T) {
	out, err := run(t, "123456789", "calc", "-alg", "crc16_kermit")
	require.NoError(t, err)
	require.Equal(t, "0x2189\n", out)
}

func TestCalcCustomAlgorithm(t *testing.T) {
	out, err := run(t, "", "calc", "-config", writeConfig(t), "-alg", "buypass", "s'123456789'")
	require.NoError(t, err)
	require.Equal(t, "0xFEE8\n", out)
}

func TestCalcErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"unknown alg", []string{"calc", "-alg", "crc16_nope", "00"}},
		{"bad init", []string{"calc", "-init", "0x10000", "00"}},
		{"poly on modbus", []string{"calc", "-poly", "0x8005", "00"}},
		{"init on checksum", []string{"calc", "-alg", "checksum_internet", "-init", "1", "00"}},
		{"bad format", []string{"calc", "-format", "oct", "00"}},
		{"bad literal", []string{"calc", "zz"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, "", tc.args...)
			require.Error(t, err)
		})
	}
}

func TestTable(t *testing.T) {
	out, err := run(t, "", "table", "-poly", "0xA001")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 33)
	require.Equal(t, "// poly 0xA001, low", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "0x0000, 0xC0C1, 0xC181,"), lines[1])
	require.True(t, strings.HasSuffix(lines[32], "0x4040,"), lines[32])
}

func TestTableHigh(t *testing.T) {
	out, err := run(t, "", "table", "-poly", "0x1021", "-cols", "16")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 17)
	require.Equal(t, "// poly 0x1021, high", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "0x0000, 0x1021, 0x2042,"), lines[1])
}

func TestSealAndVerify(t *testing.T) {
	config := writeConfig(t)

	out, err := run(t, "", "seal", "-config", config, "-frame", "modbus_rtu", "h'01 03 00 00 00 0A'")
	require.NoError(t, err)
	require.Equal(t, "01 03 00 00 00 0a c5 cd\n", out)

	out, err = run(t, "", "verify", "-config", config, "-frame", "modbus_rtu", "0103000000 0AC5CD")
	require.NoError(t, err)
	require.Equal(t, "ok\n", out)

	_, err = run(t, "", "verify", "-config", config, "-frame", "modbus_rtu", "01030000000AC5CE")
	require.Error(t, err)
}

func TestFrameRequired(t *testing.T) {
	_, err := run(t, "", "verify", "-config", writeConfig(t), "00")
	require.ErrorContains(t, err, "-frame is required")

	_, err = run(t, "", "seal", "-frame", "modbus_rtu", "00")
	require.ErrorContains(t, err, "modbus_rtu")
}

func TestList(t *testing.T) {
	out, err := run(t, "", "list", "-config", writeConfig(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, "buypass", lines[0])
	require.Contains(t, lines, "crc16_modbus")
	require.Contains(t, lines, "checksum_fletcher16")
	require.Contains(t, lines, "hacker16")
	require.Equal(t, "frame modbus_rtu(crc16_modbus, LittleEndian)", lines[len(lines)-1])
}

func TestFormatSum(t *testing.T) {
	testCases := []struct {
		format string
		want   string
	}{
		{"", "0x00FF"},
		{"hex", "0x00FF"},
		{"dec", "255"},
		{"bin", "0000000011111111"},
	}
	for _, tc := range testCases {
		got, err := formatSum(0x00FF, tc.format)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestPrettyHex(t *testing.T) {
	require.Equal(t, "", prettyHex(nil))
	require.Equal(t, "01 ab ff", prettyHex([]byte{0x01, 0xAB, 0xFF}))
}
