package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/vuuvv/errors"
	"github.com/vuuvv/vcrc/core"
	"github.com/vuuvv/vcrc/utils"
)

// readInput concatenates the decoded arguments, or reads raw bytes from in
// when there are none.
func readInput(in io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, errors.Wrap(err, "read stdin")
		}
		return data, nil
	}

	var data []byte
	for _, arg := range args {
		b, err := utils.ParseTValue(arg, -1, binary.BigEndian)
		if err != nil {
			return nil, err
		}
		data = append(data, b...)
	}
	return data, nil
}

func parseUint16(name, s string) (uint16, error) {
	v, err := core.ToUint16(strings.TrimSpace(s), 0)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid -%s %q, want a 16-bit value like 0x1021", name, s)
	}
	return v, nil
}

func formatSum(sum uint16, format string) (string, error) {
	switch format {
	case "", "hex":
		return fmt.Sprintf("0x%04X", sum), nil
	case "dec":
		return fmt.Sprintf("%d", sum), nil
	case "bin":
		return fmt.Sprintf("%016b", sum), nil
	}
	return "", errors.Errorf("unknown format %q", format)
}

// prettyHex formats data as lowercase hex pairs separated by spaces.
func prettyHex(data []byte) string {
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	return sb.String()
}
