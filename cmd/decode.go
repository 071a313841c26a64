// Copyright © 2022 the goxlr-dissect authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package cmd

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goxlr-re/goxlr-dissect/goxlr"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// DecodeFile runs every transfer in a capture listing through one
// dissector session and prints the decoded commands.
//
// Listing format, one control transfer per line:
//
//	> 1.5.0 host 00100800 0200 0100 0000000000000000 ...
//
// First field is the direction ('>' request, '<' response), then the
// source and destination endpoint ids, then the transfer payload as hex
// (spaces between byte groups are fine). Blank lines and lines starting
// with '#' are skipped. Frame ids are assigned by listing order.
func DecodeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dissector := goxlr.NewDissector()
	frame := uint64(0)
	lineno := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			log.Warnf("line %d: expected 'dir src dst hex', got %q", lineno, line)
			continue
		}

		var dir goxlr.Direction
		switch fields[0] {
		case ">":
			dir = goxlr.DIRECTION_REQUEST
		case "<":
			dir = goxlr.DIRECTION_RESPONSE
		default:
			log.Warnf("line %d: unknown direction marker %q", lineno, fields[0])
			continue
		}

		buf, err := hex.DecodeString(strings.Join(fields[3:], ""))
		if err != nil {
			log.Warnf("line %d: bad hex payload: %v", lineno, err)
			continue
		}

		frame++
		cmd, err := dissector.Dissect(buf, dir, frame,
			goxlr.Endpoint(fields[1]), goxlr.Endpoint(fields[2]))
		if errors.Is(err, goxlr.ErrTruncatedHeader) {
			log.Errorf("line %d: %v (%d bytes)", lineno, err, len(buf))
			continue
		}
		if err != nil {
			// Truncated record tails are non fatal, report and keep the
			// decoded part.
			log.Warnf("line %d: %v", lineno, err)
		}
		fmt.Println(cmd.String())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	log.Infof("tracked %d conversation(s) over %d frame(s)", dissector.Conversations(), frame)
	return nil
}

var decodeCmd = &cobra.Command{
	Use:   "decode <file>",
	Short: "Decode a capture listing of control transfers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return DecodeFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
