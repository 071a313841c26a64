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
	"fmt"

	"github.com/spf13/cobra"
)

func Info() error {
	dev, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	versions, err := dev.GetFirmwareVersion()
	if err != nil {
		return err
	}
	serial, date, err := dev.GetSerialNumber()
	if err != nil {
		return err
	}

	fmt.Printf("Device:           %s\n", dev.Address())
	fmt.Printf("Serial number:    %s\n", serial)
	fmt.Printf("Manufacture date: %s\n", date)
	fmt.Printf("Versions:         %s\n", versions)
	return nil
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print firmware and serial info of an attached device",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Info()
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
