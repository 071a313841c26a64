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
	"sort"

	"github.com/goxlr-re/goxlr-dissect/goxlr"
	"github.com/spf13/cobra"
)

func Tables() {
	fmt.Println("Command classes:")
	for _, class := range goxlr.CommandClasses() {
		fmt.Printf("  %#03x  %s\n", uint16(class), class)
	}

	fmt.Println("\nEffect keys:")
	effects := goxlr.EffectKeyNames()
	effectKeys := make([]goxlr.EffectKey, 0, len(effects))
	for k := range effects {
		effectKeys = append(effectKeys, k)
	}
	sort.Slice(effectKeys, func(i, j int) bool { return effectKeys[i] < effectKeys[j] })
	for _, k := range effectKeys {
		fmt.Printf("  %#04x  %s\n", uint32(k), effects[k])
	}

	fmt.Println("\nMic param keys:")
	micParams := goxlr.MicParamKeyNames()
	micKeys := make([]goxlr.MicParamKey, 0, len(micParams))
	for k := range micParams {
		micKeys = append(micKeys, k)
	}
	sort.Slice(micKeys, func(i, j int) bool { return micKeys[i] < micKeys[j] })
	for _, k := range micKeys {
		fmt.Printf("  %#05x  %s\n", uint32(k), micParams[k])
	}
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Dump the protocol symbol tables",
	Run: func(cmd *cobra.Command, args []string) {
		Tables()
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
