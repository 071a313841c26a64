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
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/gousb"
	"github.com/goxlr-re/goxlr-dissect/goxlr"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func openDevice() (*goxlr.LocalXLR, error) {
	pids := make([]gousb.ID, 0, len(cfg.ProductIDs))
	for _, pid := range cfg.ProductIDs {
		pids = append(pids, gousb.ID(pid))
	}
	return goxlr.NewLocalXLR(gousb.ID(cfg.VendorID), pids...)
}

// Watch polls the device and dissects its own traffic: every raw
// transfer the transport performs is fed through a dissector session via
// the tap, so the output looks exactly like decoding a capture.
func Watch() error {
	dev, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	dissector := goxlr.NewDissector()
	host := goxlr.Endpoint("host")
	device := dev.Address()

	frame := uint64(0)
	dev.SetTap(func(dir goxlr.Direction, buf []byte) {
		frame++
		src, dst := host, device
		if dir == goxlr.DIRECTION_RESPONSE {
			src, dst = device, host
		}
		decoded, err := dissector.Dissect(buf, dir, frame, src, dst)
		if err != nil {
			log.Warnf("frame %d: %v", frame, err)
		}
		if decoded != nil {
			fmt.Println(decoded.String())
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(time.Duration(cfg.PollIntervalMS) * time.Millisecond)
	defer ticker.Stop()

	log.Infof("watching device %s, poll interval %dms", device, cfg.PollIntervalMS)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := dev.GetButtonStates(); err != nil {
				log.Errorf("polling button states: %v", err)
			}
			if _, err := dev.GetMicrophoneLevel(); err != nil {
				log.Errorf("polling mic level: %v", err)
			}
		}
	}
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Attach to a local device and decode its traffic live",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Watch()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
