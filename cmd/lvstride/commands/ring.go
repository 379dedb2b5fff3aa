// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvstride/circular"
	"github.com/katalvlaran/lvstride/internal/config"
	"github.com/katalvlaran/lvstride/internal/render"
)

func newRingCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ring [values...]",
		Short: "Push values through a circular buffer",
		Long: `Push each value into a circular buffer of --capacity slots, print which
values were evicted, then print the buffer's JSON form.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runRing(args)
		},
	}
	cmd.Flags().Int("capacity", config.DefaultRingCapacity, "Buffer capacity")
	return cmd
}

func (a *app) runRing(values []string) error {
	if len(values) == 0 {
		return errNoRingValues
	}
	buf, err := circular.New[string](a.cfg.Ring.Capacity)
	if err != nil {
		return err
	}

	events := make([]render.RingEvent, 0, len(values))
	evicted := 0
	for _, v := range values {
		old, dropped := buf.Push(v)
		a.metrics.RingPush(dropped)
		if dropped {
			evicted++
			a.log.Debug("evicted", "value", old, "by", v)
		}
		events = append(events, render.RingEvent{Value: v, Evicted: old, Dropped: dropped})
	}
	a.render.Ring(events)
	if evicted == 0 {
		a.render.Note("no evictions: %d of %d slots used", buf.Count(), buf.Len())
	}

	raw, err := json.Marshal(buf)
	if err != nil {
		return fmt.Errorf("encode ring: %w", err)
	}
	fmt.Fprintln(a.out, string(raw))
	return nil
}
