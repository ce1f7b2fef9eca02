// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package demparse

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/danjacques/godem/replay"
)

func writeSummary(w io.Writer, path string, res *replay.Result, maxFailures int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Capture:\t%s\n", path)
	if h := res.Header; h != nil {
		fmt.Fprintf(tw, "Map:\t%s\n", h.GetMapName())
		fmt.Fprintf(tw, "Server:\t%s\n", h.GetServerName())
		fmt.Fprintf(tw, "Network protocol:\t%d\n", h.GetNetworkProtocol())
	}
	if fi := res.FileInfo; fi != nil {
		fmt.Fprintf(tw, "Playback:\t%d ticks (%.1fs)\n", fi.GetPlaybackTicks(), fi.GetPlaybackTime())
		if g := fi.Dota(); g != nil {
			fmt.Fprintf(tw, "Match ID:\t%d\n", g.GetMatchId())
			fmt.Fprintf(tw, "Winner:\t%d\n", g.GetGameWinner())
		}
	}
	fmt.Fprintf(tw, "Last tick:\t%d\n", res.LastTick)

	fmt.Fprintf(tw, "\nPhase\tMessages\n")
	for _, p := range replay.Phases {
		if log, ok := res.Phases[p]; ok {
			fmt.Fprintf(tw, "%s\t%d\n", p, len(log))
		}
	}

	fmt.Fprintf(tw, "\nPosition\tTable\tRows\tSpecialized\n")
	for _, t := range res.Tables.Tables() {
		specialized := 0
		for _, row := range t.Rows {
			if row.Specialized() {
				specialized++
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", t.Position, t.Name, len(t.Rows), specialized)
	}

	fmt.Fprintf(tw, "\nModifier entries:\t%d\n", len(res.Modifiers))
	fmt.Fprintf(tw, "Specialization failures:\t%d\n", len(res.SpecializationFailures))
	for i, f := range res.SpecializationFailures {
		if i >= maxFailures {
			fmt.Fprintf(tw, "\t... and %d more\n", len(res.SpecializationFailures)-i)
			break
		}
		fmt.Fprintf(tw, "\t%s\n", f)
	}

	return tw.Flush()
}
