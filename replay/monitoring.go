// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package replay

import (
	"github.com/danjacques/godem/replay/capture"
	"github.com/danjacques/godem/stringtable"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	capturesParsed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "godem_replay_captures_parsed",
		Help: "Count of captures parsed to completion.",
	})

	parseErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "godem_replay_parse_errors",
		Help: "Count of fatal parse errors, by type.",
	}, []string{"type"})

	phaseTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "godem_replay_phases_entered",
		Help: "Count of phases entered, by phase.",
	}, []string{"phase"})
)

// RegisterMonitoring registers this package's monitoring metrics, along with
// those of the capture and stringtable packages.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		capturesParsed,
		parseErrors,
		phaseTransitions,
	)

	capture.RegisterMonitoring(reg)
	stringtable.RegisterMonitoring(reg)
}
