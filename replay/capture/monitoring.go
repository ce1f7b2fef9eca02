// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package capture

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	framesRead = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "godem_capture_frames",
		Help: "Count of top-level frames read, by kind.",
	}, []string{"kind"})

	frameBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "godem_capture_frame_bytes",
		Help: "Count of stored frame payload bytes read.",
	})

	compressedFrames = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "godem_capture_compressed_frames",
		Help: "Count of frames whose payload was inflated.",
	})

	embeddedMessages = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "godem_capture_embedded_messages",
		Help: "Count of embedded messages extracted from carriers.",
	})
)

// RegisterMonitoring registers all of this package's monitoring metrics.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		framesRead,
		frameBytes,
		compressedFrames,
		embeddedMessages,
	)
}
