// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package stringtable

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	tablesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "godem_stringtable_created",
		Help: "Count of string tables created.",
	})

	tableUpdates = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "godem_stringtable_updates",
		Help: "Count of string table update operations applied.",
	})

	rowsTouched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "godem_stringtable_rows_touched",
		Help: "Count of distinct rows touched by create and update operations.",
	})

	specializedRows = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "godem_stringtable_specialized_rows",
		Help: "Count of rows decoded by a specializer, by table.",
	}, []string{"table"})

	specializationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "godem_stringtable_specialization_failures",
		Help: "Count of rows whose specializer failed, by table.",
	}, []string{"table"})

	modifierEntries = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "godem_stringtable_modifier_entries",
		Help: "Count of active modifier entries accumulated.",
	})
)

// RegisterMonitoring registers all of this package's monitoring metrics.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		tablesCreated,
		tableUpdates,
		rowsTouched,
		specializedRows,
		specializationFailures,
		modifierEntries,
	)
}
