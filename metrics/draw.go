// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

// RecordSelection counts one selection attempt by outcome label
func (m *Metrics) RecordSelection(result string) {
	m.safeExecute("RecordSelection", func() {
		m.SelectionAttemptsTotal.WithLabelValues(result).Inc()
	})
}

// RecordReseed counts a rebuild and sets the roster size
func (m *Metrics) RecordReseed(count int) {
	m.safeExecute("RecordReseed", func() {
		m.RosterReseedsTotal.Inc()
		m.RosterSize.Set(float64(count))
	})
}

// SetRosterSize sets the roster size gauge
func (m *Metrics) SetRosterSize(count int) {
	m.safeExecute("SetRosterSize", func() {
		m.RosterSize.Set(float64(count))
	})
}
