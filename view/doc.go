/*
Package view builds the read-only projection of a signature snapshot:
totals, branch and year histograms, the recent-signer ticker feed, and the
paged signature list.

Build is deterministic for a given snapshot and reference time; rebuilding
from the same inputs yields identical output. The progress percentage is
min(100, round(count/Goal*100)); the progress-bar width uses the unrounded
ratio clamped to 100.

The paged list is a stateful cursor over the snapshot sorted newest first:

	m := view.Build(snapshot, time.Now())
	page := m.ShowMore() // first 12
	page = m.ShowMore()  // first 24
	m.HasMore()          // false once everything is revealed

The cursor always starts at zero; a fresh load means a fresh Model.
*/
package view
