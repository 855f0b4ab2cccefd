package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

var (
	// Grid index metrics
	IndexRebuilds = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gardengrid",
		Subsystem: "index",
		Name:      "rebuilds_total",
		Help:      "Total occupancy index rebuilds",
	})

	IndexedCells = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gardengrid",
		Subsystem: "index",
		Name:      "occupied_cells",
		Help:      "Occupied cells per index rebuild",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 7),
	})

	IndexConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gardengrid",
		Subsystem: "index",
		Name:      "conflicts_total",
		Help:      "Cells claimed by more than one crop (last write wins)",
	})

	IndexSkippedPositions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gardengrid",
		Subsystem: "index",
		Name:      "skipped_positions_total",
		Help:      "Crop positions ignored because they lie outside the garden",
	})

	// Selection metrics
	DragCommits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gardengrid",
		Subsystem: "selection",
		Name:      "drag_commits_total",
		Help:      "Total drag gestures released",
	})

	CellsToggled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gardengrid",
		Subsystem: "selection",
		Name:      "cells_toggled_total",
		Help:      "Cells toggled by drag release",
	}, []string{"action"})

	PointerIgnored = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gardengrid",
		Subsystem: "selection",
		Name:      "pointer_ignored_total",
		Help:      "Pointer events that caused no transition",
	}, []string{"reason"})

	// Submission metrics
	GardensSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gardengrid",
		Subsystem: "backend",
		Name:      "gardens_submitted_total",
		Help:      "Garden drafts handed to the backend",
	}, []string{"kind", "result"})

	CropsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gardengrid",
		Subsystem: "backend",
		Name:      "crops_submitted_total",
		Help:      "Planting requests handed to the backend",
	}, []string{"result"})
)

// Result label values.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// WriteText dumps every registered metric in Prometheus text format.
func WriteText(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
