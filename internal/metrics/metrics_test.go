package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordStrategy(t *testing.T) {
	before := testutil.ToFloat64(ReconcileAssignedTotal.WithLabelValues("exact"))
	unmatchedBefore := testutil.ToFloat64(ReconcileUnmatchedTotal.WithLabelValues("exact"))

	RecordStrategy("exact", 3, 1)

	assert.Equal(t, before+3, testutil.ToFloat64(ReconcileAssignedTotal.WithLabelValues("exact")))
	assert.Equal(t, unmatchedBefore+1, testutil.ToFloat64(ReconcileUnmatchedTotal.WithLabelValues("exact")))
}

func TestRecordReconcileRun(t *testing.T) {
	before := testutil.ToFloat64(ReconcileRunsTotal.WithLabelValues("dry_run"))
	RecordReconcileRun("dry_run")
	assert.Equal(t, before+1, testutil.ToFloat64(ReconcileRunsTotal.WithLabelValues("dry_run")))
}
