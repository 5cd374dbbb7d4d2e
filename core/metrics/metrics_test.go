package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveLookup(t *testing.T) {
	hits := testutil.ToFloat64(LookupsTotal.WithLabelValues(KindSearch, OutcomeHit))
	misses := testutil.ToFloat64(LookupsTotal.WithLabelValues(KindSearch, OutcomeMiss))

	ObserveLookup(KindSearch, true)
	ObserveLookup(KindSearch, false)
	ObserveLookup(KindSearch, false)

	assert.Equal(t, hits+1, testutil.ToFloat64(LookupsTotal.WithLabelValues(KindSearch, OutcomeHit)))
	assert.Equal(t, misses+2, testutil.ToFloat64(LookupsTotal.WithLabelValues(KindSearch, OutcomeMiss)))
}
