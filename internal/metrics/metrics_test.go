package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFavoriteOperationsCounter(t *testing.T) {
	c := FavoriteOperations.WithLabelValues("planet", "add", OutcomeOK)
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestHandlerExposesCollectors(t *testing.T) {
	FavoriteOperations.WithLabelValues("starship", "remove", OutcomeNotFound).Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "starwars_favorites_operations_total")
}
