package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	assert.Zero(t, Distance(43.6532, -79.3832, 43.6532, -79.3832))
}

func TestDistanceSymmetric(t *testing.T) {
	a := Distance(43.6532, -79.3832, 45.5019, -73.5674)
	b := Distance(45.5019, -73.5674, 43.6532, -79.3832)
	assert.InDelta(t, a, b, 1e-9)
}

func TestDistanceTorontoMontreal(t *testing.T) {
	// Toronto city hall to Montreal, roughly 504 km great-circle.
	d := Distance(43.6532, -79.3832, 45.5019, -73.5674)
	assert.InDelta(t, 504, d, 5)
}

func TestDistanceAntipodal(t *testing.T) {
	// Half the Earth's circumference; the atan2 form must not NaN here.
	d := Distance(0, 0, 0, 180)
	assert.InDelta(t, 20015, d, 10)
}
