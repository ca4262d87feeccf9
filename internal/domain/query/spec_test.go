package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

func TestSpec_AndDoesNotMutateReceiver(t *testing.T) {
	base := New(Eq{Field: "status", Value: "scheduled"})
	narrowed := base.And(SegmentIn{Segments: []models.Segment{models.SegmentSpa}})

	assert.Len(t, base.Predicates, 1)
	assert.Len(t, narrowed.Predicates, 2)
	assert.Equal(t, Eq{Field: "status", Value: "scheduled"}, narrowed.Predicates[0])
}

func TestSpec_AndSkipsNil(t *testing.T) {
	s := New(nil, Search{Term: "max"}, nil)
	assert.Len(t, s.Predicates, 1)
}

func TestSpec_Paginate_Bounds(t *testing.T) {
	s := Spec{}.Paginate(0, 0)
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, DefaultPerPage, s.PerPage)
	assert.Equal(t, 0, s.Offset())

	s = Spec{}.Paginate(3, 500)
	assert.Equal(t, MaxPerPage, s.PerPage)
	assert.Equal(t, 200, s.Offset())
}

func TestSpec_AllowsSegment_IntersectsEverySet(t *testing.T) {
	s := New(
		SegmentIn{Segments: []models.Segment{models.SegmentClinic, models.SegmentSpa}},
		SegmentIn{Segments: []models.Segment{models.SegmentClinic}},
	)

	assert.True(t, s.AllowsSegment(models.SegmentClinic))
	assert.False(t, s.AllowsSegment(models.SegmentSpa))
	assert.False(t, s.AllowsSegment(models.SegmentHotel))

	assert.True(t, New().AllowsSegment(models.SegmentHotel))
	assert.False(t, New(SegmentIn{}).AllowsSegment(models.SegmentHotel))
}
