package overlay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/facilities/internal/apperr"
	"github.com/gyeh/facilities/internal/codec"
	"github.com/gyeh/facilities/internal/metrics"
	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/store"
	"github.com/gyeh/facilities/internal/taxonomy"
)

func newTestService(t *testing.T, st Store) (*Service, *metrics.Metrics) {
	t.Helper()
	m, err := metrics.New()
	require.NoError(t, err)
	return NewService(st, WithMetrics(m), WithClock(func() time.Time { return now })), m
}

func TestApplyKnownFacility(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.PutFacility(ctx, model.Facility{ID: "vha_688", Type: model.FacilityType}))
	s, _ := newTestService(t, st)

	out, err := s.Apply(ctx, "vha_688", model.CmsOverlay{
		OperatingStatus:  &model.OperatingStatus{Code: model.StatusClosed},
		DetailedServices: model.Some([]model.DetailedService{svc("covid19Vaccine", true)}),
	})
	require.NoError(t, err)
	assert.Equal(t, Accepted, out.Status)
	assert.NotEqual(t, uuid.Nil, out.SubmissionID)

	f, ok, err := st.GetFacility(ctx, "vha_688")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.ActiveStatusTemporary, f.Attributes.ActiveStatus)
	require.Len(t, f.Attributes.Services.Health, 1)
	assert.Equal(t, model.SourceCMS, f.Attributes.Services.Health[0].Source)
	require.Len(t, f.Attributes.DetailedServices, 1)

	persisted, err := s.GetOverlay(ctx, "vha_688")
	require.NoError(t, err)
	assert.Equal(t, model.StatusClosed, persisted.OperatingStatus.Code)
	assert.Len(t, persisted.DetailedServices.OrZero(), 1)
}

func TestApplyUnknownFacility(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	s, _ := newTestService(t, st)

	out, err := s.Apply(ctx, "vha_999", model.CmsOverlay{
		DetailedServices: model.Some([]model.DetailedService{svc("dental", true)}),
	})
	require.NoError(t, err)
	assert.Equal(t, AcceptedFacilityUnknown, out.Status)
	assert.Nil(t, out.Facility)

	_, ok, err := st.GetOverlay(ctx, "vha_999")
	require.NoError(t, err)
	assert.True(t, ok, "overlay is stored even without a facility")
	_, ok, _ = st.GetFacility(ctx, "vha_999")
	assert.False(t, ok)
}

func TestApplyTwiceIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.PutFacility(ctx, model.Facility{ID: "vha_688"}))
	s, _ := newTestService(t, st)
	incoming := model.CmsOverlay{DetailedServices: model.Some([]model.DetailedService{
		svc("dental", true), svc("audiology", true),
	})}

	_, err := s.Apply(ctx, "vha_688", incoming)
	require.NoError(t, err)
	first, _, _ := st.GetOverlay(ctx, "vha_688")
	_, err = s.Apply(ctx, "vha_688", incoming)
	require.NoError(t, err)
	second, _, _ := st.GetOverlay(ctx, "vha_688")

	assert.Equal(t, *first.Services, *second.Services)
}

func TestApplyRejectsBadFacilityID(t *testing.T) {
	s, _ := newTestService(t, store.NewMemoryStore())
	_, err := s.Apply(context.Background(), "not a facility", model.CmsOverlay{})
	assert.True(t, apperr.IsInvalidParameter(err))
}

type brokenStore struct{ Store }

func (brokenStore) GetOverlay(context.Context, string) (codec.Record, bool, error) {
	return codec.Record{}, false, errors.New("connection reset")
}

func TestApplyStoreError(t *testing.T) {
	s, _ := newTestService(t, brokenStore{store.NewMemoryStore()})
	_, err := s.Apply(context.Background(), "vha_688", model.CmsOverlay{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load overlay")
}

func TestGetOverlayNotFound(t *testing.T) {
	s, _ := newTestService(t, store.NewMemoryStore())
	_, err := s.GetOverlay(context.Background(), "vha_688")
	assert.True(t, apperr.IsNotFound(err))
}

func TestGetDetailedService(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t, store.NewMemoryStore())
	_, err := s.Apply(ctx, "vha_688", model.CmsOverlay{
		DetailedServices: model.Some([]model.DetailedService{svc("dental", true)}),
	})
	require.NoError(t, err)

	d, err := s.GetDetailedService(ctx, "vha_688", taxonomy.LegacyDentalID)
	require.NoError(t, err)
	assert.Equal(t, "dental", d.ServiceID())

	_, err = s.GetDetailedService(ctx, "vha_688", "audiology")
	assert.True(t, apperr.IsNotFound(err))

	_, err = s.GetDetailedService(ctx, "vha_688", "foo")
	assert.True(t, apperr.IsInvalidParameter(err))

	_, err = s.GetDetailedService(ctx, "vha_404", "dental")
	assert.True(t, apperr.IsNotFound(err))
}
