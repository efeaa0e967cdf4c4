package overlay

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/facilities/internal/apperr"
	"github.com/gyeh/facilities/internal/codec"
	"github.com/gyeh/facilities/internal/metrics"
	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/taxonomy"
)

// Store is the slice of store.Store the merge cycle needs.
type Store interface {
	GetFacility(ctx context.Context, id string) (model.Facility, bool, error)
	PutFacility(ctx context.Context, f model.Facility) error
	GetOverlay(ctx context.Context, id string) (codec.Record, bool, error)
	PutOverlay(ctx context.Context, rec codec.Record) error
}

// Status tells the caller whether the facility side of a merge happened.
type Status string

const (
	// Accepted: overlay and facility were both written.
	Accepted Status = "accepted"
	// AcceptedFacilityUnknown: the overlay was written but no facility exists
	// for the id, so nothing was mirrored onto it.
	AcceptedFacilityUnknown Status = "accepted_facility_unknown"
)

type Outcome struct {
	Status       Status
	SubmissionID uuid.UUID
	Overlay      model.CmsOverlay
	Facility     *model.Facility
	Stats        Stats
}

// Service runs read-merge-write cycles. There is no locking: concurrent
// submissions for one facility race in the store and the last write wins.
type Service struct {
	store   Store
	names   NameResolver
	log     zerolog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

type Option func(*Service)

func WithNames(n NameResolver) Option       { return func(s *Service) { s.names = n } }
func WithLogger(l zerolog.Logger) Option    { return func(s *Service) { s.log = l } }
func WithMetrics(m *metrics.Metrics) Option { return func(s *Service) { s.metrics = m } }
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func NewService(st Store, opts ...Option) *Service {
	s := &Service{store: st, log: zerolog.Nop(), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With().Str("component", "overlay").Logger()
	return s
}

// Apply merges incoming into the persisted state of facilityID.
func (s *Service) Apply(ctx context.Context, facilityID string, incoming model.CmsOverlay) (Outcome, error) {
	start := time.Now()
	if err := model.ValidateFacilityID(facilityID); err != nil {
		return Outcome{}, err
	}
	subID := uuid.New()
	log := s.log.With().Str("facility_id", facilityID).Str("submission_id", subID.String()).Logger()

	out, err := s.apply(ctx, facilityID, incoming)
	if err != nil {
		s.metrics.ObserveMerge("error", time.Since(start))
		log.Error().Err(err).Msg("overlay merge failed")
		return Outcome{}, err
	}
	out.SubmissionID = subID

	s.metrics.ObserveMerge(string(out.Status), time.Since(start))
	s.metrics.AddOverlayServices(out.Stats.Kept, out.Stats.Added, out.Stats.Dropped)
	ev := log.Info()
	if out.Status == AcceptedFacilityUnknown {
		ev = log.Warn()
	}
	ev.Str("status", string(out.Status)).
		Int("kept", out.Stats.Kept).
		Int("added", out.Stats.Added).
		Int("dropped", out.Stats.Dropped).
		Dur("elapsed", time.Since(start)).
		Msg("overlay merged")
	return out, nil
}

func (s *Service) apply(ctx context.Context, facilityID string, incoming model.CmsOverlay) (Outcome, error) {
	in := Input{FacilityID: facilityID, Incoming: incoming, Names: s.names, Now: s.now()}

	rec, ok, err := s.store.GetOverlay(ctx, facilityID)
	if err != nil {
		return Outcome{}, fmt.Errorf("load overlay: %w", err)
	}
	if ok {
		prev, err := rec.Overlay()
		if err != nil {
			return Outcome{}, fmt.Errorf("decode overlay: %w", err)
		}
		in.PrevOverlay = &prev
	}

	f, ok, err := s.store.GetFacility(ctx, facilityID)
	if err != nil {
		return Outcome{}, fmt.Errorf("load facility: %w", err)
	}
	if ok {
		in.PrevFacility = &f
	}

	res := Merge(in)

	newRec, err := codec.RecordFromOverlay(facilityID, res.Overlay)
	if err != nil {
		return Outcome{}, err
	}
	if err := s.store.PutOverlay(ctx, newRec); err != nil {
		return Outcome{}, fmt.Errorf("save overlay: %w", err)
	}

	out := Outcome{Status: AcceptedFacilityUnknown, Overlay: res.Overlay, Stats: res.Stats}
	if res.Facility != nil {
		if err := s.store.PutFacility(ctx, *res.Facility); err != nil {
			return Outcome{}, fmt.Errorf("save facility: %w", err)
		}
		out.Status = Accepted
		out.Facility = res.Facility
	}
	return out, nil
}

// GetOverlay returns the persisted overlay of facilityID.
func (s *Service) GetOverlay(ctx context.Context, facilityID string) (model.CmsOverlay, error) {
	if err := model.ValidateFacilityID(facilityID); err != nil {
		return model.CmsOverlay{}, err
	}
	rec, ok, err := s.store.GetOverlay(ctx, facilityID)
	if err != nil {
		return model.CmsOverlay{}, fmt.Errorf("load overlay: %w", err)
	}
	if !ok {
		return model.CmsOverlay{}, apperr.NotFound("overlay for facility %s", facilityID)
	}
	o, err := rec.Overlay()
	if err != nil {
		return model.CmsOverlay{}, fmt.Errorf("decode overlay: %w", err)
	}
	return o, nil
}

// GetDetailedService returns one persisted detailed service. Legacy service
// ids resolve to their current entries.
func (s *Service) GetDetailedService(ctx context.Context, facilityID, serviceID string) (model.DetailedService, error) {
	if err := model.ValidateFacilityID(facilityID); err != nil {
		return model.DetailedService{}, err
	}
	entry, ok := taxonomy.Lookup(serviceID)
	if !ok {
		return model.DetailedService{}, apperr.InvalidParameter("service id %q", serviceID)
	}
	o, err := s.GetOverlay(ctx, facilityID)
	if err != nil {
		return model.DetailedService{}, err
	}
	for _, d := range o.DetailedServices.OrZero() {
		if d.ServiceID() == entry.ID {
			return d, nil
		}
	}
	return model.DetailedService{}, apperr.NotFound("service %s at facility %s", entry.ID, facilityID)
}
