package venues

import (
	"context"
	"testing"

	"eventfinder_backend/internal/discovery"
	"eventfinder_backend/platform/apperr"
	"eventfinder_backend/platform/logger"
	"eventfinder_backend/platform/validator"
)

type fakeVenueAPI struct {
	calls int
	page  *discovery.Page
	err   error
}

func (f *fakeVenueAPI) FindVenue(ctx context.Context, name string) (*discovery.Page, error) {
	f.calls++
	return f.page, f.err
}

func newTestService(api VenueAPI) *Service {
	return NewService(api, validator.New(), logger.New("development"))
}

func TestFindMissingNameFailsBeforeUpstreamCall(t *testing.T) {
	fake := &fakeVenueAPI{}
	svc := newTestService(fake)

	_, err := svc.Find(context.Background(), LookupRequest{})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if fake.calls != 0 {
		t.Fatalf("expected no upstream call, got %d", fake.calls)
	}
}

func TestFindNoMatchReturnsNilNotError(t *testing.T) {
	fake := &fakeVenueAPI{page: &discovery.Page{}}
	svc := newTestService(fake)

	info, err := svc.Find(context.Background(), LookupRequest{Name: "Nowhere Hall"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info != nil {
		t.Fatalf("expected nil venue info, got %+v", info)
	}
}

func TestFindNormalizesVenueWithCoordinates(t *testing.T) {
	fake := &fakeVenueAPI{
		page: &discovery.Page{
			Embedded: &discovery.Embedded{
				Venues: []discovery.Venue{
					{
						Name:       "The Forum",
						URL:        "https://tm.example/forum",
						PostalCode: "90305",
						Address:    discovery.Address{Line1: "3900 W Manchester Blvd"},
						City:       discovery.Named{Name: "Inglewood"},
						State:      discovery.State{StateCode: "CA"},
						Location:   &discovery.Location{Latitude: "33.9583", Longitude: "-118.3417"},
					},
				},
			},
		},
	}
	svc := newTestService(fake)

	info, err := svc.Find(context.Background(), LookupRequest{Name: "The Forum"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info == nil {
		t.Fatal("expected venue info")
	}

	if info.Name != "The Forum" {
		t.Fatalf("unexpected name %q", info.Name)
	}
	if info.Address != "The Forum, 3900 W Manchester Blvd, Inglewood, CA, 90305" {
		t.Fatalf("unexpected address %q", info.Address)
	}
	if info.Location.Lat == nil || *info.Location.Lat != 33.9583 {
		t.Fatalf("unexpected lat %v", info.Location.Lat)
	}
	if info.Location.Lng == nil || *info.Location.Lng != -118.3417 {
		t.Fatalf("unexpected lng %v", info.Location.Lng)
	}
	if info.GoogleMapsURL == nil {
		t.Fatal("expected maps url with both coordinates present")
	}
	if *info.GoogleMapsURL != "https://www.google.com/maps/search/?api=1&query=33.9583,-118.3417" {
		t.Fatalf("unexpected maps url %q", *info.GoogleMapsURL)
	}
	if info.TMURL == nil || *info.TMURL != "https://tm.example/forum" {
		t.Fatalf("unexpected tm url %v", info.TMURL)
	}
}

func TestFindMissingCoordinatesYieldNullLocationAndNoMapsURL(t *testing.T) {
	fake := &fakeVenueAPI{
		page: &discovery.Page{
			Embedded: &discovery.Embedded{
				Venues: []discovery.Venue{{Name: "The Forum"}},
			},
		},
	}
	svc := newTestService(fake)

	info, err := svc.Find(context.Background(), LookupRequest{Name: "The Forum"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if info.Location.Lat != nil || info.Location.Lng != nil {
		t.Fatalf("expected null coordinates, got %+v", info.Location)
	}
	if info.GoogleMapsURL != nil {
		t.Fatalf("expected no maps url, got %q", *info.GoogleMapsURL)
	}
	if info.TMURL != nil {
		t.Fatalf("expected null tm url, got %q", *info.TMURL)
	}
}

func TestFindUnparsableCoordinatesTreatedAsAbsent(t *testing.T) {
	fake := &fakeVenueAPI{
		page: &discovery.Page{
			Embedded: &discovery.Embedded{
				Venues: []discovery.Venue{
					{
						Name:     "The Forum",
						Location: &discovery.Location{Latitude: "33.9583", Longitude: "west"},
					},
				},
			},
		},
	}
	svc := newTestService(fake)

	info, err := svc.Find(context.Background(), LookupRequest{Name: "The Forum"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Location.Lat != nil || info.Location.Lng != nil || info.GoogleMapsURL != nil {
		t.Fatalf("expected coordinates dropped together, got %+v", info)
	}
}

func TestFindPropagatesUpstreamFailure(t *testing.T) {
	fake := &fakeVenueAPI{err: apperr.Upstream("discovery api error: status 500")}
	svc := newTestService(fake)

	_, err := svc.Find(context.Background(), LookupRequest{Name: "The Forum"})
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
