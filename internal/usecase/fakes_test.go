package usecase

import (
	"context"
	"errors"
	"testing"

	"docrech/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var errFetch = errors.New("connection refused")

func newTestLogger() (*logrus.Logger, *test.Hook) {
	return test.NewNullLogger()
}

type fakeSpecialtyRepo struct {
	specialties []entity.Specialty
	err         error
}

func (f *fakeSpecialtyRepo) FindAll(ctx context.Context) ([]entity.Specialty, error) {
	return f.specialties, f.err
}

func (f *fakeSpecialtyRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Specialty, error) {
	for i := range f.specialties {
		if f.specialties[i].ID == id {
			return &f.specialties[i], f.err
		}
	}
	return nil, f.err
}

type fakeDiseaseRepo struct {
	diseases []entity.Disease
	err      error
	lookups  int
}

func (f *fakeDiseaseRepo) FindAll(ctx context.Context) ([]entity.Disease, error) {
	return f.diseases, f.err
}

func (f *fakeDiseaseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Disease, error) {
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.diseases {
		if f.diseases[i].ID == id {
			return &f.diseases[i], nil
		}
	}
	return nil, nil
}

type fakeDoctorRepo struct {
	doctors    []entity.Doctor
	err        error
	lastFilter *entity.DoctorFilter
}

func (f *fakeDoctorRepo) FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	var doctors []entity.Doctor
	for _, d := range f.doctors {
		if filter != nil && filter.SpecialtyID != nil && d.SpecialtyID != *filter.SpecialtyID {
			continue
		}
		doctors = append(doctors, d)
	}
	return doctors, nil
}

func (f *fakeDoctorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.doctors {
		if f.doctors[i].ID == id {
			return &f.doctors[i], nil
		}
	}
	return nil, nil
}

type fakePharmacyRepo struct {
	pharmacies []entity.Pharmacy
	err        error
}

func (f *fakePharmacyRepo) FindAll(ctx context.Context) ([]entity.Pharmacy, error) {
	return f.pharmacies, f.err
}

type recordedSearch struct {
	listing string
	term    string
}

type fakeAnalyticsRepo struct {
	recorded []recordedSearch
	popular  []entity.SearchTerm
	err      error
}

func (f *fakeAnalyticsRepo) Record(ctx context.Context, listing, term string) error {
	if f.err != nil {
		return f.err
	}
	f.recorded = append(f.recorded, recordedSearch{listing: listing, term: term})
	return nil
}

func (f *fakeAnalyticsRepo) Popular(ctx context.Context, listing string, limit int) ([]entity.SearchTerm, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.popular) > limit {
		return f.popular[:limit], nil
	}
	return f.popular, nil
}

func noAnalytics(t *testing.T) SearchAnalyticsUsecase {
	t.Helper()
	log, _ := newTestLogger()
	return NewSearchAnalyticsUsecase(log, nil)
}
