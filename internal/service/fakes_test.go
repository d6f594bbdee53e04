package service

import (
	"context"
	"fmt"
	"time"

	"aqualog/internal/models"
	"aqualog/internal/repository"
)

// ---- Repository fakes shared by the service tests ----

type fakeTankRepo struct {
	tanks   map[int64]models.Tank
	err     error
	nextID  int64
	updates []models.Tank

	scheduleSet     []int
	scheduleCleared bool
}

func newFakeTankRepo(tanks ...models.Tank) *fakeTankRepo {
	f := &fakeTankRepo{tanks: make(map[int64]models.Tank), nextID: 100}
	for _, t := range tanks {
		f.tanks[t.ID] = t
	}
	return f
}

func (f *fakeTankRepo) Create(_ context.Context, t models.Tank) (models.Tank, error) {
	if f.err != nil {
		return models.Tank{}, f.err
	}
	f.nextID++
	t.ID = f.nextID
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	f.tanks[t.ID] = t
	return t, nil
}

func (f *fakeTankRepo) GetByID(_ context.Context, id int64) (models.Tank, error) {
	if f.err != nil {
		return models.Tank{}, f.err
	}
	t, ok := f.tanks[id]
	if !ok {
		return models.Tank{}, fmt.Errorf("%w: id %d", repository.ErrTankNotFound, id)
	}
	return t, nil
}

func (f *fakeTankRepo) List(context.Context) ([]models.Tank, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Tank
	for _, t := range f.tanks {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTankRepo) UpdateVolume(_ context.Context, id int64, volumeL float64) error {
	if f.err != nil {
		return f.err
	}
	t := f.tanks[id]
	t.VolumeL = &volumeL
	f.tanks[id] = t
	f.updates = append(f.updates, t)
	return nil
}

func (f *fakeTankRepo) SetCo2Schedule(_ context.Context, id int64, onHour, offHour int) error {
	if f.err != nil {
		return f.err
	}
	f.scheduleSet = []int{onHour, offHour}
	t := f.tanks[id]
	t.CO2OnHour = &onHour
	t.CO2OffHour = &offHour
	f.tanks[id] = t
	return nil
}

func (f *fakeTankRepo) ClearCo2Schedule(_ context.Context, id int64) error {
	f.scheduleCleared = true
	t := f.tanks[id]
	t.CO2OnHour = nil
	t.CO2OffHour = nil
	f.tanks[id] = t
	return f.err
}

type fakeReadingRepo struct {
	tests     []models.WaterTest
	appendErr error
	listErr   error
}

func (f *fakeReadingRepo) Append(_ context.Context, wt models.WaterTest) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.tests = append(f.tests, wt)
	return nil
}

func (f *fakeReadingRepo) ListByTank(_ context.Context, tankID int64, from, to time.Time) ([]models.WaterTest, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.WaterTest
	for _, wt := range f.tests {
		if wt.TankID != tankID {
			continue
		}
		if !from.IsZero() && wt.TakenAt.Before(from) {
			continue
		}
		if !to.IsZero() && wt.TakenAt.After(to) {
			continue
		}
		out = append(out, wt)
	}
	return out, nil
}

func (f *fakeReadingRepo) Latest(_ context.Context, tankID int64) (models.WaterTest, error) {
	if f.listErr != nil {
		return models.WaterTest{}, f.listErr
	}
	var latest models.WaterTest
	for _, wt := range f.tests {
		if wt.TankID == tankID && (latest.ID == "" || wt.TakenAt.After(latest.TakenAt)) {
			latest = wt
		}
	}
	return latest, nil
}

type fakeRangeRepo struct {
	overrides map[string]models.SafeRangeOverride
	err       error
}

func newFakeRangeRepo(overrides ...models.SafeRangeOverride) *fakeRangeRepo {
	f := &fakeRangeRepo{overrides: make(map[string]models.SafeRangeOverride)}
	for _, o := range overrides {
		f.overrides[rangeKey(o.TankID, o.Parameter)] = o
	}
	return f
}

func rangeKey(tankID int64, parameter string) string {
	return fmt.Sprintf("%d/%s", tankID, parameter)
}

func (f *fakeRangeRepo) Get(_ context.Context, tankID int64, parameter string) (*models.SafeRangeOverride, error) {
	if f.err != nil {
		return nil, f.err
	}
	o, ok := f.overrides[rangeKey(tankID, parameter)]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (f *fakeRangeRepo) ListByTank(_ context.Context, tankID int64) ([]models.SafeRangeOverride, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.SafeRangeOverride
	for _, o := range f.overrides {
		if o.TankID == tankID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRangeRepo) Set(_ context.Context, o models.SafeRangeOverride) error {
	if f.err != nil {
		return f.err
	}
	f.overrides[rangeKey(o.TankID, o.Parameter)] = o
	return nil
}

func (f *fakeRangeRepo) Delete(_ context.Context, tankID int64, parameter string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.overrides, rangeKey(tankID, parameter))
	return nil
}

type fakeAuthRepo struct {
	users     map[string]models.User
	createErr error
	getErr    error
	nextID    int
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{users: make(map[string]models.User)}
}

func (f *fakeAuthRepo) Create(username, hash string) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	f.users[username] = models.User{ID: f.nextID, Username: username, PasswordHash: hash}
	return f.nextID, nil
}

func (f *fakeAuthRepo) GetByUsername(username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// ---- Shared helpers ----

func fptr(v float64) *float64 { return &v }

func iptr(v int) *int { return &v }
