package services

import (
	"context"
	"strings"

	"motoyard/internal/models"
)

// In-memory repository fakes. Call counters let the tests assert that
// short-circuit paths never touch the store.

type fakeMotoRepo struct {
	motos            map[int]models.Moto
	nextID           int
	getByIDCalls     int
	plateExistsCalls int
}

func newFakeMotoRepo() *fakeMotoRepo {
	return &fakeMotoRepo{motos: map[int]models.Moto{}, nextID: 1}
}

func (f *fakeMotoRepo) GetAll(ctx context.Context) ([]models.Moto, error) {
	out := make([]models.Moto, 0, len(f.motos))
	for _, m := range f.motos {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMotoRepo) GetByID(ctx context.Context, id int) (*models.Moto, error) {
	f.getByIDCalls++
	if m, ok := f.motos[id]; ok {
		found := m
		return &found, nil
	}
	return nil, nil
}

func (f *fakeMotoRepo) Add(ctx context.Context, moto *models.Moto) error {
	moto.ID = f.nextID
	f.nextID++
	f.motos[moto.ID] = *moto
	return nil
}

func (f *fakeMotoRepo) Update(ctx context.Context, moto *models.Moto) error {
	f.motos[moto.ID] = *moto
	return nil
}

func (f *fakeMotoRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := f.motos[id]; !ok {
		return false, nil
	}
	delete(f.motos, id)
	return true, nil
}

func (f *fakeMotoRepo) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := f.motos[id]
	return ok, nil
}

func (f *fakeMotoRepo) PlateExists(ctx context.Context, plate string) (bool, error) {
	f.plateExistsCalls++
	for _, m := range f.motos {
		if m.Plate == plate {
			return true, nil
		}
	}
	return false, nil
}

type fakeSlotRepo struct {
	slots        map[int]models.Slot
	nextID       int
	getByIDCalls int
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: map[int]models.Slot{}, nextID: 1}
}

func (f *fakeSlotRepo) GetAll(ctx context.Context) ([]models.Slot, error) {
	out := make([]models.Slot, 0, len(f.slots))
	for _, s := range f.slots {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id int) (*models.Slot, error) {
	f.getByIDCalls++
	if s, ok := f.slots[id]; ok {
		found := s
		return &found, nil
	}
	return nil, nil
}

func (f *fakeSlotRepo) Add(ctx context.Context, slot *models.Slot) error {
	slot.ID = f.nextID
	f.nextID++
	f.slots[slot.ID] = *slot
	return nil
}

func (f *fakeSlotRepo) Update(ctx context.Context, slot *models.Slot) error {
	f.slots[slot.ID] = *slot
	return nil
}

func (f *fakeSlotRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := f.slots[id]; !ok {
		return false, nil
	}
	delete(f.slots, id)
	return true, nil
}

func (f *fakeSlotRepo) MotoInSlot(ctx context.Context, motoID int) (bool, error) {
	for _, s := range f.slots {
		if s.MotoID == motoID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSlotRepo) MotoInOtherSlot(ctx context.Context, motoID, excludeSlotID int) (bool, error) {
	for _, s := range f.slots {
		if s.MotoID == motoID && s.ID != excludeSlotID {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	users        map[int]models.User
	nextID       int
	getByIDCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]models.User{}, nextID: 1}
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	f.getByIDCalls++
	if u, ok := f.users[id]; ok {
		found := u
		return &found, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Add(ctx context.Context, user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

func (f *fakeUserRepo) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

type fakeCheckinRepo struct {
	checkins     map[int]models.Checkin
	nextID       int
	getByIDCalls int
}

func newFakeCheckinRepo() *fakeCheckinRepo {
	return &fakeCheckinRepo{checkins: map[int]models.Checkin{}, nextID: 1}
}

func (f *fakeCheckinRepo) GetAll(ctx context.Context) ([]models.Checkin, error) {
	out := make([]models.Checkin, 0, len(f.checkins))
	for _, c := range f.checkins {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCheckinRepo) GetByID(ctx context.Context, id int) (*models.Checkin, error) {
	f.getByIDCalls++
	if c, ok := f.checkins[id]; ok {
		found := c
		return &found, nil
	}
	return nil, nil
}

func (f *fakeCheckinRepo) Add(ctx context.Context, checkin *models.Checkin) error {
	checkin.ID = f.nextID
	f.nextID++
	f.checkins[checkin.ID] = *checkin
	return nil
}

func (f *fakeCheckinRepo) Update(ctx context.Context, checkin *models.Checkin) error {
	f.checkins[checkin.ID] = *checkin
	return nil
}

func (f *fakeCheckinRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := f.checkins[id]; !ok {
		return false, nil
	}
	delete(f.checkins, id)
	return true, nil
}
