// Package servicetest содержит in-memory реализации хранилищ для тестов
package servicetest

import (
	"context"
	"sync"

	"github.com/Freeeeeet/timetable_bot/internal/model"
)

// Users хранит пользователей в памяти
type Users struct {
	mu      sync.Mutex
	users   map[int64]model.User
	Upserts []model.User
	Err     error
}

func NewUsers(users ...model.User) *Users {
	u := &Users{users: make(map[int64]model.User)}
	for _, user := range users {
		u.users[user.ID] = user
	}
	return u
}

func (u *Users) Upsert(_ context.Context, id int64, majorID string) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.Err != nil {
		return nil, u.Err
	}

	user := model.User{ID: id, MajorID: majorID}
	u.users[id] = user
	u.Upserts = append(u.Upserts, user)
	return &user, nil
}

func (u *Users) GetByID(_ context.Context, id int64) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.Err != nil {
		return nil, u.Err
	}

	user, ok := u.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// UpsertCount количество вызовов Upsert
func (u *Users) UpsertCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.Upserts)
}

// Majors хранит группы в памяти, порядок List совпадает с порядком добавления
type Majors struct {
	mu        sync.Mutex
	majors    []model.Major
	ListCalls int
	Err       error
}

func NewMajors(majors ...model.Major) *Majors {
	return &Majors{majors: majors}
}

func (m *Majors) List(_ context.Context) ([]model.Major, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ListCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]model.Major(nil), m.majors...), nil
}

func (m *Majors) GetByID(_ context.Context, id string) (*model.Major, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	for _, major := range m.majors {
		if major.ID == id {
			major := major
			return &major, nil
		}
	}
	return nil, nil
}

// FindCall аргументы одного вызова Timetable.Find
type FindCall struct {
	MajorID string
	Week    model.WeekParity
	Day     model.DayOfWeek
}

// Timetable отдаёт занятия в том порядке, в котором они были добавлены
type Timetable struct {
	mu      sync.Mutex
	entries []model.TimetableEntry
	Calls   []FindCall
	Err     error
}

func NewTimetable(entries ...model.TimetableEntry) *Timetable {
	return &Timetable{entries: entries}
}

func (t *Timetable) Find(_ context.Context, majorID string, week model.WeekParity, day model.DayOfWeek) ([]model.TimetableEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.Calls = append(t.Calls, FindCall{MajorID: majorID, Week: week, Day: day})
	if t.Err != nil {
		return nil, t.Err
	}

	var found []model.TimetableEntry
	for _, entry := range t.entries {
		if entry.MajorID == nil || *entry.MajorID != majorID {
			continue
		}
		if entry.Week == week && entry.DayOfWeek == day {
			found = append(found, entry)
		}
	}
	return found, nil
}

// CallCount количество вызовов Find
func (t *Timetable) CallCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.Calls)
}

// MajorCache кэш групп в памяти
type MajorCache struct {
	mu     sync.Mutex
	majors []model.Major
	filled bool
	Sets   int
	Err    error
}

func (c *MajorCache) Majors(_ context.Context) ([]model.Major, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Err != nil {
		return nil, false, c.Err
	}
	return c.majors, c.filled, nil
}

func (c *MajorCache) SetMajors(_ context.Context, majors []model.Major) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Err != nil {
		return c.Err
	}
	c.majors = append([]model.Major(nil), majors...)
	c.filled = true
	c.Sets++
	return nil
}

// Entry собирает занятие для тестов
func Entry(majorID string, week model.WeekParity, day model.DayOfWeek, start, end model.TimeOfDay, subject string) model.TimetableEntry {
	return model.TimetableEntry{
		MajorID:     &majorID,
		Week:        week,
		DayOfWeek:   day,
		StartsAt:    start,
		EndsAt:      end,
		SubjectName: subject,
		SubjectType: "Лекция",
		Auditorium:  "101",
	}
}
