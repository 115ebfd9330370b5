package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"rotahub/internal/model"
	"rotahub/internal/repository"
)

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[uint]*model.Employee
	nextID    uint
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[uint]*model.Employee), nextID: 1}
}

func (m *mockEmployeeRepo) Create(_ context.Context, emp *model.Employee) error {
	if emp.ID == 0 {
		emp.ID = m.nextID
		m.nextID++
	}
	m.employees[emp.ID] = emp
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id uint) (*model.Employee, error) {
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetByEmpID(_ context.Context, empID string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.EmpID == empID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context, status string, offset, limit int) ([]model.Employee, int64, error) {
	var all []model.Employee
	for _, e := range m.employees {
		if status != "" && e.Status != status {
			continue
		}
		all = append(all, *e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockEmployeeRepo) ListActive(_ context.Context) ([]model.Employee, error) {
	var result []model.Employee
	for _, e := range m.employees {
		if e.Status == model.EmployeeActive {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, emp *model.Employee) error {
	m.employees[emp.ID] = emp
	return nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id uint) error {
	delete(m.employees, id)
	return nil
}

// ── Mock ShiftTypeRepository ──

type mockShiftTypeRepo struct {
	types map[string]*model.ShiftType
}

func newMockShiftTypeRepo() *mockShiftTypeRepo {
	m := &mockShiftTypeRepo{types: make(map[string]*model.ShiftType)}
	// Seed the full catalog the way migrations do.
	catalog := []model.ShiftType{
		{ID: 1, Code: "M", Description: "Morning"},
		{ID: 2, Code: "E", Description: "Evening"},
		{ID: 3, Code: "N", Description: "Night"},
		{ID: 4, Code: "G", Description: "General"},
		{ID: 5, Code: "Off", Description: "Off"},
		{ID: 6, Code: "Leave", Description: "Leave"},
	}
	for i := range catalog {
		m.types[catalog[i].Code] = &catalog[i]
	}
	return m
}

func (m *mockShiftTypeRepo) Create(_ context.Context, st *model.ShiftType) error {
	m.types[st.Code] = st
	return nil
}

func (m *mockShiftTypeRepo) GetByCode(_ context.Context, code string) (*model.ShiftType, error) {
	if st, ok := m.types[code]; ok {
		return st, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftTypeRepo) List(_ context.Context) ([]model.ShiftType, error) {
	var result []model.ShiftType
	for _, st := range m.types {
		result = append(result, *st)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockShiftTypeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.types)), nil
}

// byID resolves a catalog entry for preload simulation.
func (m *mockShiftTypeRepo) byID(id uint) *model.ShiftType {
	for _, st := range m.types {
		if st.ID == id {
			return st
		}
	}
	return nil
}

// ── Mock RotaRepository ──

type mockRotaRepo struct {
	rows       []model.ShiftRota
	nextID     uint
	shiftTypes *mockShiftTypeRepo
	employees  *mockEmployeeRepo
}

func newMockRotaRepo(st *mockShiftTypeRepo, emp *mockEmployeeRepo) *mockRotaRepo {
	return &mockRotaRepo{nextID: 1, shiftTypes: st, employees: emp}
}

func (m *mockRotaRepo) ReplaceRange(_ context.Context, start, end time.Time, rows []model.ShiftRota) error {
	var kept []model.ShiftRota
	for _, r := range m.rows {
		if r.Date.Before(start) || r.Date.After(end) {
			kept = append(kept, r)
		}
	}
	for i := range rows {
		rows[i].ID = m.nextID
		m.nextID++
		kept = append(kept, rows[i])
	}
	m.rows = kept
	return nil
}

func (m *mockRotaRepo) ListByRange(_ context.Context, start, end time.Time) ([]model.ShiftRota, error) {
	var result []model.ShiftRota
	for _, r := range m.rows {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		r.ShiftType = m.shiftTypes.byID(r.ShiftTypeID)
		if e, ok := m.employees.employees[r.EmployeeID]; ok {
			r.Employee = e
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].EmployeeID < result[j].EmployeeID
	})
	return result, nil
}

func (m *mockRotaRepo) ListByEmployeeRange(_ context.Context, employeeID uint, start, end time.Time) ([]model.ShiftRota, error) {
	all, _ := m.ListByRange(context.Background(), start, end)
	var result []model.ShiftRota
	for _, r := range all {
		if r.EmployeeID == employeeID {
			result = append(result, r)
		}
	}
	return result, nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	rows   []model.Attendance
	nextID uint
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{nextID: 1}
}

func (m *mockAttendanceRepo) Create(_ context.Context, att *model.Attendance) error {
	att.ID = m.nextID
	m.nextID++
	m.rows = append(m.rows, *att)
	return nil
}

func (m *mockAttendanceRepo) BatchCreate(_ context.Context, rows []model.Attendance) error {
	for i := range rows {
		rows[i].ID = m.nextID
		m.nextID++
		m.rows = append(m.rows, rows[i])
	}
	return nil
}

func (m *mockAttendanceRepo) ListByRange(_ context.Context, start, end time.Time) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, r := range m.rows {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		if result[i].EmployeeID != result[j].EmployeeID {
			return result[i].EmployeeID < result[j].EmployeeID
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *mockAttendanceRepo) ListByEmployeeRange(_ context.Context, employeeID uint, start, end time.Time) ([]model.Attendance, error) {
	all, _ := m.ListByRange(context.Background(), start, end)
	var result []model.Attendance
	for _, r := range all {
		if r.EmployeeID == employeeID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) ListRecent(_ context.Context, offset, limit int) ([]model.Attendance, int64, error) {
	total := int64(len(m.rows))
	result := append([]model.Attendance(nil), m.rows...)
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

// ── Mock ExceptionRepository ──

type mockExceptionRepo struct {
	rows   []model.ExceptionReport
	nextID uint
}

func newMockExceptionRepo() *mockExceptionRepo {
	return &mockExceptionRepo{nextID: 1}
}

func (m *mockExceptionRepo) ReplaceRange(_ context.Context, start, end time.Time, rows []model.ExceptionReport) error {
	var kept []model.ExceptionReport
	for _, r := range m.rows {
		if r.Date.Before(start) || r.Date.After(end) {
			kept = append(kept, r)
		}
	}
	for i := range rows {
		rows[i].ID = m.nextID
		m.nextID++
		kept = append(kept, rows[i])
	}
	m.rows = kept
	return nil
}

func (m *mockExceptionRepo) GetByID(_ context.Context, id uint) (*model.ExceptionReport, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			cp := m.rows[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockExceptionRepo) List(_ context.Context, start, end time.Time, filter repository.ExceptionFilter, offset, limit int) ([]model.ExceptionReport, int64, error) {
	var matched []model.ExceptionReport
	for _, r := range m.rows {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.EmployeeID != 0 && r.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Issue != "" && !strings.Contains(r.Issue, filter.Issue) {
			continue
		}
		matched = append(matched, r)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end2 := offset + limit
	if end2 > len(matched) {
		end2 = len(matched)
	}
	return matched[offset:end2], total, nil
}

func (m *mockExceptionRepo) ListByRange(_ context.Context, start, end time.Time) ([]model.ExceptionReport, error) {
	var result []model.ExceptionReport
	for _, r := range m.rows {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (m *mockExceptionRepo) Update(_ context.Context, exc *model.ExceptionReport) error {
	for i := range m.rows {
		if m.rows[i].ID == exc.ID {
			m.rows[i] = *exc
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Mock AdminUserRepository ──

type mockAdminUserRepo struct {
	users  map[uint]*model.AdminUser
	nextID uint
}

func newMockAdminUserRepo() *mockAdminUserRepo {
	return &mockAdminUserRepo{users: make(map[uint]*model.AdminUser), nextID: 1}
}

func (m *mockAdminUserRepo) Create(_ context.Context, user *model.AdminUser) error {
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockAdminUserRepo) GetByID(_ context.Context, id uint) (*model.AdminUser, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminUserRepo) GetByUsername(_ context.Context, username string) (*model.AdminUser, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Aggregate helper ──

// testRepos aggregates every mock repo for seeding.
type testRepos struct {
	employee   *mockEmployeeRepo
	shiftType  *mockShiftTypeRepo
	rota       *mockRotaRepo
	attendance *mockAttendanceRepo
	exception  *mockExceptionRepo
	adminUser  *mockAdminUserRepo
}

func newTestRepos() *testRepos {
	emp := newMockEmployeeRepo()
	st := newMockShiftTypeRepo()
	return &testRepos{
		employee:   emp,
		shiftType:  st,
		rota:       newMockRotaRepo(st, emp),
		attendance: newMockAttendanceRepo(),
		exception:  newMockExceptionRepo(),
		adminUser:  newMockAdminUserRepo(),
	}
}

func (r *testRepos) toRepository() *repository.Repository {
	return &repository.Repository{
		Employee:   r.employee,
		ShiftType:  r.shiftType,
		Rota:       r.rota,
		Attendance: r.attendance,
		Exception:  r.exception,
		AdminUser:  r.adminUser,
	}
}
