package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/halitb/certman/internal/app/controllers"
	"github.com/halitb/certman/internal/app/models"
	"github.com/halitb/certman/internal/app/routes"
	"github.com/halitb/certman/internal/app/services"
	"github.com/halitb/certman/internal/middleware"
	"github.com/halitb/certman/internal/pkg/apperrors"
	"github.com/halitb/certman/internal/pkg/filestorage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeUserStore is an in-memory services.UserStore double.
type fakeUserStore struct {
	mu         sync.Mutex
	nextID     int64
	students   map[int64]*models.Student
	teachers   map[int64]*models.Teacher
	organizers map[int64]*models.Organizer
	admins     map[int64]*models.Admin
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		students:   map[int64]*models.Student{},
		teachers:   map[int64]*models.Teacher{},
		organizers: map[int64]*models.Organizer{},
		admins:     map[int64]*models.Admin{},
	}
}

func (f *fakeUserStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeUserStore) CreateStudent(_ context.Context, s *models.Student) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.students {
		if existing.Name == s.Name {
			return 0, apperrors.ErrUserAlreadyExists
		}
	}
	cp := *s
	cp.ID = f.id()
	f.students[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeUserStore) CreateTeacher(_ context.Context, t *models.Teacher) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *t
	cp.ID = f.id()
	f.teachers[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeUserStore) CreateOrganizer(_ context.Context, o *models.Organizer) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *o
	cp.ID = f.id()
	f.organizers[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeUserStore) CreateAdmin(_ context.Context, a *models.Admin) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *a
	cp.ID = f.id()
	f.admins[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeUserStore) GetStudentByName(_ context.Context, name string) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.students {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeUserStore) GetTeacherByName(_ context.Context, name string) (*models.Teacher, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.teachers {
		if t.Name == name {
			cp := *t
			return &cp, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (f *fakeUserStore) GetOrganizerByName(_ context.Context, name string) (*models.Organizer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.organizers {
		if o.Name == name {
			cp := *o
			return &cp, nil
		}
	}
	return nil, apperrors.ErrOrganizerNotFound
}

func (f *fakeUserStore) GetAdminByName(_ context.Context, name string) (*models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.Name == name {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (f *fakeUserStore) GetStudentByID(_ context.Context, id int64) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.students[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeUserStore) GetTeacherByID(_ context.Context, id int64) (*models.Teacher, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.teachers[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (f *fakeUserStore) GetStudentsByClassID(_ context.Context, classID int64) ([]*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Student{}
	for _, s := range f.students {
		if s.ClassID == classID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeEventStore is an in-memory services.EventStore double.
type fakeEventStore struct {
	mu     sync.Mutex
	nextID int64
	events []*models.Event
}

func (f *fakeEventStore) Create(_ context.Context, event *models.Event) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	event.ID = f.nextID
	cp := *event
	f.events = append(f.events, &cp)
	return event, nil
}

func (f *fakeEventStore) List(_ context.Context, organizerID *int64) ([]*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Event{}
	for _, e := range f.events {
		if organizerID != nil && (e.OrganizerID == nil || *e.OrganizerID != *organizerID) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

// fakeCertStore is an in-memory services.CertificateStore double. CreateBatch
// is all-or-nothing, mirroring the transactional repository.
type fakeCertStore struct {
	mu     sync.Mutex
	nextID int64
	certs  []*models.Certificate
}

func (f *fakeCertStore) CreateBatch(_ context.Context, certs []*models.Certificate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range certs {
		f.nextID++
		c.ID = f.nextID
		cp := *c
		f.certs = append(f.certs, &cp)
	}
	return nil
}

func (f *fakeCertStore) ListByStudentID(_ context.Context, studentID int64) ([]*models.Certificate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Certificate{}
	for _, c := range f.certs {
		if c.StudentID == studentID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCertStore) ListByStudentIDs(_ context.Context, studentIDs []int64) ([]*models.Certificate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wanted := map[int64]bool{}
	for _, id := range studentIDs {
		wanted[id] = true
	}
	out := []*models.Certificate{}
	for _, c := range f.certs {
		if wanted[c.StudentID] {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

// testEnv bundles the fakes behind a fully wired router.
type testEnv struct {
	router *gin.Engine
	users  *fakeUserStore
	events *fakeEventStore
	certs  *fakeCertStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := newFakeUserStore()
	events := &fakeEventStore{}
	certs := &fakeCertStore{}

	storage, err := filestorage.NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RecoveryJSON())

	routes.SetupRouter(router,
		controllers.NewAuthController(services.NewAuthService(users)),
		controllers.NewAdminController(services.NewUserService(users)),
		controllers.NewEventController(services.NewEventService(events)),
		controllers.NewCertificateController(services.NewCertificateService(certs, storage)),
		controllers.NewDashboardController(services.NewDashboardService(users, certs)),
		controllers.NewFileController(storage),
	)

	return &testEnv{router: router, users: users, events: events, certs: certs}
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) doGet(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// doMultipart posts files plus form fields to the upload route.
func (e *testEnv) doMultipart(t *testing.T, path string, fields map[string]string, files map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := w.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}
