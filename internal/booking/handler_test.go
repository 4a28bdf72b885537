package booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"booking-service/internal/db"
	"booking-service/internal/middleware"
	"booking-service/internal/session"
	"booking-service/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRepo struct {
	resources    []db.Resource
	reservations []db.Reservation
	created      []db.NewReservation
	err          error
}

func (f *fakeRepo) ListResources(context.Context) ([]db.Resource, error) {
	return f.resources, f.err
}

func (f *fakeRepo) CreateResource(_ context.Context, name, description string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	id := int64(len(f.resources) + 1)
	f.resources = append(f.resources, db.Resource{ID: id, Name: name, Description: description})
	return id, nil
}

func (f *fakeRepo) ListReservations(context.Context) ([]db.Reservation, error) {
	return f.reservations, f.err
}

func (f *fakeRepo) CreateReservation(_ context.Context, r db.NewReservation) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, r)
	return int64(len(f.created)), nil
}

type fixture struct {
	router   *gin.Engine
	repo     *fakeRepo
	sessions *session.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	sessions := session.NewManager(session.NewMemoryStore(), session.CookieOptions{}, nil)
	gate := middleware.NewGate(sessions, nil)
	repo := &fakeRepo{}

	tmpl, err := web.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	NewHandler(repo).RegisterRoutes(r, middleware.GinRequireLogin(gate), middleware.GinRequireAdmin(gate))

	return &fixture{router: r, repo: repo, sessions: sessions}
}

func (f *fixture) login(t *testing.T, role session.Role, age *int) string {
	t.Helper()
	id := int64(42)
	name := "user"
	token, err := f.sessions.Create(httptest.NewRecorder(), session.Principal{
		UserID:   &id,
		Username: &name,
		Role:     &role,
		Age:      age,
	})
	require.NoError(t, err)
	return session.CookieName + "=" + token
}

func (f *fixture) do(method, path string, form url.Values, cookie string) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func intPtr(v int) *int { return &v }

func reservationForm() url.Values {
	return url.Values{
		"resource_id": {"3"},
		"start_time":  {"2024-06-01T10:00"},
		"end_time":    {"2024-06-01T11:30"},
		"purpose":     {"team sync"},
	}
}

func TestCanReserve(t *testing.T) {
	assert.False(t, CanReserve(session.Record{}))
	assert.False(t, CanReserve(session.Record{Age: intPtr(15)}))
	assert.True(t, CanReserve(session.Record{Age: intPtr(16)}))
}

func TestResources_RequiresLogin(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/resources", nil, "")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestResources_JSON(t *testing.T) {
	f := newFixture(t)
	f.repo.resources = []db.Resource{{ID: 1, Name: "Room A", Description: "Meeting room"}}

	w := f.do(http.MethodGet, "/resources", nil, f.login(t, session.RoleReserver, intPtr(20)))

	require.Equal(t, http.StatusOK, w.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Room A", got[0]["resource_name"])
}

func TestViewResources_Escapes(t *testing.T) {
	f := newFixture(t)
	f.repo.resources = []db.Resource{{ID: 1, Name: "<b>Room</b>", Description: "desc"}}

	w := f.do(http.MethodGet, "/view-resources", nil, f.login(t, session.RoleReserver, intPtr(20)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "&lt;b&gt;Room&lt;/b&gt;: desc")
}

func TestAddResource_AdminOnly(t *testing.T) {
	f := newFixture(t)
	form := url.Values{"resource_name": {"Room A"}, "description": {"Meeting room"}}

	w := f.do(http.MethodPost, "/add-resource", form, f.login(t, session.RoleReserver, intPtr(30)))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, f.repo.resources)

	w = f.do(http.MethodGet, "/add-resource", nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodPost, "/add-resource", form, f.login(t, session.RoleAdministrator, nil))
	assert.Equal(t, http.StatusFound, w.Code)
	require.Len(t, f.repo.resources, 1)
	assert.Equal(t, "Room A", f.repo.resources[0].Name)
}

func TestAddResource_MissingFields(t *testing.T) {
	f := newFixture(t)
	form := url.Values{"resource_name": {"Room A"}}

	w := f.do(http.MethodPost, "/add-resource", form, f.login(t, session.RoleAdministrator, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, f.repo.resources)
}

func TestAddResource_StorageError(t *testing.T) {
	f := newFixture(t)
	f.repo.err = errors.New("disk full")
	form := url.Values{"resource_name": {"Room A"}, "description": {"Meeting room"}}

	w := f.do(http.MethodPost, "/add-resource", form, f.login(t, session.RoleAdministrator, nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAddReservation(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/add-reservation", reservationForm(), f.login(t, session.RoleReserver, intPtr(20)))

	assert.Equal(t, http.StatusFound, w.Code)
	require.Len(t, f.repo.created, 1)
	got := f.repo.created[0]
	assert.Equal(t, int64(3), got.ResourceID)
	require.NotNil(t, got.UserID)
	assert.Equal(t, int64(42), *got.UserID)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), got.StartTime)
	assert.Equal(t, time.Date(2024, 6, 1, 11, 30, 0, 0, time.UTC), got.EndTime)
	assert.Equal(t, "team sync", got.Purpose)
}

func TestAddReservation_AgeFloor(t *testing.T) {
	f := newFixture(t)

	for _, age := range []*int{nil, intPtr(10), intPtr(15)} {
		w := f.do(http.MethodPost, "/add-reservation", reservationForm(), f.login(t, session.RoleReserver, age))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "over 15")
	}
	assert.Empty(t, f.repo.created)
}

func TestAddReservation_MissingFieldsCheckedFirst(t *testing.T) {
	f := newFixture(t)
	form := reservationForm()
	form.Del("purpose")

	w := f.do(http.MethodPost, "/add-reservation", form, f.login(t, session.RoleReserver, intPtr(10)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddReservation_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{"bad resource", "resource_id", "abc"},
		{"negative resource", "resource_id", "-1"},
		{"bad start", "start_time", "tomorrow"},
		{"bad end", "end_time", "later"},
		{"end before start", "end_time", "2024-06-01T09:00"},
		{"end equals start", "end_time", "2024-06-01T10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			form := reservationForm()
			form.Set(tt.field, tt.value)

			w := f.do(http.MethodPost, "/add-reservation", form, f.login(t, session.RoleReserver, intPtr(20)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, f.repo.created)
		})
	}
}

func TestAddReservation_UnknownResource(t *testing.T) {
	f := newFixture(t)
	f.repo.err = &pq.Error{Code: "23503"}

	w := f.do(http.MethodPost, "/add-reservation", reservationForm(), f.login(t, session.RoleReserver, intPtr(20)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddReservation_StorageError(t *testing.T) {
	f := newFixture(t)
	f.repo.err = errors.New("connection reset")

	w := f.do(http.MethodPost, "/add-reservation", reservationForm(), f.login(t, session.RoleReserver, intPtr(20)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAPIReservations(t *testing.T) {
	f := newFixture(t)
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	f.repo.reservations = []db.Reservation{{
		ResourceID: 3,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Purpose:    "team sync",
	}}

	w := f.do(http.MethodGet, "/api/reservations", nil, "")
	assert.Equal(t, http.StatusFound, w.Code)

	w = f.do(http.MethodGet, "/api/reservations", nil, f.login(t, session.RoleReserver, intPtr(20)))
	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, float64(3), got[0]["resource_id"])
	assert.Equal(t, "2024-06-01T10:00:00Z", got[0]["start_time"])
	assert.Equal(t, "team sync", got[0]["purpose"])
}

func TestAPIUserRole(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/user-role", nil, f.login(t, session.RoleAdministrator, nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"administrator"}`, w.Body.String())
}

func TestPages_RequireLogin(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t, session.RoleReserver, intPtr(20))

	for _, path := range []string{"/add-reservation", "/view-reservations", "/view-resources"} {
		assert.Equal(t, http.StatusFound, f.do(http.MethodGet, path, nil, "").Code, path)
		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, path, nil, cookie).Code, path)
	}
}
