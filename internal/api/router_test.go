package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/limelight-casting/limelight/internal/geo"
	"github.com/limelight-casting/limelight/internal/geocode"
	"github.com/limelight-casting/limelight/internal/notify"
	"github.com/limelight-casting/limelight/internal/recommend"
	"github.com/limelight-casting/limelight/internal/scoring"
	"github.com/limelight-casting/limelight/internal/store"
)

// Mocks

type mockStore struct {
	auditions     []*store.Audition
	submissions   []*store.Submission
	notifications []*store.Notification
	users         []uuid.UUID
}

func newMockStore() *mockStore {
	return &mockStore{}
}

func (m *mockStore) CreateAudition(_ context.Context, a *store.Audition) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	m.auditions = append(m.auditions, a)
	return nil
}

func (m *mockStore) GetAudition(_ context.Context, id uuid.UUID) (*store.Audition, error) {
	for _, a := range m.auditions {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockStore) ListAuditions(_ context.Context) ([]*store.Audition, error) {
	return m.auditions, nil
}

func (m *mockStore) UpdateAudition(_ context.Context, a *store.Audition) error {
	for i, existing := range m.auditions {
		if existing.ID == a.ID {
			m.auditions[i] = a
		}
	}
	return nil
}

func (m *mockStore) CreateSubmission(_ context.Context, sub *store.Submission) error {
	sub.ID = uuid.New()
	sub.SubmittedAt = time.Now()
	m.submissions = append(m.submissions, sub)
	for _, a := range m.auditions {
		if a.ID == sub.AuditionID {
			a.SubmissionCount++
		}
	}
	return nil
}

func (m *mockStore) GetSubmission(_ context.Context, id uuid.UUID) (*store.Submission, error) {
	for _, s := range m.submissions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (m *mockStore) ListSubmissionsForAudition(_ context.Context, auditionID uuid.UUID) ([]*store.Submission, error) {
	var out []*store.Submission
	for _, s := range m.submissions {
		if s.AuditionID == auditionID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockStore) ListSubmissionsForUser(_ context.Context, userID uuid.UUID) ([]*store.Submission, error) {
	var out []*store.Submission
	for _, s := range m.submissions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockStore) SetSubmissionScore(_ context.Context, id uuid.UUID, score float64, feedback []string, breakdown scoring.Breakdown) error {
	for _, s := range m.submissions {
		if s.ID == id {
			if s.AIScore != nil {
				return store.ErrAlreadyScored
			}
			s.AIScore = &score
			s.Feedback = feedback
			s.Breakdown = &breakdown
			return nil
		}
	}
	return nil
}

func (m *mockStore) CreateNotification(_ context.Context, n *store.Notification) error {
	n.ID = uuid.New()
	n.CreatedAt = time.Now()
	m.notifications = append(m.notifications, n)
	return nil
}

func (m *mockStore) CreateNotifications(_ context.Context, ns []*store.Notification) error {
	for _, n := range ns {
		m.CreateNotification(context.Background(), n)
	}
	return nil
}

func (m *mockStore) ListNotificationsForUser(_ context.Context, userID uuid.UUID, limit int) ([]*store.Notification, error) {
	var out []*store.Notification
	for _, n := range m.notifications {
		if n.UserID == userID && len(out) < limit {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockStore) ListUserIDs(_ context.Context) ([]uuid.UUID, error) {
	return m.users, nil
}

func (m *mockStore) GetStats(_ context.Context) (*store.Stats, error) {
	return &store.Stats{TotalAuditions: len(m.auditions), TotalSubmissions: len(m.submissions)}, nil
}

func (m *mockStore) Close() error { return nil }

type mockGeocoder struct {
	point *geocode.Point
	err   error
}

func (m *mockGeocoder) Forward(_ context.Context, _ string) (*geocode.Point, error) {
	return m.point, m.err
}

func (m *mockGeocoder) Reverse(_ context.Context, _, _ float64) (*geocode.Point, error) {
	return m.point, m.err
}

var testFallback = geocode.Point{
	Coordinates: store.Coordinates{Latitude: 40.7128, Longitude: -74.0060},
	Name:        "New York, NY",
}

func setupTestRouter(geocoder geocode.Client) (http.Handler, *mockStore) {
	ms := newMockStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := scoring.NewEngine(logger)
	ranker := geo.NewRanker(geo.DefaultRadiusKm)
	svc := recommend.NewService(ms, ranker, nil, logger)
	notifier := notify.NewNotifier(ms, nil, logger)

	router := NewRouter(RouterDeps{
		Store:          ms,
		Engine:         engine,
		Recommend:      svc,
		Geocoder:       geocoder,
		Notifier:       notifier,
		DefaultWeights: scoring.DefaultWeights(),
		Fallback:       testFallback,
		AdminToken:     "test-token",
		Logger:         logger,
	})
	return router, ms
}

func organizerRequest(method, target string, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("X-User-ID", uuid.NewString())
	req.Header.Set("X-User-Role", "organizer")
	req.Header.Set("Content-Type", "application/json")
	return req
}

func talentRequest(method, target string, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("X-User-ID", uuid.NewString())
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateAudition(t *testing.T) {
	geocoder := &mockGeocoder{point: &geocode.Point{
		Coordinates: store.Coordinates{Latitude: 34.0522, Longitude: -118.2437},
		Name:        "Los Angeles, CA",
	}}
	router, _ := setupTestRouter(geocoder)

	body := `{"title":"Summer Musical","description":"Jazz dancers wanted","date":"2026-10-01","location":"Los Angeles"}`
	req := organizerRequest("POST", "/api/v1/auditions", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var audition store.Audition
	json.NewDecoder(w.Body).Decode(&audition)
	if audition.Title != "Summer Musical" {
		t.Errorf("expected 'Summer Musical', got %q", audition.Title)
	}
	if audition.CriteriaWeights != scoring.DefaultWeights() {
		t.Errorf("expected default weights, got %+v", audition.CriteriaWeights)
	}
	if audition.Location.Coordinates == nil {
		t.Fatal("expected geocoded coordinates")
	}
	if audition.Location.Coordinates.Latitude != 34.0522 {
		t.Errorf("expected latitude 34.0522, got %v", audition.Location.Coordinates.Latitude)
	}
}

func TestCreateAuditionTalentForbidden(t *testing.T) {
	router, _ := setupTestRouter(nil)

	body := `{"title":"Open Call","location":"Chicago"}`
	req := talentRequest("POST", "/api/v1/auditions", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestCreateAuditionInvalidWeights(t *testing.T) {
	router, _ := setupTestRouter(nil)

	body := `{"title":"Open Call","description":"All talent welcome","date":"2026-11-01","location":"Chicago","criteriaWeights":{"relevance":0.9,"sentiment":0.9,"skills":0.1,"video":0.1}}`
	req := organizerRequest("POST", "/api/v1/auditions", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateAuditionRequiredFields(t *testing.T) {
	router, _ := setupTestRouter(nil)

	bodies := map[string]string{
		"missing description": `{"title":"Open Call","date":"2026-11-01","location":"Chicago"}`,
		"missing date":        `{"title":"Open Call","description":"All talent welcome","location":"Chicago"}`,
		"missing title":       `{"description":"All talent welcome","date":"2026-11-01","location":"Chicago"}`,
		"missing location":    `{"title":"Open Call","description":"All talent welcome","date":"2026-11-01"}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			req := organizerRequest("POST", "/api/v1/auditions", body)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateAuditionGeocodeFailureLeavesCoordinatesAbsent(t *testing.T) {
	geocoder := &mockGeocoder{err: geocode.ErrNotFound}
	router, _ := setupTestRouter(geocoder)

	body := `{"title":"Open Call","description":"All talent welcome","date":"2026-11-01","location":"Nowhereville"}`
	req := organizerRequest("POST", "/api/v1/auditions", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var audition store.Audition
	json.NewDecoder(w.Body).Decode(&audition)
	if audition.Location.Coordinates != nil {
		t.Fatalf("expected absent coordinates, got %+v", *audition.Location.Coordinates)
	}
	if audition.Location.Name != "Nowhereville" {
		t.Errorf("expected location name kept, got %q", audition.Location.Name)
	}

	// An audition without coordinates never ranks in the nearby view.
	req = talentRequest("GET", "/api/v1/auditions/nearby?lat=40.7128&lon=-74.0060", "")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var ranked []geo.Ranked
	json.NewDecoder(w.Body).Decode(&ranked)
	if len(ranked) != 0 {
		t.Errorf("expected empty nearby view, got %d auditions", len(ranked))
	}
}

func TestCreateAuditionFansOutNotifications(t *testing.T) {
	router, ms := setupTestRouter(nil)
	ms.users = []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	body := `{"title":"Open Call","description":"All talent welcome","date":"2026-11-01","location":"Chicago"}`
	req := organizerRequest("POST", "/api/v1/auditions", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(ms.notifications) != 3 {
		t.Errorf("expected 3 notifications, got %d", len(ms.notifications))
	}
}

func TestListAuditionsIsPublic(t *testing.T) {
	router, _ := setupTestRouter(nil)

	req := httptest.NewRequest("GET", "/api/v1/auditions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 without identity headers, got %d", w.Code)
	}
}

func TestSubmitScoresSubmission(t *testing.T) {
	router, ms := setupTestRouter(nil)

	audition := &store.Audition{
		Title:           "Summer Musical",
		Description:     "Seeking a trained jazz dancer for our summer musical production",
		CriteriaWeights: scoring.DefaultWeights(),
	}
	ms.CreateAudition(context.Background(), audition)

	body := `{"text":"I am a passionate trained jazz dancer with strong musical theatre experience","videoUrl":"https://example.com/reel.mp4"}`
	req := talentRequest("POST", "/api/v1/auditions/"+audition.ID.String()+"/submit", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var sub store.Submission
	json.NewDecoder(w.Body).Decode(&sub)
	if sub.AIScore == nil {
		t.Fatal("expected submission to be scored")
	}
	if *sub.AIScore < 0 || *sub.AIScore > 100 {
		t.Errorf("score out of range: %v", *sub.AIScore)
	}
	if sub.Breakdown == nil {
		t.Fatal("expected breakdown")
	}
	if got := sub.Breakdown.Total(); got != *sub.AIScore {
		t.Errorf("breakdown total %v != score %v", got, *sub.AIScore)
	}
	if audition.SubmissionCount != 1 {
		t.Errorf("expected submission count 1, got %d", audition.SubmissionCount)
	}
}

func TestSubmitMissingText(t *testing.T) {
	router, ms := setupTestRouter(nil)

	audition := &store.Audition{Title: "Open Call", CriteriaWeights: scoring.DefaultWeights()}
	ms.CreateAudition(context.Background(), audition)

	req := talentRequest("POST", "/api/v1/auditions/"+audition.ID.String()+"/submit", `{"videoUrl":"https://example.com/reel.mp4"}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSubmitUnknownAudition(t *testing.T) {
	router, _ := setupTestRouter(nil)

	req := talentRequest("POST", "/api/v1/auditions/"+uuid.NewString()+"/submit", `{"text":"hello"}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestLikeToggle(t *testing.T) {
	router, ms := setupTestRouter(nil)

	audition := &store.Audition{Title: "Open Call", CriteriaWeights: scoring.DefaultWeights()}
	ms.CreateAudition(context.Background(), audition)

	userID := uuid.NewString()
	like := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/v1/auditions/"+audition.ID.String()+"/like", nil)
		req.Header.Set("X-User-ID", userID)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	if w := like(); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(audition.Likes) != 1 {
		t.Fatalf("expected 1 like, got %d", len(audition.Likes))
	}

	if w := like(); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(audition.Likes) != 0 {
		t.Errorf("expected like removed on second toggle, got %d", len(audition.Likes))
	}
}

func TestComment(t *testing.T) {
	router, ms := setupTestRouter(nil)

	audition := &store.Audition{Title: "Open Call", CriteriaWeights: scoring.DefaultWeights()}
	ms.CreateAudition(context.Background(), audition)

	req := talentRequest("POST", "/api/v1/auditions/"+audition.ID.String()+"/comment", `{"text":"Break a leg everyone"}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(audition.Comments) != 1 || audition.Comments[0].Text != "Break a leg everyone" {
		t.Errorf("comment not recorded: %+v", audition.Comments)
	}
}

func TestNearbyFiltersAndSorts(t *testing.T) {
	router, ms := setupTestRouter(nil)

	near := &store.Audition{
		Title:           "Near",
		Location:        store.Location{Name: "Near", Coordinates: &store.Coordinates{Latitude: 40.8, Longitude: -74.0060}},
		CriteriaWeights: scoring.DefaultWeights(),
	}
	far := &store.Audition{
		Title:           "Far",
		Location:        store.Location{Name: "Far", Coordinates: &store.Coordinates{Latitude: 34.0522, Longitude: -118.2437}},
		CriteriaWeights: scoring.DefaultWeights(),
	}
	ms.CreateAudition(context.Background(), far)
	ms.CreateAudition(context.Background(), near)

	req := talentRequest("GET", "/api/v1/auditions/nearby?lat=40.7128&lon=-74.0060", "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var ranked []geo.Ranked
	json.NewDecoder(w.Body).Decode(&ranked)
	if len(ranked) != 1 {
		t.Fatalf("expected 1 nearby audition, got %d", len(ranked))
	}
	if ranked[0].Title != "Near" {
		t.Errorf("expected 'Near', got %q", ranked[0].Title)
	}
	if ranked[0].DistanceKm <= 0 || ranked[0].DistanceKm > geo.DefaultRadiusKm {
		t.Errorf("distance out of range: %v", ranked[0].DistanceKm)
	}
}

func TestNearbyRejectsHalfCoordinatePair(t *testing.T) {
	router, _ := setupTestRouter(nil)

	req := talentRequest("GET", "/api/v1/auditions/nearby?lat=40.7128", "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRecommendationsForbiddenForOrganizer(t *testing.T) {
	router, _ := setupTestRouter(nil)

	req := organizerRequest("GET", "/api/v1/auditions/recommendations", "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestRecommendationsRejectUnknownRole(t *testing.T) {
	router, _ := setupTestRouter(nil)

	req := httptest.NewRequest("GET", "/api/v1/auditions/recommendations", nil)
	req.Header.Set("X-User-ID", uuid.NewString())
	req.Header.Set("X-User-Role", "admin")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestRecommendationsForTalent(t *testing.T) {
	router, ms := setupTestRouter(nil)

	audition := &store.Audition{Title: "Open Call", CriteriaWeights: scoring.DefaultWeights()}
	ms.CreateAudition(context.Background(), audition)

	req := talentRequest("GET", "/api/v1/auditions/recommendations", "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var recommended []*store.Audition
	json.NewDecoder(w.Body).Decode(&recommended)
	if len(recommended) != 1 {
		t.Errorf("expected 1 recommendation, got %d", len(recommended))
	}
}

func TestViewsOmitsRecommendedForOrganizer(t *testing.T) {
	router, ms := setupTestRouter(nil)

	audition := &store.Audition{Title: "Open Call", CriteriaWeights: scoring.DefaultWeights()}
	ms.CreateAudition(context.Background(), audition)

	req := organizerRequest("GET", "/api/v1/views", "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var raw map[string]json.RawMessage
	json.NewDecoder(w.Body).Decode(&raw)
	if _, ok := raw["recommended"]; ok {
		t.Error("organizer views should not include recommended")
	}
	if _, ok := raw["all"]; !ok {
		t.Error("views should include all")
	}
}

func TestExplainScoredSubmission(t *testing.T) {
	router, ms := setupTestRouter(nil)

	audition := &store.Audition{
		Title:           "Summer Musical",
		Description:     "Seeking a trained jazz dancer",
		CriteriaWeights: scoring.DefaultWeights(),
	}
	ms.CreateAudition(context.Background(), audition)

	body := `{"text":"trained jazz dancer with musical theatre experience"}`
	req := talentRequest("POST", "/api/v1/auditions/"+audition.ID.String()+"/submit", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("submit failed: %d %s", w.Code, w.Body.String())
	}
	var sub store.Submission
	json.NewDecoder(w.Body).Decode(&sub)

	req = talentRequest("GET", "/api/v1/submissions/"+sub.ID.String()+"/explain", "")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var explain explainResponse
	json.NewDecoder(w.Body).Decode(&explain)
	if !explain.Scored {
		t.Error("expected scored explanation")
	}
	if explain.Breakdown == nil {
		t.Error("expected breakdown in explanation")
	}
}

func TestNotificationsListOwnOnly(t *testing.T) {
	router, ms := setupTestRouter(nil)

	me := uuid.New()
	other := uuid.New()
	ms.CreateNotification(context.Background(), &store.Notification{UserID: me, Message: "hello", Type: store.NotificationGeneral})
	ms.CreateNotification(context.Background(), &store.Notification{UserID: other, Message: "not yours", Type: store.NotificationGeneral})

	req := httptest.NewRequest("GET", "/api/v1/notifications", nil)
	req.Header.Set("X-User-ID", me.String())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var notifications []*store.Notification
	json.NewDecoder(w.Body).Decode(&notifications)
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications))
	}
	if notifications[0].Message != "hello" {
		t.Errorf("expected own notification, got %q", notifications[0].Message)
	}
}

func TestLocateReverseGeocodes(t *testing.T) {
	geocoder := &mockGeocoder{point: &geocode.Point{
		Coordinates: store.Coordinates{Latitude: 40.7128, Longitude: -74.0060},
		Name:        "New York, New York",
	}}
	router, _ := setupTestRouter(geocoder)

	req := talentRequest("GET", "/api/v1/locate?lat=40.7128&lon=-74.0060", "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var point geocode.Point
	json.NewDecoder(w.Body).Decode(&point)
	if point.Name != "New York, New York" {
		t.Errorf("expected resolved name, got %q", point.Name)
	}
}

func TestLocateUnknownLocation(t *testing.T) {
	geocoder := &mockGeocoder{err: geocode.ErrNotFound}
	router, _ := setupTestRouter(geocoder)

	req := talentRequest("GET", "/api/v1/locate?location=Nowhereville", "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestStatsRequiresAdminToken(t *testing.T) {
	router, _ := setupTestRouter(nil)

	req := httptest.NewRequest("GET", "/api/v1/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestStatsWithToken(t *testing.T) {
	router, _ := setupTestRouter(nil)

	req := httptest.NewRequest("GET", "/api/v1/stats", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := NewMetricsRouter()
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
