package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"camtourvisor/internal/advisor"
	"camtourvisor/internal/model"
	"camtourvisor/internal/notify"
	"camtourvisor/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type memDestinations struct{ items []model.Destination }

func (m *memDestinations) List(_ context.Context, category, _ string) ([]model.Destination, error) {
	var out []model.Destination
	for _, d := range m.items {
		if category == "" || category == "all" || d.Category == category {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memDestinations) GetBySlug(_ context.Context, slug string) (*model.Destination, error) {
	for _, d := range m.items {
		if d.Slug == slug {
			d := d
			return &d, nil
		}
	}
	return nil, service.ErrNotFound
}

func (m *memDestinations) Upsert(_ context.Context, d *model.Destination) error {
	m.items = append(m.items, *d)
	return nil
}

func (m *memDestinations) Delete(context.Context, string) error        { return service.ErrNotFound }
func (m *memDestinations) Count(context.Context) (int, error)          { return len(m.items), nil }
func (m *memDestinations) RefreshRating(context.Context, string) error { return nil }

type memProfiles struct{ items map[string]model.Profile }

func (m *memProfiles) Create(_ context.Context, p *model.Profile) error {
	m.items[p.ID] = *p
	return nil
}

func (m *memProfiles) GetByID(_ context.Context, id string) (*model.Profile, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return &p, nil
}

func (m *memProfiles) GetByEmail(_ context.Context, email string) (*model.Profile, error) {
	for _, p := range m.items {
		if p.Email == email {
			p := p
			return &p, nil
		}
	}
	return nil, service.ErrNotFound
}

func (m *memProfiles) Update(_ context.Context, p *model.Profile) error {
	m.items[p.ID] = *p
	return nil
}

func (m *memProfiles) List(context.Context) ([]model.Profile, error) { return nil, nil }

func (m *memProfiles) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

type memChat struct{ msgs []model.ChatMessage }

func (m *memChat) SaveChat(_ context.Context, msgs ...model.ChatMessage) error {
	m.msgs = append(m.msgs, msgs...)
	return nil
}

func (m *memChat) ListChat(_ context.Context, userID string, _ int) ([]model.ChatMessage, error) {
	var out []model.ChatMessage
	for _, msg := range m.msgs {
		if msg.UserID == userID {
			out = append(out, msg)
		}
	}
	return out, nil
}

type memBookings struct {
	items []model.Booking
	err   error
}

func (m *memBookings) Create(_ context.Context, b *model.Booking) error {
	m.items = append(m.items, *b)
	return nil
}
func (m *memBookings) GetByID(context.Context, string) (*model.Booking, error) {
	return nil, service.ErrNotFound
}
func (m *memBookings) ListByUser(context.Context, string) ([]model.Booking, error) {
	return m.items, nil
}
func (m *memBookings) ListAll(context.Context) ([]model.Booking, error)    { return m.items, m.err }
func (m *memBookings) UpdateStatus(context.Context, string, string) error  { return service.ErrNotFound }
func (m *memBookings) CancelForUser(context.Context, string, string) error { return service.ErrNotFound }

type fakeImages struct{ got string }

func (f *fakeImages) PutImage(bucket, prefix, filename string, src io.Reader) (string, error) {
	data, _ := io.ReadAll(src)
	f.got = string(data)
	return "/images/" + bucket + "/" + prefix + ".png", nil
}

type testServer struct {
	router   *gin.Engine
	chat     *memChat
	images   *fakeImages
	bookings *memBookings
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	lat, lng := 2.9394, 9.91
	dests := &memDestinations{items: []model.Destination{
		{ID: "d1", Slug: "kribi-beach", Name: "Kribi Beach", Category: "Beaches", Latitude: &lat, Longitude: &lng},
		{ID: "d2", Slug: "bafut-palace", Name: "Bafut Palace", Category: "Cultural"},
	}}
	profiles := &memProfiles{items: map[string]model.Profile{}}
	chat := &memChat{}
	images := &fakeImages{}
	bookings := &memBookings{}
	tokens := service.NewTokens("test-secret", time.Hour)
	destService := service.NewDestinationService(dests, nil, log)

	h := NewHandler(Deps{
		Auth:              service.NewAuthService(profiles, tokens),
		Admin:             service.NewAdminService("kendi", "1234", tokens),
		Destinations:      destService,
		Bookings:          service.NewBookingService(bookings, destService, profiles, notify.Nop{}, log),
		Reviews:           service.NewReviewService(nil, destService, destService, log),
		Saved:             service.NewSavedDestinationService(nil, destService),
		Profiles:          service.NewProfileService(profiles),
		Chat:              service.NewChatService(advisor.Default(), chat, 50),
		Images:            images,
		ImageBucket:       "destination-images",
		ChatRatePerSecond: 0.001,
		ChatBurst:         3,
	}, log)
	router := gin.New()
	h.Register(router)
	return &testServer{router: router, chat: chat, images: images, bookings: bookings}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func (s *testServer) signIn(t *testing.T) string {
	t.Helper()
	if w := s.do(http.MethodPost, "/api/auth/signup", "", gin.H{"email": "ngono@example.cm", "password": "secret1"}); w.Code != http.StatusCreated {
		t.Fatalf("signup status = %d: %s", w.Code, w.Body)
	}
	w := s.do(http.MethodPost, "/api/auth/signin", "", gin.H{"email": "ngono@example.cm", "password": "secret1"})
	if w.Code != http.StatusOK {
		t.Fatalf("signin status = %d: %s", w.Code, w.Body)
	}
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	return resp.Token
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	if w := s.do(http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}

func TestDestinations(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/destinations?category=Beaches", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var list []map[string]interface{}
	decode(t, w, &list)
	if len(list) != 1 || list[0]["id"] != "kribi-beach" {
		t.Errorf("list = %v", list)
	}

	if w := s.do(http.MethodGet, "/api/destinations/atlantis", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown destination status = %d", w.Code)
	}

	w = s.do(http.MethodGet, "/api/destinations/kribi-beach/coordinates", "", nil)
	var coords model.Coordinates
	decode(t, w, &coords)
	if coords.Lat != 2.9394 || coords.Lng != 9.91 {
		t.Errorf("coordinates = %+v", coords)
	}
	if w := s.do(http.MethodGet, "/api/destinations/bafut-palace/coordinates", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("missing coordinates status = %d", w.Code)
	}
}

func TestChat(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/chat", "", gin.H{"message": "Hey, what should I see?"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	var answer advisor.Answer
	decode(t, w, &answer)
	if answer.Topic != "greeting" {
		t.Errorf("topic = %q", answer.Topic)
	}

	if w := s.do(http.MethodPost, "/api/chat", "", gin.H{"message": ""}); w.Code != http.StatusBadRequest {
		t.Errorf("empty message status = %d", w.Code)
	}
	if w := s.do(http.MethodPost, "/api/chat", "", gin.H{"message": "food"}); w.Code != http.StatusOK {
		t.Errorf("third request status = %d", w.Code)
	}
	if w := s.do(http.MethodPost, "/api/chat", "", gin.H{"message": "food"}); w.Code != http.StatusTooManyRequests {
		t.Errorf("over the limit status = %d, want 429", w.Code)
	}
	if len(s.chat.msgs) != 0 {
		t.Errorf("anonymous chat stored %d messages", len(s.chat.msgs))
	}
}

func TestChatHistoryForSignedInUser(t *testing.T) {
	s := newTestServer(t)
	token := s.signIn(t)

	if w := s.do(http.MethodPost, "/api/chat", token, gin.H{"message": "Tell me about Waza"}); w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	w := s.do(http.MethodGet, "/api/me/chat/history", token, nil)
	var history []model.ChatMessage
	decode(t, w, &history)
	if len(history) != 2 || history[1].Topic != "wildlife" {
		t.Errorf("history = %+v", history)
	}
}

func TestSuggestions(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/api/chat/suggestions", "", nil)
	var resp struct {
		Welcome     string   `json:"welcome"`
		Suggestions []string `json:"suggestions"`
	}
	decode(t, w, &resp)
	if resp.Welcome != advisor.Welcome || len(resp.Suggestions) != len(advisor.Suggestions) {
		t.Errorf("resp = %+v", resp)
	}
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)
	if w := s.do(http.MethodGet, "/api/me/profile", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("no token status = %d", w.Code)
	}
	token := s.signIn(t)
	w := s.do(http.MethodGet, "/api/me/profile", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var p map[string]interface{}
	decode(t, w, &p)
	if p["username"] != "ngono" {
		t.Errorf("profile = %v", p)
	}
	if _, leaked := p["password_hash"]; leaked {
		t.Error("password hash exposed")
	}
	if w := s.do(http.MethodGet, "/api/admin/bookings", token, nil); w.Code != http.StatusForbidden {
		t.Errorf("user on admin API status = %d, want 403", w.Code)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	s := newTestServer(t)
	token := s.signIn(t)
	w := s.do(http.MethodPost, "/api/me/bookings", token, gin.H{
		"destination_id": "kribi-beach", "travel_date": "2000-01-01", "number_of_travelers": 1,
		"contact_info": gin.H{"phone": "1", "email": "a@b.cm"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	if !strings.Contains(w.Body.String(), "travel_date") {
		t.Errorf("body = %s", w.Body)
	}
	if w := s.do(http.MethodPost, "/api/me/bookings", token, gin.H{"travel_date": "2099-01-01"}); w.Code != http.StatusBadRequest {
		t.Errorf("missing destination status = %d", w.Code)
	}
}

func (s *testServer) adminToken(t *testing.T) string {
	t.Helper()
	w := s.do(http.MethodPost, "/api/admin/login", "", gin.H{"username": "kendi", "password": "1234"})
	if w.Code != http.StatusOK {
		t.Fatalf("admin login status = %d: %s", w.Code, w.Body)
	}
	var login struct {
		Token string `json:"token"`
	}
	decode(t, w, &login)
	return login.Token
}

func TestAdminExportBookings(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken(t)
	s.bookings.items = []model.Booking{{ID: "b1", DestinationName: "Kribi Beach", Status: model.BookingPending}}

	w := s.do(http.MethodGet, "/api/admin/bookings/export", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("content type = %q", ct)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment;") || !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Errorf("not an xlsx attachment: %v", w.Header())
	}
}

func TestAdminExportBookingsFailureIsJSON(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken(t)
	s.bookings.err = errors.New("connection refused")

	w := s.do(http.MethodGet, "/api/admin/bookings/export", token, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type = %q, want JSON", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != "" {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}
}

func TestChatLimiterEvictsIdleClients(t *testing.T) {
	l := newIPLimiter(1, 1)
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	l.lastSweep = now

	if !l.allow("10.0.0.1") || !l.allow("10.0.0.2") {
		t.Fatal("first requests must pass")
	}
	if l.allow("10.0.0.1") {
		t.Error("burst of 1 exceeded")
	}

	now = now.Add(limiterIdleTTL + time.Second)
	if !l.allow("10.0.0.3") {
		t.Fatal("new client rejected")
	}
	if len(l.visitors) != 1 {
		t.Errorf("visitors = %d, want 1 after sweep", len(l.visitors))
	}
}

func TestAdminUploadImage(t *testing.T) {
	s := newTestServer(t)
	if w := s.do(http.MethodPost, "/api/admin/login", "", gin.H{"username": "kendi", "password": "wrong"}); w.Code != http.StatusUnauthorized {
		t.Errorf("bad login status = %d", w.Code)
	}
	token := s.adminToken(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("name", "kribi")
	part, _ := mw.CreateFormFile("file", "kribi.png")
	part.Write([]byte("png-bytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/images", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "/images/destination-images/kribi.png") || s.images.got != "png-bytes" {
		t.Errorf("body = %s, stored = %q", rec.Body, s.images.got)
	}
}
