package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"camtourvisor/internal/model"
)

type fakeDestinations struct {
	mu        sync.Mutex
	bySlug    map[string]model.Destination
	refreshed []string
	lists     int
}

func newFakeDestinations(list ...model.Destination) *fakeDestinations {
	f := &fakeDestinations{bySlug: map[string]model.Destination{}}
	for _, d := range list {
		f.bySlug[d.Slug] = d
	}
	return f
}

func (f *fakeDestinations) List(_ context.Context, category, search string) ([]model.Destination, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	var out []model.Destination
	for _, d := range f.bySlug {
		if category != "" && category != "all" && d.Category != category {
			continue
		}
		q := strings.ToLower(search)
		if q != "" && !strings.Contains(strings.ToLower(d.Name+" "+d.Location+" "+d.Description), q) {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeDestinations) GetBySlug(_ context.Context, slug string) (*model.Destination, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.bySlug[slug]
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (f *fakeDestinations) Upsert(_ context.Context, d *model.Destination) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *d
	stored.Highlights, stored.CulturalEtiquette = []string{}, []string{}
	for slug, existing := range f.bySlug {
		if slug == d.Slug && existing.ID != d.ID {
			return ErrConflict
		}
		if existing.ID == d.ID {
			stored.Highlights, stored.CulturalEtiquette = existing.Highlights, existing.CulturalEtiquette
			delete(f.bySlug, slug)
		}
	}
	// как в репозитории: списки заменяются только непустыми
	if len(d.Highlights) > 0 {
		stored.Highlights = d.Highlights
	}
	if len(d.CulturalEtiquette) > 0 {
		stored.CulturalEtiquette = d.CulturalEtiquette
	}
	f.bySlug[d.Slug] = stored
	return nil
}

func (f *fakeDestinations) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for slug, d := range f.bySlug {
		if d.ID == id {
			delete(f.bySlug, slug)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeDestinations) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bySlug), nil
}

func (f *fakeDestinations) RefreshRating(_ context.Context, slug string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshed = append(f.refreshed, slug)
	return nil
}

type fakeCache struct {
	lists       map[string][]model.Destination
	items       map[string]*model.Destination
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{lists: map[string][]model.Destination{}, items: map[string]*model.Destination{}}
}

func (c *fakeCache) GetList(_ context.Context, category, search string) ([]model.Destination, bool) {
	l, ok := c.lists[category+"|"+search]
	return l, ok
}

func (c *fakeCache) SetList(_ context.Context, category, search string, list []model.Destination) {
	c.lists[category+"|"+search] = list
}

func (c *fakeCache) GetDestination(_ context.Context, slug string) (*model.Destination, bool) {
	d, ok := c.items[slug]
	return d, ok
}

func (c *fakeCache) SetDestination(_ context.Context, d *model.Destination) { c.items[d.Slug] = d }

func (c *fakeCache) Invalidate(context.Context) error {
	c.invalidated++
	c.lists = map[string][]model.Destination{}
	c.items = map[string]*model.Destination{}
	return nil
}

type fakeBookings struct {
	items map[string]model.Booking
}

func newFakeBookings() *fakeBookings { return &fakeBookings{items: map[string]model.Booking{}} }

func (f *fakeBookings) Create(_ context.Context, b *model.Booking) error {
	f.items[b.ID] = *b
	return nil
}

func (f *fakeBookings) GetByID(_ context.Context, id string) (*model.Booking, error) {
	b, ok := f.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (f *fakeBookings) ListByUser(_ context.Context, userID string) ([]model.Booking, error) {
	var out []model.Booking
	for _, b := range f.items {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) ListAll(context.Context) ([]model.Booking, error) {
	var out []model.Booking
	for _, b := range f.items {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookings) UpdateStatus(_ context.Context, id, status string) error {
	b, ok := f.items[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	f.items[id] = b
	return nil
}

func (f *fakeBookings) CancelForUser(_ context.Context, id, userID string) error {
	b, ok := f.items[id]
	if !ok || b.UserID != userID {
		return ErrNotFound
	}
	b.Status = model.BookingCancelled
	f.items[id] = b
	return nil
}

type fakeReviews struct {
	items map[string]model.Review
}

func newFakeReviews() *fakeReviews { return &fakeReviews{items: map[string]model.Review{}} }

func (f *fakeReviews) Create(_ context.Context, r *model.Review) error {
	f.items[r.ID] = *r
	return nil
}

func (f *fakeReviews) GetByID(_ context.Context, id string) (*model.Review, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (f *fakeReviews) filter(keep func(model.Review) bool) []model.Review {
	var out []model.Review
	for _, r := range f.items {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeReviews) ListByDestination(_ context.Context, slug string) ([]model.Review, error) {
	return f.filter(func(r model.Review) bool { return r.DestinationID == slug }), nil
}

func (f *fakeReviews) ListByUser(_ context.Context, userID string) ([]model.Review, error) {
	return f.filter(func(r model.Review) bool { return r.UserID == userID }), nil
}

func (f *fakeReviews) ListAll(context.Context) ([]model.Review, error) {
	return f.filter(func(model.Review) bool { return true }), nil
}

func (f *fakeReviews) Update(_ context.Context, r *model.Review) error {
	old, ok := f.items[r.ID]
	if !ok || old.UserID != r.UserID {
		return ErrNotFound
	}
	f.items[r.ID] = *r
	return nil
}

func (f *fakeReviews) Delete(_ context.Context, id, userID string) (string, error) {
	r, ok := f.items[id]
	if !ok || r.UserID != userID {
		return "", ErrNotFound
	}
	delete(f.items, id)
	return r.DestinationID, nil
}

func (f *fakeReviews) DeleteAny(_ context.Context, id string) (string, error) {
	r, ok := f.items[id]
	if !ok {
		return "", ErrNotFound
	}
	delete(f.items, id)
	return r.DestinationID, nil
}

func (f *fakeReviews) IncrementHelpful(_ context.Context, id string) error {
	r, ok := f.items[id]
	if !ok {
		return ErrNotFound
	}
	r.HelpfulCount++
	f.items[id] = r
	return nil
}

// fakeSaved хранит избранное в порядке сохранения; ListByUser отдает новые первыми.
type fakeSaved struct {
	items []model.SavedDestination
}

func (f *fakeSaved) Save(_ context.Context, s *model.SavedDestination) error {
	for _, it := range f.items {
		if it.UserID == s.UserID && it.DestinationID == s.DestinationID {
			return ErrConflict
		}
	}
	f.items = append(f.items, *s)
	return nil
}

func (f *fakeSaved) Unsave(_ context.Context, userID, slug string) error {
	for i, it := range f.items {
		if it.UserID == userID && it.DestinationID == slug {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeSaved) ListByUser(_ context.Context, userID string) ([]model.SavedDestination, error) {
	var out []model.SavedDestination
	for i := len(f.items) - 1; i >= 0; i-- {
		if f.items[i].UserID == userID {
			out = append(out, f.items[i])
		}
	}
	return out, nil
}

func (f *fakeSaved) Exists(_ context.Context, userID, slug string) (bool, error) {
	for _, it := range f.items {
		if it.UserID == userID && it.DestinationID == slug {
			return true, nil
		}
	}
	return false, nil
}

type fakeProfiles struct {
	items map[string]model.Profile
}

func newFakeProfiles(list ...model.Profile) *fakeProfiles {
	f := &fakeProfiles{items: map[string]model.Profile{}}
	for _, p := range list {
		f.items[p.ID] = p
	}
	return f
}

func (f *fakeProfiles) Create(_ context.Context, p *model.Profile) error {
	for _, existing := range f.items {
		if existing.Email == p.Email {
			return ErrConflict
		}
	}
	f.items[p.ID] = *p
	return nil
}

func (f *fakeProfiles) GetByID(_ context.Context, id string) (*model.Profile, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (f *fakeProfiles) GetByEmail(_ context.Context, email string) (*model.Profile, error) {
	for _, p := range f.items {
		if strings.EqualFold(p.Email, email) {
			p := p
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeProfiles) Update(_ context.Context, p *model.Profile) error {
	if _, ok := f.items[p.ID]; !ok {
		return ErrNotFound
	}
	f.items[p.ID] = *p
	return nil
}

func (f *fakeProfiles) List(context.Context) ([]model.Profile, error) {
	var out []model.Profile
	for _, p := range f.items {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfiles) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeMessages struct {
	chat    []model.ChatMessage
	support []model.SupportMessage
	failErr error
}

func (f *fakeMessages) SaveChat(_ context.Context, msgs ...model.ChatMessage) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.chat = append(f.chat, msgs...)
	return nil
}

func (f *fakeMessages) ListChat(_ context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	var out []model.ChatMessage
	for _, m := range f.chat {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (f *fakeMessages) SaveSupport(_ context.Context, msg *model.SupportMessage) error {
	f.support = append(f.support, *msg)
	return nil
}

func (f *fakeMessages) ListSupport(_ context.Context, chatID int64) ([]model.SupportMessage, error) {
	var out []model.SupportMessage
	for _, m := range f.support {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out, nil
}

type sentText struct {
	chatID int64
	text   string
}

type fakeSender struct {
	sent []sentText
	fail map[int64]bool
}

func (f *fakeSender) SendText(_ context.Context, chatID int64, text string) error {
	if f.fail[chatID] {
		return errors.New("telegram unavailable")
	}
	f.sent = append(f.sent, sentText{chatID: chatID, text: text})
	return nil
}

type fakeNotifier struct {
	calls []model.Booking
	err   error
}

func (f *fakeNotifier) BookingStatusChanged(_ context.Context, _ *model.Profile, b *model.Booking) error {
	f.calls = append(f.calls, *b)
	return f.err
}

func ptr[T any](v T) *T { return &v }

func kribi() model.Destination {
	return model.Destination{
		ID: "d-kribi", Slug: "kribi-beach", Name: "Kribi Beach", Location: "South Region, Cameroon",
		Description: "Golden sands", Category: "Beaches", ImageURL: "https://img/kribi.jpg",
		Latitude: ptr(2.9394), Longitude: ptr(9.9100),
	}
}

func limbe() model.Destination {
	return model.Destination{
		ID: "d-limbe", Slug: "limbe-botanical-garden", Name: "Limbe Botanical Garden", Location: "Limbe, Cameroon",
		Description: "Gardens by the sea", Category: "Nature", ImageURL: "https://img/limbe.jpg",
		Latitude: ptr(4.0135), Longitude: ptr(9.2064),
	}
}

func waza() model.Destination {
	return model.Destination{
		ID: "d-waza", Slug: "waza-national-park", Name: "Waza National Park", Location: "Far North Region, Cameroon",
		Description: "Savanna wildlife", Category: "Wildlife", ImageURL: "https://img/waza.jpg",
		Latitude: ptr(11.3333), Longitude: ptr(14.6667),
	}
}

func douala() model.Destination {
	return model.Destination{
		ID: "d-douala", Slug: "douala", Name: "Douala", Location: "Littoral Region, Cameroon",
		Description: "Economic capital", Category: "Cities", ImageURL: "https://img/douala.jpg",
		Latitude: ptr(4.0511), Longitude: ptr(9.7679),
	}
}
