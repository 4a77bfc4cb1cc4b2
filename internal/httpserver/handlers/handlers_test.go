package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmedia/showreel/internal/admin"
	"github.com/vmedia/showreel/internal/domain"
	"github.com/vmedia/showreel/internal/gallery"
	"github.com/vmedia/showreel/internal/httpserver/deps"
	"github.com/vmedia/showreel/internal/logger"
	"github.com/vmedia/showreel/internal/metadata"
	"github.com/vmedia/showreel/internal/persist"
	"github.com/vmedia/showreel/internal/seed"
	"github.com/vmedia/showreel/internal/view"
)

func testEntry(id, title string) domain.Entry {
	return domain.Entry{
		ID:           id,
		Kind:         domain.KindVideo,
		SourceURL:    "https://www.youtube.com/watch?v=" + strings.Repeat("a", 11),
		ThumbnailURL: "https://img.example.com/" + id + ".jpg",
		Title:        title,
	}
}

func newTestDeps(t *testing.T) deps.Deps {
	t.Helper()

	items := gallery.NewItemStore()
	items.ReplaceAll([]domain.Entry{testEntry("e1", "First"), testEntry("e2", "Second")})
	profile := gallery.NewProfileStore(domain.Profile{
		Bio:      "studio bio",
		Email:    "hello@example.com",
		SEOTitle: "Showreel Studio",
	})
	adapter := persist.NewLocalAdapter(t.TempDir())
	syncer := persist.NewSyncer(adapter, items, profile, seed.Default(), logger.NewNop())

	return deps.Deps{
		Logger:    logger.NewNop(),
		StartTime: time.Now(),
		TimeNow:   time.Now,
		Items:     items,
		Profile:   profile,
		Syncer:    syncer,
		Sessions:  admin.NewManager("admin", "s3cret", time.Hour),
		Views:     view.NewController("/adminvmedia"),
		Lookup:    metadata.NewClient(),
		AdminPath: "/adminvmedia",
	}
}

func doJSON(t *testing.T, h http.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestListEntriesIncludesActive(t *testing.T) {
	d := newTestDeps(t)

	rec := doJSON(t, ListEntries(d), http.MethodGet, "/api/entries", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Entries  []domain.Entry `json:"portfolioItems"`
		ActiveID string         `json:"activeId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Entries, 2)
	assert.Equal(t, "e1", resp.ActiveID)
}

func TestUpsertEntryAssignsID(t *testing.T) {
	d := newTestDeps(t)

	entry := testEntry("", "Brand New")
	rec := doJSON(t, UpsertEntry(d), http.MethodPost, "/api/entries", entry)
	require.Equal(t, http.StatusOK, rec.Code)

	var saved domain.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, 3, d.Items.Len())
}

func TestUpsertEntryRejectsInvalid(t *testing.T) {
	d := newTestDeps(t)

	entry := testEntry("", "")
	rec := doJSON(t, UpsertEntry(d), http.MethodPost, "/api/entries", entry)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 2, d.Items.Len())
}

func TestDeleteEntry(t *testing.T) {
	d := newTestDeps(t)

	r := chi.NewRouter()
	r.Delete("/api/entries/{id}", DeleteEntry(d))

	req := httptest.NewRequest(http.MethodDelete, "/api/entries/e1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, d.Items.Len())

	req = httptest.NewRequest(http.MethodDelete, "/api/entries/nope", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetActiveUnknownID(t *testing.T) {
	d := newTestDeps(t)

	rec := doJSON(t, SetActive(d), http.MethodPut, "/api/active", activeRequest{ID: "ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, SetActive(d), http.MethodPut, "/api/active", activeRequest{ID: "e2"})
	require.Equal(t, http.StatusOK, rec.Code)
	active, ok := d.Items.Active()
	require.True(t, ok)
	assert.Equal(t, "e2", active.ID)
}

func TestNextActiveWrapsAround(t *testing.T) {
	d := newTestDeps(t)

	doJSON(t, NextActive(d), http.MethodPost, "/api/active/next", nil)
	doJSON(t, NextActive(d), http.MethodPost, "/api/active/next", nil)
	active, ok := d.Items.Active()
	require.True(t, ok)
	assert.Equal(t, "e1", active.ID)
}

func TestUpdateProfileReplacesWholesale(t *testing.T) {
	d := newTestDeps(t)

	rec := doJSON(t, UpdateProfile(d), http.MethodPut, "/api/profile",
		domain.Profile{Email: "new@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)

	got := d.Profile.Get()
	assert.Equal(t, "new@example.com", got.Email)
	// No merge on save: omitted fields are gone.
	assert.Empty(t, got.Bio)
}

func TestLoginIssuesTokenAndCookie(t *testing.T) {
	d := newTestDeps(t)

	rec := doJSON(t, Login(d), http.MethodPost, "/api/login",
		loginRequest{Username: "admin", Password: "s3cret"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, d.Sessions.Valid(resp.Token))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "showreel_session", cookies[0].Name)
	assert.Equal(t, resp.Token, cookies[0].Value)
}

func TestLoginRejectsBadPair(t *testing.T) {
	d := newTestDeps(t)

	rec := doJSON(t, Login(d), http.MethodPost, "/api/login",
		loginRequest{Username: "admin", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid username or password")
}

func TestNavigateReportsClearedMarker(t *testing.T) {
	d := newTestDeps(t)
	d.Views.Observe("/adminvmedia")

	rec := doJSON(t, Navigate(d), http.MethodPost, "/api/view",
		navigateRequest{View: view.Home})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp viewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, view.Home, resp.View)
	assert.True(t, resp.ClearedMarker)
}

func TestNavigateRejectsUnknownView(t *testing.T) {
	d := newTestDeps(t)

	rec := doJSON(t, Navigate(d), http.MethodPost, "/api/view",
		map[string]string{"view": "SETTINGS"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, view.Home, d.Views.Current())
}

func TestResolveEmbedOverridesDefaults(t *testing.T) {
	d := newTestDeps(t)

	rec := doJSON(t, ResolveEmbed(d), http.MethodGet,
		"/api/embed?url=https%3A%2F%2Fwww.youtube.com%2Fwatch%3Fv%3DdQw4w9WgXcQ&autoplay=0&mute=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp embedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.PlatformYouTube, resp.Platform)
	assert.Contains(t, resp.PlaybackURL, "/embed/dQw4w9WgXcQ?")
	assert.Contains(t, resp.PlaybackURL, "autoplay=0")
	assert.Contains(t, resp.PlaybackURL, "mute=1")
}

func TestResolveEmbedMissingURL(t *testing.T) {
	d := newTestDeps(t)

	rec := doJSON(t, ResolveEmbed(d), http.MethodGet, "/api/embed", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuggestUnconfigured(t *testing.T) {
	d := newTestDeps(t) // GenAI is nil

	rec := doJSON(t, Suggest(d), http.MethodPost, "/api/suggest",
		suggestRequest{URL: "https://youtu.be/dQw4w9WgXcQ"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestExportImportRoundTrip(t *testing.T) {
	d := newTestDeps(t)

	rec := doJSON(t, ExportDataset(d), http.MethodGet, "/api/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "showreel-backup.json")
	exported := rec.Body.Bytes()

	d.Items.ReplaceAll(nil)
	req := httptest.NewRequest(http.MethodPost, "/api/import", bytes.NewReader(exported))
	rec2 := httptest.NewRecorder()
	ImportDataset(d)(rec2, req)
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.Equal(t, 2, d.Items.Len())
}

func TestImportRejectsGarbage(t *testing.T) {
	d := newTestDeps(t)

	req := httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	ImportDataset(d)(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 2, d.Items.Len())
}

func TestTriggerBackupUnconfigured(t *testing.T) {
	d := newTestDeps(t) // BackupTrigger is nil

	rec := doJSON(t, TriggerBackup(d), http.MethodPost, "/api/backup", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTriggerBackupQueuesOnce(t *testing.T) {
	d := newTestDeps(t)
	d.BackupTrigger = make(chan struct{}, 1)

	rec := doJSON(t, TriggerBackup(d), http.MethodPost, "/api/backup", nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	// Second trigger while one is pending does not block.
	rec = doJSON(t, TriggerBackup(d), http.MethodPost, "/api/backup", nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "already pending")
}

func TestPageRendersSEOHead(t *testing.T) {
	d := newTestDeps(t)

	rec := doJSON(t, Page(d), http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Showreel Studio</title>")
	assert.Contains(t, body, "/embed/") // muted preview for the active video
	assert.Contains(t, body, "mute=1")
	assert.Contains(t, body, `data-view="HOME"`)
}

func TestPageAdminMarkerForcesAdminView(t *testing.T) {
	d := newTestDeps(t)

	rec := doJSON(t, Page(d), http.MethodGet, "/adminvmedia", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-view="ADMIN"`)
	assert.Equal(t, view.Admin, d.Views.Current())
}

func TestPageUnknownPath404(t *testing.T) {
	d := newTestDeps(t)

	rec := doJSON(t, Page(d), http.MethodGet, "/no-such-page", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
