package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palmtrack/entities"
)

type fakeDocRepo struct {
	created []entities.Documentation
}

func (f *fakeDocRepo) Create(d *entities.Documentation) error {
	f.created = append(f.created, *d)
	return nil
}
func (f *fakeDocRepo) Update(*entities.Documentation) error { return nil }
func (f *fakeDocRepo) Delete(string) error                  { return nil }
func (f *fakeDocRepo) FindByID(string) (*entities.Documentation, error) {
	return nil, nil
}
func (f *fakeDocRepo) ListByGarden(string) ([]entities.Documentation, error) {
	return nil, nil
}

type fixedResolver struct{ id string }

func (r fixedResolver) Resolve(string) (string, error) { return r.id, nil }

func newDocContext(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("kebun-a")
	return c, rec
}

func TestCreateNoteRequiresContent(t *testing.T) {
	repo := &fakeDocRepo{}
	ctrl := New(repo, fixedResolver{id: "g1"}, nil, 0)

	c, rec := newDocContext(t, http.MethodPost, `{"kind":"note","title":"Catatan"}`)
	require.NoError(t, ctrl.Create(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, repo.created)
}

func TestCreatePhotoRequiresFileURL(t *testing.T) {
	repo := &fakeDocRepo{}
	ctrl := New(repo, fixedResolver{id: "g1"}, nil, 0)

	c, rec := newDocContext(t, http.MethodPost, `{"kind":"photo","title":"Foto blok 7"}`)
	require.NoError(t, ctrl.Create(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, repo.created)
}

func TestCreateValidNote(t *testing.T) {
	repo := &fakeDocRepo{}
	ctrl := New(repo, fixedResolver{id: "g1"}, nil, 0)

	c, rec := newDocContext(t, http.MethodPost, `{"kind":"note","title":"Catatan","content":"isi"}`)
	require.NoError(t, ctrl.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "g1", repo.created[0].GardenID)
	assert.Equal(t, entities.DocumentationKindNote, repo.created[0].Kind)
}

func TestIngestURLRejectsDisallowedHost(t *testing.T) {
	repo := &fakeDocRepo{}
	ctrl := New(repo, fixedResolver{id: "g1"}, []string{"docs.example.com"}, 0)

	c, rec := newDocContext(t, http.MethodPost, `{"url":"https://evil.example.net/page"}`)
	require.NoError(t, ctrl.IngestURL(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, repo.created)
}

func TestIngestURLStoresExtractedNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><head><title>Panduan Pemupukan</title></head>` +
			`<body><main><h1>Pemupukan</h1><p>Dosis NPK per pohon.</p></main></body></html>`))
	}))
	defer srv.Close()
	host := mustHost(t, srv.URL)

	repo := &fakeDocRepo{}
	ctrl := New(repo, fixedResolver{id: "g1"}, []string{host}, 0)

	c, rec := newDocContext(t, http.MethodPost, `{"url":"`+srv.URL+`/panduan"}`)
	require.NoError(t, ctrl.IngestURL(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.created, 1)
	got := repo.created[0]
	assert.Equal(t, entities.DocumentationKindNote, got.Kind)
	assert.Equal(t, "Panduan Pemupukan", got.Title)
	assert.Contains(t, got.Content, "Dosis NPK per pohon.")
}

func TestIngestURLRejectsNonHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"not":"html"}`))
	}))
	defer srv.Close()
	host := mustHost(t, srv.URL)

	repo := &fakeDocRepo{}
	ctrl := New(repo, fixedResolver{id: "g1"}, []string{host}, 0)

	c, rec := newDocContext(t, http.MethodPost, `{"url":"`+srv.URL+`/data.json"}`)
	require.NoError(t, ctrl.IngestURL(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Empty(t, repo.created)
}

func mustHost(t *testing.T, raw string) string {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u.Host
}
