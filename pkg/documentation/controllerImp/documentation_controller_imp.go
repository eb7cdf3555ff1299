package controllerImp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"

	"palmtrack/entities"
	"palmtrack/pkg/documentation/repository"
	gardensvc "palmtrack/pkg/garden/service"
)

type DocCtrl struct {
	repo     repository.DocumentationRepository
	resolver gardensvc.Resolver
	allow    map[string]bool
	maxBytes int
}

func New(repo repository.DocumentationRepository, resolver gardensvc.Resolver, allowedHosts []string, maxBytes int) *DocCtrl {
	allow := map[string]bool{}
	for _, h := range allowedHosts {
		allow[strings.ToLower(h)] = true
	}
	if maxBytes <= 0 {
		maxBytes = 1500000
	}
	return &DocCtrl{repo: repo, resolver: resolver, allow: allow, maxBytes: maxBytes}
}

type docReq struct {
	Kind        entities.DocumentationKind `json:"kind"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	FileURL     string                     `json:"file_url"`
	Content     string                     `json:"content"`
	Category    string                     `json:"category"`
}

func (h *DocCtrl) Create(c echo.Context) error {
	gid, err := h.resolver.Resolve(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "garden not found"})
	}
	var req docReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "title is required"})
	}
	switch req.Kind {
	case entities.DocumentationKindPhoto, entities.DocumentationKindDocument:
		if req.FileURL == "" {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "file_url is required for " + string(req.Kind)})
		}
	case entities.DocumentationKindNote:
		if req.Content == "" {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "content is required for note"})
		}
	default:
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "invalid kind"})
	}
	d := &entities.Documentation{
		GardenID:    gid,
		Kind:        req.Kind,
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		Content:     req.Content,
		Category:    req.Category,
	}
	if err := h.repo.Create(d); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, d)
}

// IngestURL fetches a page from an allowed host, extracts its title and main
// text and stores the result as a note documentation for the garden.
func (h *DocCtrl) IngestURL(c echo.Context) error {
	gid, err := h.resolver.Resolve(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "garden not found"})
	}
	var body struct{ URL, Title, Category string }
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	u, err := url.Parse(body.URL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad url"})
	}
	if !h.allow[strings.ToLower(u.Host)] {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"})
	}

	text, title, err := fetchMainText(body.URL, h.maxBytes)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	if body.Title != "" {
		title = body.Title
	}
	d := &entities.Documentation{
		GardenID: gid,
		Kind:     entities.DocumentationKindNote,
		Title:    title,
		FileURL:  body.URL,
		Content:  text,
		Category: body.Category,
	}
	if err := h.repo.Create(d); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *DocCtrl) List(c echo.Context) error {
	gid, err := h.resolver.Resolve(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "garden not found"})
	}
	out, err := h.repo.ListByGarden(gid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DocCtrl) Update(c echo.Context) error {
	d, err := h.repo.FindByID(c.Param("doc_id"))
	if err != nil {
		return h.mapErr(c, err)
	}
	var req docReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Title != "" {
		d.Title = req.Title
	}
	if req.Description != "" {
		d.Description = req.Description
	}
	if req.FileURL != "" {
		d.FileURL = req.FileURL
	}
	if req.Content != "" {
		d.Content = req.Content
	}
	if req.Category != "" {
		d.Category = req.Category
	}
	if err := h.repo.Update(d); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DocCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("doc_id")); err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *DocCtrl) mapErr(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func fetchMainText(u string, maxBytes int) (string, string, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") {
		return "", "", fmt.Errorf("unsupported content-type: %s", ct)
	}
	if resp.ContentLength > 0 && resp.ContentLength > int64(maxBytes) {
		return "", "", fmt.Errorf("page too large")
	}
	limited := io.LimitedReader{R: resp.Body, N: int64(maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", "", err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, "\n"), title, nil
}
