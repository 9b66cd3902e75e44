package ui

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/Kumungchi/vyzkumdata/internal/errors"
	"github.com/Kumungchi/vyzkumdata/internal/report"
)

// handleIndex lists participants with links to their reports.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	ids, err := a.reports.Participants(r.Context())
	if err != nil {
		a.renderError(w, err)
		return
	}
	a.renderTemplate(w, "index.html", map[string]interface{}{
		"Participants": ids,
	})
}

// handleReportPage renders one participant's full report as HTML.
func (a *App) handleReportPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rep, err := a.reports.BuildReport(r.Context(), id)
	if err != nil {
		a.renderError(w, err)
		return
	}
	a.renderTemplate(w, "report.html", map[string]interface{}{
		"Report":      rep,
		"Insights":    renderAll(rep.Insights),
		"Comparisons": renderAll(rep.Comparisons),
	})
}

// handleParticipantsJSON lists participant IDs.
func (a *App) handleParticipantsJSON(w http.ResponseWriter, r *http.Request) {
	ids, err := a.reports.Participants(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"participants": ids,
		"count":        len(ids),
	})
}

// handleReportJSON serves one participant's report as JSON.
func (a *App) handleReportJSON(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rep, err := a.reports.BuildReport(r.Context(), id)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, report.ToWire(rep))
}

// handleReload drops the dataset cache so edited input files are re-read.
func (a *App) handleReload(w http.ResponseWriter, r *http.Request) {
	a.reports.Invalidate()
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[UI] failed to encode response: %v", err)
	}
}

func (a *App) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeMalformedInput, errors.CodeAmbiguousColumn, errors.CodeConfigInvalid:
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		log.Printf("[UI] internal error: %v", err)
	}
	a.writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}

func (a *App) renderError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.GetCode(err) == errors.CodeNotFound {
		status = http.StatusNotFound
	}
	w.WriteHeader(status)
	a.renderTemplate(w, "error.html", map[string]interface{}{
		"Message": err.Error(),
	})
}

// renderMarkdown converts a markdown snippet to HTML for templates. The
// snippets come from our own templates, never from users.
func renderMarkdown(text string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return template.HTML(markdown.ToHTML([]byte(text), p, renderer))
}

func renderAll(texts []string) []template.HTML {
	out := make([]template.HTML, 0, len(texts))
	for _, t := range texts {
		out = append(out, renderMarkdown(t))
	}
	return out
}
