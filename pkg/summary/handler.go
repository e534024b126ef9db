package summary

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/tintama/tintama/internal/rest"
	"github.com/tintama/tintama/pkg/page"
)

const maxPageSize = 10 << 20

// StatusHeader carries the result status when the augmented page is returned.
const StatusHeader = "X-Tintama-Status"

type Handler struct {
	service     Service
	csvRenderer ResultRenderer
	pageOptions page.Options
}

func NewHandler(service Service, pageOptions page.Options) *Handler {
	return &Handler{service, NewCsvResultRenderer(), pageOptions}
}

// Summarize evaluates the attendance page posted as the request body. The response is
// JSON by default, CSV for "Accept: text/csv" and the page itself, with the widget
// inserted when possible, for "Accept: text/html".
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxPageSize)
	p, err := page.ParseHTML(body, h.pageOptions)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			rest.WriteError(w, http.StatusRequestEntityTooLarge, "Page too large", err.Error())
			return
		}
		rest.WriteError(w, http.StatusBadRequest, "Invalid page", err.Error())
		return
	}

	result, err := h.service.Run(r.Context(), p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	accept := r.Header.Get("Accept")
	switch {
	case accepts(accept, "text/html"):
		var out bytes.Buffer
		if err := p.Render(&out); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set(StatusHeader, result.Status.String())
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(out.Bytes()); err != nil {
			log.Errorf("failed to write page: %v", err)
		}
		return
	case !result.OK():
		rest.WriteError(w, http.StatusUnprocessableEntity, result.Message(), result.Status.String())
		return
	case accepts(accept, "text/csv"):
		csv, err := h.csvRenderer.RenderResult(result)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(csv)); err != nil {
			log.Errorf("failed to write csv: %v", err)
		}
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(ResultToDTO(result)); err != nil {
			log.Errorf("failed to encode result: %v", err)
		}
		return
	}
}

// accepts reports whether the Accept header lists the media type explicitly. Wildcards
// do not count, so "*/*" alone keeps the JSON default.
func accepts(accept, mediaType string) bool {
	for _, part := range strings.Split(accept, ",") {
		value, _, _ := strings.Cut(part, ";")
		if strings.EqualFold(strings.TrimSpace(value), mediaType) {
			return true
		}
	}
	return false
}
