// internal/app/features/charts/export.go
package charts

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/alerts"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/charting"
)

// ExportChart extracts the rendered image for a slot as a downloadable
// artifact. The user explicitly asked for this, so every failure mode
// (no live chart, a destroyed handle, a mangled image payload) is
// reported at medium severity with a user-facing message.
func (h *Handler) ExportChart(slot charting.Slot, filename string) (ExportArtifact, bool) {
	handle, ok := h.Charts.Handle(slot)
	if !ok {
		h.reportExportFailure(slot, fmt.Errorf("no active chart in slot %q", slot))
		return ExportArtifact{}, false
	}

	uri, err := handle.ToBase64Image()
	if err != nil {
		h.reportExportFailure(slot, fmt.Errorf("chart image unavailable: %w", err))
		return ExportArtifact{}, false
	}

	mime, data, err := decodeDataURI(uri)
	if err != nil {
		h.reportExportFailure(slot, fmt.Errorf("chart image malformed: %w", err))
		return ExportArtifact{}, false
	}

	if filename == "" {
		filename = fmt.Sprintf("%s-chart-%s.%s", slot, uuid.NewString(), extensionFor(mime))
	}
	return ExportArtifact{Filename: filename, MIME: mime, Data: data}, true
}

func (h *Handler) reportExportFailure(slot charting.Slot, err error) {
	h.Reporter.Handle(err, alerts.Options{
		Context:     fmt.Sprintf("export %s chart", slot),
		UserMessage: fmt.Sprintf("The %s chart could not be exported.", slot),
		Severity:    alerts.SeverityMedium,
		Metadata:    map[string]any{"slot": string(slot)},
	})
}

// decodeDataURI splits a data URI of the form
// data:<mime>;base64,<payload> into its MIME type and raw bytes.
func decodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("data URI has no payload")
	}
	mime, enc, _ := strings.Cut(meta, ";")
	if enc != "base64" {
		return "", nil, fmt.Errorf("unsupported data URI encoding %q", enc)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode image payload: %w", err)
	}
	return mime, data, nil
}

func extensionFor(mime string) string {
	switch mime {
	case "image/png":
		return "png"
	case "image/svg+xml":
		return "svg"
	default:
		return "bin"
	}
}
