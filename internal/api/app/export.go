package app

import (
	"context"
	"encoding/base64"

	"idmlx/internal/usecase/exporter"
)

type ExportAPI struct{ svc *exporter.Service }

func NewExportAPI(svc *exporter.Service) *ExportAPI { return &ExportAPI{svc: svc} }

type ExportFileResponse struct {
	Filename   string `json:"filename"`
	ContentB64 string `json:"content_b64"`
}

// ExportActiveBase64 renders the active document with its translations
// applied. The frontend turns the payload into a download.
func (a *ExportAPI) ExportActiveBase64() (ExportFileResponse, error) {
	res, err := a.svc.ExportActive(context.Background())
	if err != nil {
		return ExportFileResponse{}, err
	}
	return ExportFileResponse{Filename: res.Filename, ContentB64: base64.StdEncoding.EncodeToString(res.Content)}, nil
}
