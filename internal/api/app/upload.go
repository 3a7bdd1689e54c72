package app

import (
	"context"
	"encoding/base64"

	"idmlx/internal/usecase/uploader"
)

type UploadAPI struct{ svc *uploader.Service }

func NewUploadAPI(svc *uploader.Service) *UploadAPI { return &UploadAPI{svc: svc} }

type UploadRequest struct {
	Filename string `json:"filename"`
	// ContentB64 is the base64-encoded file bytes
	ContentB64 string `json:"content_b64"`
}

type UploadedDocSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Segments int    `json:"segments"`
}

type UploadResponse struct {
	Documents []UploadedDocSummary `json:"documents"`
}

func (a *UploadAPI) UploadBase64(req UploadRequest) (UploadResponse, error) {
	ctx := context.Background()
	b, err := base64.StdEncoding.DecodeString(req.ContentB64)
	if err != nil {
		return UploadResponse{}, err
	}
	docs, err := a.svc.Upload(ctx, req.Filename, b)
	if err != nil {
		return UploadResponse{}, err
	}
	out := UploadResponse{Documents: make([]UploadedDocSummary, 0, len(docs))}
	for _, d := range docs {
		out.Documents = append(out.Documents, UploadedDocSummary{ID: d.ID, Name: d.Name, Segments: len(d.Segments)})
	}
	return out, nil
}
