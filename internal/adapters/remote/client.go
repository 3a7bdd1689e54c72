package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"idmlx/internal/domain"
	"idmlx/internal/ports"
)

const defaultBaseURL = "http://localhost:8080"

// Client talks to the idmlx backend: upload/parse, translation and
// export. It implements ports.Uploader, ports.Translator and
// ports.DocumentExporter.
type Client struct {
	baseURL string
	http    *resty.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	c := resty.New().
		SetTimeout(60 * time.Second).
		SetHeader("X-Requested-With", "XMLHttpRequest")
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: c}
}

func (c *Client) url(tail string) string { return c.baseURL + "/api" + tail }

// apiErr surfaces the server-provided message when the response body
// carries one, else falls back to the HTTP status.
func apiErr(op string, r *resty.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(r.Body(), &body); err == nil && body.Error != "" {
		return fmt.Errorf("%s: %s", op, body.Error)
	}
	return fmt.Errorf("%s: %s", op, r.Status())
}

// uploadPayload covers both response shapes: a multi-document ZIP
// result carries `files`, a single IDML carries fileId/segments at the
// top level.
type uploadPayload struct {
	Files []struct {
		FileID   string           `json:"fileId"`
		Name     string           `json:"name"`
		Segments []domain.Segment `json:"segments"`
	} `json:"files"`
	FileID       string           `json:"fileId"`
	Segments     []domain.Segment `json:"segments"`
	OriginalName string           `json:"originalName"`
}

func (c *Client) Upload(ctx context.Context, filename string, content []byte) ([]ports.UploadedDocument, error) {
	r, err := c.http.R().SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(content)).
		Post(c.url("/files/upload"))
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	if r.IsError() {
		return nil, apiErr("upload", r)
	}
	var p uploadPayload
	if err := json.Unmarshal(r.Body(), &p); err != nil {
		return nil, fmt.Errorf("upload: decode response: %w", err)
	}
	if p.Files != nil {
		out := make([]ports.UploadedDocument, 0, len(p.Files))
		for _, f := range p.Files {
			out = append(out, ports.UploadedDocument{ID: f.FileID, Name: f.Name, Segments: f.Segments})
		}
		return out, nil
	}
	name := p.OriginalName
	if name == "" {
		name = filename
	}
	return []ports.UploadedDocument{{ID: p.FileID, Name: name, Segments: p.Segments}}, nil
}

func (c *Client) TranslateOne(ctx context.Context, text, mode string) (string, error) {
	body := map[string]string{"text": text}
	if mode != "" {
		body["mode"] = mode
	}
	var resp struct {
		TranslatedText string `json:"translatedText"`
	}
	r, err := c.http.R().SetContext(ctx).SetBody(body).SetResult(&resp).Post(c.url("/translate"))
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	if r.IsError() {
		return "", apiErr("translate", r)
	}
	return resp.TranslatedText, nil
}

func (c *Client) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	type item struct {
		Text string `json:"text"`
	}
	items := make([]item, len(texts))
	for i, t := range texts {
		items[i] = item{Text: t}
	}
	var resp struct {
		Items []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"items"`
	}
	r, err := c.http.R().SetContext(ctx).
		SetBody(map[string]any{"items": items}).
		SetResult(&resp).
		Post(c.url("/translate/batch"))
	if err != nil {
		return nil, fmt.Errorf("translate batch: %w", err)
	}
	if r.IsError() {
		return nil, apiErr("translate batch", r)
	}
	out := make([]string, len(resp.Items))
	for i, it := range resp.Items {
		out[i] = it.TranslatedText
	}
	return out, nil
}

var filenameRE = regexp.MustCompile(`(?i)filename="([^"]+)"`)

func (c *Client) Export(ctx context.Context, fileID string, replacements []ports.Replacement) (ports.ExportResult, error) {
	r, err := c.http.R().SetContext(ctx).
		SetBody(map[string]any{"replacements": replacements}).
		Post(c.url("/files/" + fileID + "/export"))
	if err != nil {
		return ports.ExportResult{}, fmt.Errorf("export: %w", err)
	}
	if r.IsError() {
		return ports.ExportResult{}, apiErr("export", r)
	}
	filename := "translated.idml"
	if m := filenameRE.FindStringSubmatch(r.Header().Get("Content-Disposition")); len(m) == 2 {
		filename = m[1]
	}
	return ports.ExportResult{Filename: filename, Content: r.Body()}, nil
}

// Health pings the backend; used once at startup to tell the UI
// whether the API is reachable.
func (c *Client) Health(ctx context.Context) bool {
	hctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	r, err := c.http.R().SetContext(hctx).Get(c.url("/healthz"))
	return err == nil && !r.IsError()
}
