package enrichment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/edudash/backend/pkg/apperror"
)

// Kind selects which remote generation endpoint is called.
type Kind string

const (
	KindMCQ   Kind = "mcq"
	KindShort Kind = "short"
	KindLong  Kind = "long"
)

var kindPaths = map[Kind]string{
	KindMCQ:   "/generate_mcqs",
	KindShort: "/generate_short_questions",
	KindLong:  "/generate_long_questions",
}

// ValidKind reports whether k maps to a remote endpoint.
func ValidKind(k Kind) bool {
	_, ok := kindPaths[k]
	return ok
}

// ChapterMeta identifies a chapter to the remote service. Book carries the
// class label, matching the remote form contract.
type ChapterMeta struct {
	Subject string
	Book    string
	Chapter string
}

// GeneratedQuestion is one question returned by the remote service. The
// payload is relayed as-is; no server-side correctness check is applied.
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
}

type generationResponse struct {
	Success   bool                `json:"success"`
	Questions []GeneratedQuestion `json:"questions"`
	Details   string              `json:"details"`
}

// Service is the contract consumed by the chapter service; Client is the
// HTTP implementation.
type Service interface {
	Generate(ctx context.Context, kind Kind, meta ChapterMeta, n int) ([]GeneratedQuestion, error)
	UploadChapter(ctx context.Context, meta ChapterMeta, pdfURL string) error
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the external question-generation service.
// The timeout bounds the whole round trip; generation is a synchronous
// user-facing action and must not hang indefinitely.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate posts chapter metadata to the generation endpoint selected by
// kind and returns the generated questions.
func (c *Client) Generate(ctx context.Context, kind Kind, meta ChapterMeta, n int) ([]GeneratedQuestion, error) {
	path, ok := kindPaths[kind]
	if !ok {
		return nil, fmt.Errorf("unknown generation kind %q: %w", kind, apperror.ErrBadRequest)
	}

	fields := map[string]string{
		"subject": meta.Subject,
		"book":    meta.Book,
		"chapter": meta.Chapter,
		"n":       strconv.Itoa(n),
	}

	resp, err := c.postForm(ctx, path, fields)
	if err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

// UploadChapter registers a chapter's PDF with the remote service so it can
// be indexed for generation.
func (c *Client) UploadChapter(ctx context.Context, meta ChapterMeta, pdfURL string) error {
	fields := map[string]string{
		"subject": meta.Subject,
		"book":    meta.Book,
		"chapter": meta.Chapter,
		"pdf_url": pdfURL,
	}

	_, err := c.postForm(ctx, "/admin/upload_chapter", fields)
	return err
}

func (c *Client) postForm(ctx context.Context, path string, fields map[string]string) (*generationResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("build multipart form: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("enrichment service unreachable: %w", apperror.ErrUnavailable)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read enrichment response: %w", apperror.ErrUnavailable)
	}

	var parsed generationResponse
	// Body may not be JSON on error statuses; keep whatever detail we got.
	_ = json.Unmarshal(raw, &parsed)

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		detail := parsed.Details
		if detail == "" {
			detail = fmt.Sprintf("enrichment service returned status %d", httpResp.StatusCode)
		}
		return nil, fmt.Errorf("%s: %w", detail, apperror.ErrRemote)
	}

	if !parsed.Success {
		detail := parsed.Details
		if detail == "" {
			detail = "enrichment service reported failure"
		}
		return nil, fmt.Errorf("%s: %w", detail, apperror.ErrRemote)
	}

	return &parsed, nil
}
