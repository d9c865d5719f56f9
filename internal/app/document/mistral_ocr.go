package document

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// MistralOCR talks to the Mistral document OCR API: the PDF is uploaded,
// a temporary signed URL is requested, and the OCR endpoint returns one
// Markdown block per page.
type MistralOCR struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewMistralOCR creates an OCR client against the given API base URL.
func NewMistralOCR(baseURL, apiKey, model string, logger *zap.Logger) *MistralOCR {
	if model == "" {
		model = "mistral-ocr-latest"
	}
	return &MistralOCR{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 5 * time.Minute},
		logger:  logger,
	}
}

type uploadResponse struct {
	ID string `json:"id"`
}

type signedURLResponse struct {
	URL string `json:"url"`
}

type ocrResponse struct {
	Pages []struct {
		Index    int    `json:"index"`
		Markdown string `json:"markdown"`
	} `json:"pages"`
}

// Recognize uploads the PDF and returns per-page recognition results. The
// Mistral service detects the language itself, so the hint is unused.
func (m *MistralOCR) Recognize(ctx context.Context, pdfPath, _ string) ([]OCRPage, error) {
	fileID, err := m.upload(ctx, pdfPath)
	if err != nil {
		return nil, fmt.Errorf("upload PDF to OCR service: %w", err)
	}
	defer m.deleteFile(fileID)

	documentURL, err := m.signedURL(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("obtain signed URL: %w", err)
	}

	return m.process(ctx, documentURL)
}

func (m *MistralOCR) upload(ctx context.Context, pdfPath string) (string, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("purpose", "ocr"); err != nil {
		return "", err
	}
	part, err := writer.CreateFormFile("file", filepath.Base(pdfPath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/v1/files", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var uploaded uploadResponse
	if err := m.do(req, &uploaded); err != nil {
		return "", err
	}
	if uploaded.ID == "" {
		return "", fmt.Errorf("upload response missing file id")
	}

	return uploaded.ID, nil
}

func (m *MistralOCR) signedURL(ctx context.Context, fileID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/v1/files/"+fileID+"/url", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	var signed signedURLResponse
	if err := m.do(req, &signed); err != nil {
		return "", err
	}
	if signed.URL == "" {
		return "", fmt.Errorf("signed URL response missing url")
	}

	return signed.URL, nil
}

func (m *MistralOCR) process(ctx context.Context, documentURL string) ([]OCRPage, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"model": m.model,
		"document": map[string]string{
			"type":         "document_url",
			"document_url": documentURL,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/v1/ocr", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	var result ocrResponse
	if err := m.do(req, &result); err != nil {
		return nil, fmt.Errorf("OCR request failed: %w", err)
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("OCR response contained no pages")
	}

	pages := make([]OCRPage, 0, len(result.Pages))
	for i, p := range result.Pages {
		page := OCRPage{Index: p.Index, Text: p.Markdown}
		if p.Index == 0 && i > 0 {
			page.Index = i
		}
		if p.Markdown == "" {
			page.Err = fmt.Errorf("no text recognized")
		}
		pages = append(pages, page)
	}

	return pages, nil
}

// deleteFile removes the uploaded PDF from the remote service.
// Best-effort: a failure only logs.
func (m *MistralOCR) deleteFile(fileID string) {
	req, err := http.NewRequest(http.MethodDelete, m.baseURL+"/v1/files/"+fileID, nil)
	if err != nil {
		return
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		m.logger.Warn("failed to delete uploaded OCR file", zap.String("file_id", fileID), zap.Error(err))
		return
	}
	resp.Body.Close()
}

// do executes a request and decodes the JSON response into out. Non-2xx
// statuses are returned as errors carrying the response body.
func (m *MistralOCR) do(req *http.Request, out interface{}) error {
	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
