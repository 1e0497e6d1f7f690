package uploads

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SupabaseStorage stores objects in a Supabase Storage bucket over its HTTP API.
// The bucket must be public for Get redirects to resolve.
type SupabaseStorage struct {
	BaseURL   string
	SecretKey string // service_role key, not anon key
	Bucket    string
	Client    *http.Client
}

func (s *SupabaseStorage) httpClient() *http.Client {
	if s.Client == nil {
		s.Client = &http.Client{Timeout: 30 * time.Second}
	}
	return s.Client
}

func (s *SupabaseStorage) base() string {
	return strings.TrimRight(s.BaseURL, "/")
}

func (s *SupabaseStorage) Put(ctx context.Context, name, contentType string, data []byte) error {
	if s.BaseURL == "" {
		return fmt.Errorf("supabase: SUPABASE_URL is not set")
	}
	if s.SecretKey == "" {
		return fmt.Errorf("supabase: SUPABASE_SECRET_KEY is not set")
	}
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.base(), s.Bucket, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	// Same headers as @supabase/supabase-js: apikey and Bearer carry the same key
	req.Header.Set("apikey", s.SecretKey)
	req.Header.Set("Authorization", "Bearer "+s.SecretKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("supabase request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		bodyStr := string(body)
		// Invalid Compact JWS means the anon key was sent where service_role is required
		if resp.StatusCode == 400 || resp.StatusCode == 403 {
			if strings.Contains(bodyStr, "Invalid Compact JWS") || strings.Contains(bodyStr, "Unauthorized") {
				return fmt.Errorf("supabase storage requires the service_role key, not the anon key (raw body: %s)", bodyStr)
			}
		}
		return fmt.Errorf("supabase error: status %d body: %s", resp.StatusCode, bodyStr)
	}
	return nil
}

// Get resolves to the bucket's public object URL.
func (s *SupabaseStorage) Get(ctx context.Context, name string) (*Object, error) {
	return &Object{
		ContentType: contentTypeFor(name),
		RedirectURL: fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.base(), s.Bucket, name),
	}, nil
}
