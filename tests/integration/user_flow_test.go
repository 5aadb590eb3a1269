package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"
)

// TestNoteLifecycle drives the whole user surface against a running instance:
// register, login, upload, browse, like, download, logout.
func TestNoteLifecycle(t *testing.T) {
	baseURL := os.Getenv("INTEGRATION_BASE_URL")
	if baseURL == "" {
		t.Skip("INTEGRATION_BASE_URL not set; skipping integration test")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{
		Timeout: 5 * time.Second,
		Jar:     jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	suffix := time.Now().UnixNano()
	username := fmt.Sprintf("it_user_%d", suffix)
	email := fmt.Sprintf("it_%d@example.com", suffix)
	password := "Passw0rd!"

	// 1. Register
	resp, err := client.PostForm(baseURL+"/register", url.Values{
		"username": {username}, "email": {email}, "password": {password},
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("register: status=%d", resp.StatusCode)
	}

	// 2. Login
	resp, err = client.PostForm(baseURL+"/login", url.Values{
		"email": {email}, "password": {password},
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login: status=%d", resp.StatusCode)
	}

	// 3. Upload a note
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("title", "Integration Calc Notes")
	_ = mw.WriteField("subject", "Math")
	fw, _ := mw.CreateFormFile("file", "calc.pdf")
	_, _ = io.WriteString(fw, "integration content")
	_ = mw.Close()

	req, _ := http.NewRequest(http.MethodPost, baseURL+"/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("upload: status=%d", resp.StatusCode)
	}

	// 4. Browse and find the note
	listing := getJSON(t, client, baseURL+"/notes?search=Integration+Calc")
	notes, _ := listing["notes"].([]any)
	if len(notes) == 0 {
		t.Fatalf("uploaded note not found in listing")
	}
	note := notes[0].(map[string]any)
	noteID := int(note["id"].(float64))
	filename := note["filename"].(string)

	// 5. Like it twice; the count must stay at one
	for i := 0; i < 2; i++ {
		req, _ = http.NewRequest(http.MethodGet, fmt.Sprintf("%s/like/%d", baseURL, noteID), nil)
		resp, err = client.Do(req)
		if err != nil {
			t.Fatalf("like failed: %v", err)
		}
		resp.Body.Close()
	}
	listing = getJSON(t, client, baseURL+"/notes?search=Integration+Calc")
	counts := listing["like_counts"].(map[string]any)
	if got := counts[fmt.Sprint(noteID)]; got != float64(1) {
		t.Fatalf("like count = %v, want 1", got)
	}

	// 6. Download
	resp, err = client.Get(baseURL + "/download/" + filename)
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "integration content") {
		t.Fatalf("download: status=%d body=%q", resp.StatusCode, body)
	}

	// 7. Logout; the dashboard must reject afterwards
	resp, err = client.Get(baseURL + "/logout")
	if err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	resp.Body.Close()

	req, _ = http.NewRequest(http.MethodGet, baseURL+"/dashboard", nil)
	req.Header.Set("Accept", "application/json")
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("dashboard after logout failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("dashboard after logout: status=%d, want 401", resp.StatusCode)
	}
}

func getJSON(t *testing.T, client *http.Client, url string) map[string]any {
	t.Helper()
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status=%d", url, resp.StatusCode)
	}
	var m map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return m
}
