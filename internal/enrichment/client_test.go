package enrichment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/edudash/backend/pkg/apperror"
)

func TestGenerate(t *testing.T) {
	var gotPath string
	var gotForm map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart form: %v", err)
		}
		gotForm = map[string]string{}
		for key := range r.MultipartForm.Value {
			gotForm[key] = r.FormValue(key)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"questions":[{"question":"What is velocity?","options":["a","b"],"correctAnswer":"a"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	questions, err := client.Generate(context.Background(), KindMCQ, ChapterMeta{
		Subject: "Physics", Book: "Class 10", Chapter: "Motion",
	}, 5)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if gotPath != "/generate_mcqs" {
		t.Errorf("path = %q, want /generate_mcqs", gotPath)
	}
	want := map[string]string{"subject": "Physics", "book": "Class 10", "chapter": "Motion", "n": "5"}
	for key, value := range want {
		if gotForm[key] != value {
			t.Errorf("form[%s] = %q, want %q", key, gotForm[key], value)
		}
	}
	if len(questions) != 1 || questions[0].Question != "What is velocity?" {
		t.Errorf("questions = %v", questions)
	}
}

func TestGenerateKindRouting(t *testing.T) {
	cases := []struct {
		kind Kind
		path string
	}{
		{KindMCQ, "/generate_mcqs"},
		{KindShort, "/generate_short_questions"},
		{KindLong, "/generate_long_questions"},
	}

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	for _, tc := range cases {
		if _, err := client.Generate(context.Background(), tc.kind, ChapterMeta{}, 1); err != nil {
			t.Fatalf("Generate(%s): %v", tc.kind, err)
		}
		if gotPath != tc.path {
			t.Errorf("kind %s hit %q, want %q", tc.kind, gotPath, tc.path)
		}
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	client := NewClient("http://localhost:0", time.Second)

	_, err := client.Generate(context.Background(), Kind("essay"), ChapterMeta{}, 1)
	if !errors.Is(err, apperror.ErrBadRequest) {
		t.Errorf("expected ErrBadRequest, got %v", err)
	}
}

func TestGenerateRemoteReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"details":"chapter not indexed"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Generate(context.Background(), KindMCQ, ChapterMeta{}, 1)
	if !errors.Is(err, apperror.ErrRemote) {
		t.Fatalf("expected ErrRemote, got %v", err)
	}
	if !strings.Contains(err.Error(), "chapter not indexed") {
		t.Errorf("remote details dropped: %v", err)
	}
}

func TestGenerateNon2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream blew up"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Generate(context.Background(), KindMCQ, ChapterMeta{}, 1)
	if !errors.Is(err, apperror.ErrRemote) {
		t.Fatalf("expected ErrRemote, got %v", err)
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("status code missing from error: %v", err)
	}
}

func TestGenerateUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Generate(context.Background(), KindMCQ, ChapterMeta{}, 1)
	if !errors.Is(err, apperror.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestGenerateContextCancelled(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	client := NewClient(srv.URL, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Generate(ctx, KindMCQ, ChapterMeta{}, 1)
	if !errors.Is(err, apperror.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable on cancellation, got %v", err)
	}
}

func TestUploadChapter(t *testing.T) {
	var gotPath string
	var gotForm map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart form: %v", err)
		}
		gotForm = map[string]string{}
		for key := range r.MultipartForm.Value {
			gotForm[key] = r.FormValue(key)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	err := client.UploadChapter(context.Background(), ChapterMeta{
		Subject: "Physics", Book: "Class 10", Chapter: "Motion",
	}, "https://cdn.example.com/motion.pdf")
	if err != nil {
		t.Fatalf("UploadChapter: %v", err)
	}

	if gotPath != "/admin/upload_chapter" {
		t.Errorf("path = %q, want /admin/upload_chapter", gotPath)
	}
	if gotForm["pdf_url"] != "https://cdn.example.com/motion.pdf" {
		t.Errorf("pdf_url = %q", gotForm["pdf_url"])
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "//") {
			t.Errorf("double slash in path %q", r.URL.Path)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", time.Second)
	if _, err := client.Generate(context.Background(), KindMCQ, ChapterMeta{}, 1); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}
