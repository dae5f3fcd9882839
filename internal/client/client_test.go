package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/okul/schoolhub/internal/pkg/apperrors"
	"github.com/okul/schoolhub/internal/pkg/tokenstore"
)

func TestNewRejectsBadOptions(t *testing.T) {
	if _, err := New(Options{Store: tokenstore.NewMemStore()}); err == nil {
		t.Fatal("expected error for missing base URL")
	}
	if _, err := New(Options{BaseURL: "http://localhost:8000/api"}); err == nil {
		t.Fatal("expected error for missing store")
	}
	if _, err := New(Options{BaseURL: "ftp://host/api", Store: tokenstore.NewMemStore()}); err == nil {
		t.Fatal("expected error for non-http scheme")
	}
}

func TestGetEncodesQueryParams(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		io.WriteString(w, `[]`)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, tokenstore.NewMemStore(), nil)

	q := url.Values{}
	q.Set("role", "teacher")
	q.Set("search", "jane doe")
	if err := c.Get(context.Background(), "/core/users/", q, nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotQuery.Get("role") != "teacher" || gotQuery.Get("search") != "jane doe" {
		t.Fatalf("query not encoded: %v", gotQuery)
	}
}

func TestAPIErrorCarriesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"email":["This field is required."],"password":["This field is required."]}`)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, tokenstore.NewMemStore(), nil)
	err := c.Post(context.Background(), "/auth/login/", map[string]string{}, nil)

	var apiErr *APIError
	if !IsStatus(err, http.StatusBadRequest) {
		t.Fatalf("expected 400, got %v", err)
	}
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if len(apiErr.Body.Fields["email"]) == 0 {
		t.Fatalf("expected field errors decoded, got %+v", apiErr.Body)
	}
}

func TestAPIErrorKeepsNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, `<html>upstream down</html>`)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, tokenstore.NewMemStore(), nil)
	err := c.Get(context.Background(), "/core/schools/", nil, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if !bytes.Contains(apiErr.RawBody, []byte("upstream down")) {
		t.Fatalf("raw body lost: %q", apiErr.RawBody)
	}
}

func TestPostMultipartSkipsEmptyFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if got := r.FormValue("title"); got != "Homework 3" {
			t.Errorf("title = %q", got)
		}
		if _, ok := r.MultipartForm.Value["external_link"]; ok {
			t.Error("empty field must be omitted from the form")
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		if header.Filename != "sheet.pdf" || string(data) != "pdf-bytes" {
			t.Errorf("file = %q (%d bytes)", header.Filename, len(data))
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{}`)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, tokenstore.NewMemStore(), nil)
	fields := map[string]string{"title": "Homework 3", "external_link": ""}
	files := []File{{Field: "file", Name: "sheet.pdf", Content: []byte("pdf-bytes")}}
	if err := c.PostMultipart(context.Background(), "/resources/resources/", fields, files, nil); err != nil {
		t.Fatalf("PostMultipart: %v", err)
	}
}

func TestDownloadReturnsBytesAndContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, tokenstore.NewMemStore(), nil)
	data, contentType, err := c.Download(context.Background(), "/resources/resources/abc/download/")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if contentType != "application/pdf" {
		t.Fatalf("content type = %q", contentType)
	}
	if string(data) != "%PDF-1.4" {
		t.Fatalf("data = %q", data)
	}
}

func TestAPIErrorMapsStatusToSentinel(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, apperrors.ErrNotAuthenticated},
		{http.StatusForbidden, apperrors.ErrPermissionDenied},
		{http.StatusNotFound, apperrors.ErrResourceNotFound},
		{http.StatusInternalServerError, apperrors.ErrRequestFailed},
	}
	for _, tc := range cases {
		err := (&APIError{StatusCode: tc.status})
		if !errors.Is(err, tc.want) {
			t.Errorf("status %d should match %v", tc.status, tc.want)
		}
	}
}

func TestForbiddenResponseMatchesPermissionDenied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"detail":"You do not have permission to perform this action."}`)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, tokenstore.NewMemStore(), nil)
	err := c.Get(context.Background(), "/fees/records/", nil, nil)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission-denied, got %v", err)
	}
}
