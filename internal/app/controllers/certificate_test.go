package controllers_test

import (
	"bytes"
	"net/http"
	"testing"
)

func TestUploadCertificateBatch(t *testing.T) {
	env := newTestEnv(t)
	content := []byte("%PDF-1.4 fake certificate body")

	rec := env.doMultipart(t, "/api/upload-certificate",
		map[string]string{"event_id": "5", "organizer_id": "9"},
		map[string][]byte{
			"10_7_networking.pdf": content,
			"11_7_networking.pdf": []byte("second"),
		})
	if rec.Code != http.StatusOK {
		t.Fatalf("upload returned %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Files   []struct {
			FileName string `json:"fileName"`
			FileURL  string `json:"fileUrl"`
		} `json:"files"`
	}
	decodeBody(t, rec, &resp)
	if !resp.Success || len(resp.Files) != 2 {
		t.Fatalf("expected 2 uploaded files, got %+v", resp)
	}

	env.certs.mu.Lock()
	if len(env.certs.certs) != 2 {
		t.Fatalf("expected 2 certificate rows, got %d", len(env.certs.certs))
	}
	for _, c := range env.certs.certs {
		if c.ClassID != 7 || c.EventID != 5 || c.UploadBy != 9 {
			t.Errorf("keys not derived from filename/form: %+v", c)
		}
	}
	env.certs.mu.Unlock()

	// The stored file streams back byte for byte.
	got := env.doGet(t, "/uploads/10_7_networking.pdf")
	if got.Code != http.StatusOK {
		t.Fatalf("serving upload returned %d: %s", got.Code, got.Body.String())
	}
	if !bytes.Equal(got.Body.Bytes(), content) {
		t.Error("served file does not match uploaded bytes")
	}
}

func TestUploadMalformedFilenameAbortsBatch(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doMultipart(t, "/api/upload-certificate",
		map[string]string{"event_id": "5", "organizer_id": "9"},
		map[string][]byte{
			"12_3_ok.pdf":     []byte("fine"),
			"certificate.pdf": []byte("no keys in name"),
		})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	// Zero side effects: no rows recorded, nothing written to storage.
	env.certs.mu.Lock()
	if len(env.certs.certs) != 0 {
		t.Errorf("aborted batch left %d certificate rows behind", len(env.certs.certs))
	}
	env.certs.mu.Unlock()

	got := env.doGet(t, "/uploads/12_3_ok.pdf")
	if got.Code != http.StatusNotFound {
		t.Errorf("aborted batch left a file on disk: status %d", got.Code)
	}
}

func TestUploadNonNumericKeySegment(t *testing.T) {
	env := newTestEnv(t)
	rec := env.doMultipart(t, "/api/upload-certificate",
		map[string]string{"event_id": "5", "organizer_id": "9"},
		map[string][]byte{"ab_7_x.pdf": []byte("x")})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric student segment, got %d", rec.Code)
	}
}

func TestUploadMissingEventID(t *testing.T) {
	env := newTestEnv(t)
	rec := env.doMultipart(t, "/api/upload-certificate",
		map[string]string{"organizer_id": "9"},
		map[string][]byte{"10_7_x.pdf": []byte("x")})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing event_id, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUploadNoFiles(t *testing.T) {
	env := newTestEnv(t)
	rec := env.doMultipart(t, "/api/upload-certificate",
		map[string]string{"event_id": "5", "organizer_id": "9"}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty batch, got %d", rec.Code)
	}
}

func TestListCertificatesByStudent(t *testing.T) {
	env := newTestEnv(t)
	env.doMultipart(t, "/api/upload-certificate",
		map[string]string{"event_id": "5", "organizer_id": "9"},
		map[string][]byte{
			"10_7_a.pdf": []byte("a"),
			"20_7_b.pdf": []byte("b"),
		})

	rec := env.doGet(t, "/api/certificates/10")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success      bool `json:"success"`
		Certificates []struct {
			StudentID int64  `json:"studentId"`
			FileName  string `json:"fileName"`
		} `json:"certificates"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Certificates) != 1 || resp.Certificates[0].FileName != "10_7_a.pdf" {
		t.Errorf("unexpected listing: %+v", resp.Certificates)
	}

	// Unknown students list empty, they are not errors.
	rec = env.doGet(t, "/api/certificates/999")
	decodeBody(t, rec, &resp)
	if rec.Code != http.StatusOK || len(resp.Certificates) != 0 {
		t.Errorf("unknown student: got %d with %d certificates", rec.Code, len(resp.Certificates))
	}
}

func TestServeUploadMissingFile(t *testing.T) {
	env := newTestEnv(t)
	rec := env.doGet(t, "/uploads/10_7_missing.pdf")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestServeUploadRejectsUnsafeName(t *testing.T) {
	env := newTestEnv(t)
	rec := env.doGet(t, "/uploads/..")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for traversal name, got %d: %s", rec.Code, rec.Body.String())
	}
}
