package recruit

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"interview-prep/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterClient_Register(t *testing.T) {
	var gotBody, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":101}`))
	}))
	defer srv.Close()

	client := NewRegisterClient(config.RecruitConfig{RegisterURL: srv.URL, RegisterTimeout: 5 * time.Second})
	out, err := client.Register(context.Background(), []byte(`{"title":"마케터"}`))
	require.NoError(t, err)
	assert.True(t, out.OK())
	assert.Equal(t, http.StatusCreated, out.StatusCode)
	assert.JSONEq(t, `{"id":101}`, string(out.Body))
	assert.Equal(t, `{"title":"마케터"}`, gotBody)
	assert.Equal(t, "application/json", gotContentType)
}

func TestRegisterClient_UpstreamRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("title is required"))
	}))
	defer srv.Close()

	client := NewRegisterClient(config.RecruitConfig{RegisterURL: srv.URL})
	out, err := client.Register(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	assert.False(t, out.OK())
	assert.Equal(t, http.StatusUnprocessableEntity, out.StatusCode)
	assert.Equal(t, "title is required", string(out.Body))
}

func TestRegisterClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewRegisterClient(config.RecruitConfig{RegisterURL: url, RegisterTimeout: time.Second})
	_, err := client.Register(context.Background(), []byte(`{}`))
	assert.ErrorContains(t, err, "recruit register request failed")
}
