package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	path        string
	contentType string
	body        map[string]any
}

type fakeGateway struct {
	mu     sync.Mutex
	calls  []recordedCall
	status int
	reply  string
}

func (f *fakeGateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{path: r.URL.Path, contentType: r.Header.Get("Content-Type"), body: body})
	status, reply := f.status, f.reply
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, reply)
}

func (f *fakeGateway) recorded() []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedCall{}, f.calls...)
}

func newTestClient(t *testing.T, fake *fakeGateway) (*Client, *test.Hook) {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	logger, hook := test.NewNullLogger()
	return NewClient(srv.URL+"/", 5*time.Second, logger), hook
}

func TestPost_BlockingSuccess(t *testing.T) {
	fake := &fakeGateway{reply: `{"users":[{"username":"bob"}]}`}
	client, _ := newTestClient(t, fake)

	got, err := client.FindSimilar(context.Background(), SkillProfile{
		ProfileImg: "img",
		Username:   "ada",
		Skills:     []string{"Python"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"users":[{"username":"bob"}]}`, string(got))

	calls := fake.recorded()
	require.Len(t, calls, 1)
	call := calls[0]
	assert.Equal(t, PathFindSimilar, call.path)
	assert.Equal(t, "application/json", call.contentType)
	assert.Equal(t, "ada", call.body["username"])
	assert.Equal(t, "img", call.body["profileImg"])
	assert.Equal(t, []any{"Python"}, call.body["skills"])
}

func TestPost_BlockingStatusError(t *testing.T) {
	fake := &fakeGateway{status: http.StatusBadGateway, reply: `{"detail":"down"}`}
	client, hook := newTestClient(t, fake)

	_, err := client.GenerateQuiz(context.Background(), "Go", "easy")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, PathGenerateQuiz, statusErr.Path)
	assert.JSONEq(t, `{"detail":"down"}`, string(statusErr.Body))
	assert.Empty(t, hook.AllEntries())

	calls := fake.recorded()
	assert.Equal(t, "Go", calls[0].body["topic"])
	assert.Equal(t, "easy", calls[0].body["difficulty"])
}

func TestPost_BlockingRejectsNonJSON(t *testing.T) {
	client, _ := newTestClient(t, &fakeGateway{reply: `<html>oops</html>`})

	_, err := client.FieldDetails(context.Background(), "Data Science")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPost_FireAndForgetSwallowsFailures(t *testing.T) {
	fake := &fakeGateway{status: http.StatusInternalServerError, reply: `{}`}
	client, hook := newTestClient(t, fake)

	client.StoreSkills(context.Background(), SkillProfile{Username: "ada", Skills: []string{"Dsa"}})
	client.AddHackathon(context.Background(), HackathonNotice{Name: "Hack", RequiredSkills: []string{"Os"}})

	calls := fake.recorded()
	require.Len(t, calls, 2)
	assert.Equal(t, PathStoreSkills, calls[0].path)
	assert.Equal(t, PathAddHackathon, calls[1].path)
	assert.Equal(t, []any{"Os"}, calls[1].body["required_skills"])

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, PathStoreSkills, entries[0].Data["path"])
}

func TestPost_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	logger, hook := test.NewNullLogger()
	client := NewClient(url, time.Second, logger)

	_, err := client.Roadmap(context.Background(), RoadmapRequest{Skills: []string{"Os"}, CareerPath: "DevOps"})
	assert.ErrorIs(t, err, ErrUnavailable)

	got, err := client.Post(context.Background(), FireAndForget, PathStoreSkills, SkillProfile{})
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.Len(t, hook.AllEntries(), 1)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "blocking", Blocking.String())
	assert.Equal(t, "fire-and-forget", FireAndForget.String())
}
