package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/OFFIS-RIT/lingraph/internal/queue"
	"github.com/OFFIS-RIT/lingraph/pkg/graph"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChannel struct {
	keys   []string
	bodies [][]byte
}

func (c *recordingChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error) {
	return amqp091.Queue{Name: name}, nil
}

func (c *recordingChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	c.keys = append(c.keys, key)
	c.bodies = append(c.bodies, msg.Body)
	return nil
}

const twoSentenceDocument = `{
  "id": "doc-1",
  "paragraphs": [{"text": "Alice sleeps. Alice sleeps.", "sentences": [
    {"id": 0, "text": "Alice sleeps.", "tokens": [
      {"i": 0, "text": "Alice", "pos": "PROPN", "dep": "nsubj", "head": 1},
      {"i": 1, "text": "sleeps", "pos": "VERB", "dep": "ROOT", "head": 1}
    ], "ents": [{"label": "PERSON", "start": 0, "end": 1}]},
    {"id": 1, "text": "Alice sleeps.", "tokens": [
      {"i": 0, "text": "Alice", "pos": "PROPN", "dep": "nsubj", "head": 1},
      {"i": 1, "text": "sleeps", "pos": "VERB", "dep": "ROOT", "head": 1}
    ], "ents": [{"label": "PERSON", "start": 0, "end": 1}]}
  ]}]
}`

func newTestServer(t *testing.T, ch queue.Channel) http.Handler {
	t.Helper()
	client, err := graph.NewGraphClient(graph.NewGraphClientParams{ParallelSentences: 2})
	require.NoError(t, err)
	return New(client, ch)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestGetSchema(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodGet, "/api/schema", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schema))
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "paragraphs")
	assert.Contains(t, props, "sentences")
}

func TestGetVocabulary(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodGet, "/api/vocabulary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body["node_types"], 5)
	assert.Contains(t, body["dependency_relations"], "MARK")
}

func TestCreateGraph(t *testing.T) {
	tests := []struct {
		name   string
		target string
		nodes  int
		stats  int
	}{
		// paragraph + 2 * (sentence, entity, 2 tokens, 2 pos) = 13
		{name: "default token contraction", target: "/api/graphs", nodes: 11, stats: 1},
		{name: "no matching override", target: "/api/graphs?contract=PARAGRAPH", nodes: 13, stats: 1},
		{name: "several categories", target: "/api/graphs?contract=TOKEN&contract=NER&contract=UNIVERSALPOS", nodes: 8, stats: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(t, nil), http.MethodPost, tt.target, twoSentenceDocument)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var body struct {
				DocumentID string                `json:"document_id"`
				Stats      []graph.ContractStats `json:"stats"`
				Graph      graph.NodeLinkGraph   `json:"graph"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "doc-1", body.DocumentID)
			assert.Len(t, body.Stats, tt.stats)
			assert.Len(t, body.Graph.Nodes, tt.nodes)
			assert.True(t, body.Graph.Directed)
		})
	}
}

func TestCreateGraphBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{name: "malformed body", target: "/api/graphs", body: `{"paragraphs": [`},
		{name: "empty document", target: "/api/graphs", body: `{"id": "doc-1"}`},
		{name: "unknown category", target: "/api/graphs?contract=WORD", body: twoSentenceDocument},
		{name: "unknown pos", target: "/api/graphs", body: strings.Replace(twoSentenceDocument, `"VERB"`, `"VB"`, 1)},
		{name: "entity without label", target: "/api/graphs", body: strings.Replace(twoSentenceDocument, `"PERSON"`, `""`, 1)},
		{name: "head outside sentence", target: "/api/graphs", body: strings.Replace(twoSentenceDocument, `"head": 1}`, `"head": 9}`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(t, nil), http.MethodPost, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestCreateGraphJob(t *testing.T) {
	t.Run("without queue", func(t *testing.T) {
		rec := do(t, newTestServer(t, nil), http.MethodPost, "/api/graphs/jobs", `{"document_id": "doc-1", "file_path": "docs/1.json"}`)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("enqueues message", func(t *testing.T) {
		ch := &recordingChannel{}
		rec := do(t, newTestServer(t, ch), http.MethodPost, "/api/graphs/jobs",
			`{"document_id": "doc-1", "file_path": "docs/1.json", "source": "s3", "contract_types": ["token"]}`)
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["correlation_id"])

		require.Equal(t, []string{queue.GraphQueue}, ch.keys)
		var msg queue.QueueGraphMsg
		require.NoError(t, json.Unmarshal(ch.bodies[0], &msg))
		assert.Equal(t, "doc-1", msg.DocumentID)
		assert.Equal(t, resp["correlation_id"], msg.CorrelationID)
		assert.Equal(t, []string{"token"}, msg.ContractTypes)
	})

	t.Run("invalid job", func(t *testing.T) {
		tests := []string{
			`{"file_path": "docs/1.json"}`,
			`{"document_id": "doc-1", "file_path": "docs/1.json", "source": "ftp"}`,
			`{"document_id": "doc-1", "file_path": "docs/1.json", "contract_types": ["WORD"]}`,
		}
		for _, body := range tests {
			ch := &recordingChannel{}
			rec := do(t, newTestServer(t, ch), http.MethodPost, "/api/graphs/jobs", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.Empty(t, ch.keys)
		}
	})
}
