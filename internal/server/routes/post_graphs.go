package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/OFFIS-RIT/lingraph/internal/queue"
	"github.com/OFFIS-RIT/lingraph/internal/server/middleware"
	"github.com/OFFIS-RIT/lingraph/pkg/common"
	"github.com/OFFIS-RIT/lingraph/pkg/graph"
	"github.com/OFFIS-RIT/lingraph/pkg/loader"
	"github.com/OFFIS-RIT/lingraph/pkg/logger"
	"github.com/OFFIS-RIT/lingraph/pkg/vocab"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type graphResponse struct {
	DocumentID string                `json:"document_id"`
	Stats      []graph.ContractStats `json:"stats"`
	Graph      *graph.NodeLinkGraph  `json:"graph"`
}

func clientForRequest(c echo.Context) (*graph.GraphClient, error) {
	client := c.(*middleware.AppContext).App.Graph
	raw := c.QueryParams()["contract"]
	if len(raw) == 0 {
		return client, nil
	}
	types, err := vocab.ParseNodeTypeList(raw)
	if err != nil {
		return nil, err
	}
	return client.WithContractTypes(types)
}

func CreateGraphHandler(c echo.Context) error {
	client, err := clientForRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	doc := new(common.Document)
	if err := c.Bind(doc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(doc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if doc.Empty() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": loader.ErrEmptyDocument.Error()})
	}

	res, err := client.ProcessDocument(c.Request().Context(), doc)
	if err != nil {
		if errors.Is(err, vocab.ErrInvalidLabel) || errors.Is(err, common.ErrInvalidSentence) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		logger.Error("[Server] Failed to build graph", "document_id", doc.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	export, err := graph.Export(res.Graph)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, graphResponse{
		DocumentID: res.DocumentID,
		Stats:      res.Stats,
		Graph:      export,
	})
}

func CreateGraphJobHandler(c echo.Context) error {
	type createGraphJobBody struct {
		DocumentID    string                `json:"document_id" validate:"required"`
		FilePath      string                `json:"file_path" validate:"required"`
		Source        loader.DocumentSource `json:"source" validate:"omitempty,oneof=file s3"`
		ContractTypes []string              `json:"contract_types"`
	}

	ch := c.(*middleware.AppContext).App.Queue
	if ch == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Queue not configured"})
	}

	body := new(createGraphJobBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if _, err := vocab.ParseNodeTypeList(body.ContractTypes); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	correlationID, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	msg, err := json.Marshal(queue.QueueGraphMsg{
		DocumentID:    body.DocumentID,
		CorrelationID: correlationID,
		FilePath:      body.FilePath,
		Source:        body.Source,
		ContractTypes: body.ContractTypes,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	if err := queue.PublishFIFO(ch, queue.GraphQueue, msg); err != nil {
		logger.Error("[Server] Failed to enqueue graph job", "document_id", body.DocumentID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"document_id":    body.DocumentID,
		"correlation_id": correlationID,
	})
}
