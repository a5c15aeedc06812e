package routes

import (
	"net/http"

	"github.com/OFFIS-RIT/lingraph/pkg/loader"
	"github.com/OFFIS-RIT/lingraph/pkg/vocab"

	"github.com/labstack/echo/v4"
)

func GetSchemaHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, loader.DocumentSchema())
}

func GetVocabularyHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"node_types":           vocab.NodeTypes(),
		"edge_types":           vocab.EdgeTypes(),
		"universal_pos_tags":   vocab.UniversalPOSTags(),
		"named_entity_labels":  vocab.NamedEntityLabels(),
		"dependency_relations": vocab.DependencyLabels(),
	})
}
