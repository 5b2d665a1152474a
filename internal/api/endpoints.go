package api

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

//go:embed endpoints.yaml
var endpointsYAML []byte

// LoadEndpoints decodes the endpoint directory served at GET /api
func LoadEndpoints(raw []byte) (map[string]interface{}, error) {
	endpoints := map[string]interface{}{}
	if err := yaml.Unmarshal(raw, &endpoints); err != nil {
		return nil, fmt.Errorf("decode endpoint directory: %w", err)
	}
	return endpoints, nil
}

func mustLoadEndpoints() map[string]interface{} {
	endpoints, err := LoadEndpoints(endpointsYAML)
	if err != nil {
		panic(err)
	}
	return endpoints
}

// endpointsHandler serves the static endpoint directory
func endpointsHandler(endpoints map[string]interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"endpoints": endpoints})
	}
}
