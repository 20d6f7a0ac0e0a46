package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El binario monta Swagger UI solo si docs/swagger.json existe. Este test
// verifica que el artefacto versionado sea JSON válido y cubra las rutas
// principales, para que el guard de main no lo deshabilite en silencio.
func TestSwaggerJSONVersionado(t *testing.T) {
	raw, err := os.ReadFile("../../docs/swagger.json")
	require.NoError(t, err, "docs/swagger.json debe estar versionado en el repo")

	var doc struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	for _, ruta := range []string{
		"/health",
		"/api/auth/login",
		"/api/products",
		"/api/cart/checkout",
		"/api/reports/sales",
		"/api/reports/sales/pdf",
		"/api/lots/{id}/items",
	} {
		assert.Contains(t, doc.Paths, ruta)
	}
}
