package csa

import (
	"path/filepath"
	"testing"
)

func TestParquetSchemaMatchesSummaryStruct(t *testing.T) {
	schema, err := loadParquetSchema(filepath.Join("..", "..", "schema", "parquet_schema.json"))
	if err != nil {
		t.Fatalf("failed to load schema: %v", err)
	}
	if err := validateSchema(schema, GameSummary{}); err != nil {
		t.Fatalf("schema drifted from struct: %v", err)
	}
}
