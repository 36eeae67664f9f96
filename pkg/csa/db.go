package csa

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// GameSummary is the flat dataset row for one parsed record.
type GameSummary struct {
	GameID      string `parquet:"name=game_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Dialect     string `parquet:"name=dialect, type=BYTE_ARRAY, convertedtype=UTF8"`
	BlackName   string `parquet:"name=black_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	WhiteName   string `parquet:"name=white_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Event       string `parquet:"name=event, type=BYTE_ARRAY, convertedtype=UTF8"`
	Site        string `parquet:"name=site, type=BYTE_ARRAY, convertedtype=UTF8"`
	MoveCount   int32  `parquet:"name=move_count, type=INT32"`
	Ending      string `parquet:"name=ending, type=BYTE_ARRAY, convertedtype=UTF8"`
	TotalTimeMs int64  `parquet:"name=total_time_ms, type=INT64"`
}

// SummaryFromRecord flattens a record into a dataset row. MoveCount counts
// normal moves only; Ending is the wire token of the last terminal event.
func SummaryFromRecord(gameID string, rec *GameRecord) GameSummary {
	summary := GameSummary{
		GameID:    gameID,
		Dialect:   rec.Version.String(),
		BlackName: rec.BlackPlayer,
		WhiteName: rec.WhitePlayer,
		Event:     rec.Event,
		Site:      rec.Site,
	}
	var total time.Duration
	moveCount := 0
	for _, mv := range rec.Moves {
		if mv.Action.Kind == ActionMove {
			moveCount++
		} else {
			summary.Ending = mv.Action.EventToken()
		}
		if mv.HasElapsed {
			total += mv.Elapsed
		}
	}
	summary.MoveCount = int32(moveCount)
	summary.TotalTimeMs = total.Milliseconds()
	return summary
}

type ParquetSchema struct {
	Name   string         `json:"name"`
	Fields []ParquetField `json:"fields"`
}

type ParquetField struct {
	Name     string      `json:"name"`
	Type     interface{} `json:"type"`
	Nullable bool        `json:"nullable"`
}

const schemaPath = "schema/parquet_schema.json"

func WriteParquet(path string, summaries <-chan GameSummary, parallel int64) error {
	fmt.Printf("writing parquet to %s\n", path)

	schema, err := loadParquetSchema(schemaPath)
	if err != nil {
		return err
	}
	if err := validateSchema(schema, GameSummary{}); err != nil {
		return err
	}

	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	defer fileWriter.Close()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(GameSummary), parallel)
	if err != nil {
		return err
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for summary := range summaries {
		if err := parquetWriter.Write(summary); err != nil {
			return err
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		return err
	}
	return fileWriter.Close()
}

func loadParquetSchema(path string) (ParquetSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ParquetSchema{}, err
	}
	var schema ParquetSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return ParquetSchema{}, err
	}
	return schema, nil
}

func validateSchema(schema ParquetSchema, sample any) error {
	schemaFields := make(map[string]struct{}, len(schema.Fields))
	for _, field := range schema.Fields {
		schemaFields[field.Name] = struct{}{}
	}
	structFields := structParquetFieldNames(sample)
	missing := diffKeys(schemaFields, structFields)
	extra := diffKeys(structFields, schemaFields)
	if len(missing) > 0 || len(extra) > 0 {
		return fmt.Errorf("parquet schema mismatch: missing=%v extra=%v", missing, extra)
	}
	return nil
}

func structParquetFieldNames(sample any) map[string]struct{} {
	fields := map[string]struct{}{}
	v := reflect.TypeOf(sample)
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		name := parseParquetName(field.Tag.Get("parquet"))
		if name != "" {
			fields[name] = struct{}{}
		}
	}
	return fields
}

func parseParquetName(tag string) string {
	if tag == "" {
		return ""
	}
	parts := strings.Split(tag, ",")
	for _, part := range parts {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) == 2 && kv[0] == "name" {
			return kv[1]
		}
	}
	return ""
}

func diffKeys(a, b map[string]struct{}) []string {
	var diff []string
	for key := range a {
		if _, ok := b[key]; !ok {
			diff = append(diff, key)
		}
	}
	return diff
}
