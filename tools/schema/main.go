package main

// Генератор JSON-схемы проводного протокола. Схема отдается команде
// фронтенда, чтобы типы сообщений на двух концах не расходились молча.
//
// Использование: go run ./tools/schema -out docs/protocol.schema.json

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"mansion-server/pkg/api"
)

// wireCatalog перечисляет все кадры протокола в одном месте,
// чтобы рефлектор собрал их в единый документ.
type wireCatalog struct {
	Join              api.Join              `json:"join"`
	Move              api.Move              `json:"move"`
	RoomChange        api.RoomChange        `json:"room_change"`
	Chat              api.Chat              `json:"chat"`
	Welcome           api.Welcome           `json:"welcome"`
	PlayerJoined      api.PlayerJoined      `json:"player_joined"`
	PlayerLeft        api.PlayerLeft        `json:"player_left"`
	PlayerMoved       api.PlayerMoved       `json:"player_moved"`
	PlayerRoomChanged api.PlayerRoomChanged `json:"player_room_changed"`
	ChatEvent         api.ChatEvent         `json:"chat_event"`
	Error             api.Error             `json:"error"`
}

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	schema := buildSchema()

	if err := writeSchema(outPath, schema); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(wireCatalog))
	schema.Title = "Mansion Wire Protocol"
	schema.Description = "Message frames exchanged between the mansion server and its clients"
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
