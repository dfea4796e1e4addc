package api

import (
	"encoding/json"
	"fmt"
)

// ErrUnknownType возвращается декодером для кадра с нераспознанным тегом.
// Вызывающий код обязан залогировать и проигнорировать такой кадр,
// а не ронять соединение.
type ErrUnknownType struct {
	Type string
}

func (e *ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown message type %q", e.Type)
}

// envelope нужен только чтобы вытащить дискриминатор.
type envelope struct {
	Type string `json:"type"`
}

// TypeOf возвращает тег варианта клиентского сообщения.
func TypeOf(m ClientMessage) string {
	switch m.(type) {
	case Join:
		return TypeJoin
	case Move:
		return TypeMove
	case RoomChange:
		return TypeRoomChange
	case Chat:
		return TypeChat
	default:
		return ""
	}
}

// Encode сериализует любое сообщение протокола в JSON-кадр.
func Encode(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	return data, nil
}

// DecodeClientMessage разбирает кадр клиент->сервер.
func DecodeClientMessage(data []byte) (ClientMessage, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode client frame: %w", err)
	}

	switch env.Type {
	case TypeJoin:
		var m Join
		return m, json.Unmarshal(data, &m)
	case TypeMove:
		var m Move
		return m, json.Unmarshal(data, &m)
	case TypeRoomChange:
		var m RoomChange
		return m, json.Unmarshal(data, &m)
	case TypeChat:
		var m Chat
		return m, json.Unmarshal(data, &m)
	default:
		return nil, &ErrUnknownType{Type: env.Type}
	}
}

// DecodeServerMessage разбирает кадр сервер->клиент.
func DecodeServerMessage(data []byte) (ServerMessage, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode server frame: %w", err)
	}

	switch env.Type {
	case TypeWelcome:
		var m Welcome
		return m, json.Unmarshal(data, &m)
	case TypePlayerJoined:
		var m PlayerJoined
		return m, json.Unmarshal(data, &m)
	case TypePlayerLeft:
		var m PlayerLeft
		return m, json.Unmarshal(data, &m)
	case TypePlayerMoved:
		var m PlayerMoved
		return m, json.Unmarshal(data, &m)
	case TypePlayerRoomChanged:
		var m PlayerRoomChanged
		return m, json.Unmarshal(data, &m)
	case TypeChat:
		var m ChatEvent
		return m, json.Unmarshal(data, &m)
	case TypeError:
		var m Error
		return m, json.Unmarshal(data, &m)
	default:
		return nil, &ErrUnknownType{Type: env.Type}
	}
}
