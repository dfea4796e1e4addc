package api

import (
	"errors"
	"testing"
)

func TestDecodeClientMessage(t *testing.T) {
	cases := []struct {
		name string
		msg  ClientMessage
	}{
		{"join", NewJoin("alice")},
		{"move", NewMove(3.5, 7.25)},
		{"room_change", NewRoomChange("keuken")},
		{"chat", NewChat("hoi allemaal")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data, err := Encode(c.msg)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}

			decoded, err := DecodeClientMessage(data)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if decoded != c.msg {
				t.Errorf("round trip: got %#v, want %#v", decoded, c.msg)
			}
			if got := TypeOf(decoded); got != c.name {
				t.Errorf("TypeOf = %q, want %q", got, c.name)
			}
		})
	}
}

func TestDecodeServerMessage(t *testing.T) {
	self := Player{ID: "p1", Name: "alice", X: 10, Y: 10, Color: "#FF6B6B", Room: "entree"}
	other := Player{ID: "p2", Name: "bob", X: 3, Y: 8, Color: "#4ECDC4", Room: "keuken"}
	chat := ChatMessage{ID: "m1", PlayerID: "p2", PlayerName: "bob", Text: "hoi", Timestamp: 1700000000000}

	cases := []struct {
		tag string
		msg ServerMessage
	}{
		{TypeWelcome, NewWelcome(self, []Player{other}, []ChatMessage{chat})},
		{TypePlayerJoined, NewPlayerJoined(other)},
		{TypePlayerLeft, NewPlayerLeft("p2")},
		{TypePlayerMoved, NewPlayerMoved("p2", 4.5, 8.5)},
		{TypePlayerRoomChanged, NewPlayerRoomChanged("p2", "badkamer")},
		{TypeChat, NewChatEvent(chat)},
		{TypeError, NewError("already joined")},
	}

	for _, c := range cases {
		t.Run(c.tag, func(t *testing.T) {
			data, err := Encode(c.msg)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}

			decoded, err := DecodeServerMessage(data)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}

			// Welcome carries slices, so compare the interesting parts by hand.
			switch want := c.msg.(type) {
			case Welcome:
				got, ok := decoded.(Welcome)
				if !ok {
					t.Fatalf("decoded as %T", decoded)
				}
				if got.Player != want.Player {
					t.Errorf("player: got %#v, want %#v", got.Player, want.Player)
				}
				if len(got.Players) != 1 || got.Players[0] != other {
					t.Errorf("players: got %#v", got.Players)
				}
				if len(got.RecentChat) != 1 || got.RecentChat[0] != chat {
					t.Errorf("recentChat: got %#v", got.RecentChat)
				}
			default:
				if decoded != c.msg {
					t.Errorf("round trip: got %#v, want %#v", decoded, c.msg)
				}
			}
		})
	}
}

func TestDecodeUnknownType(t *testing.T) {
	frames := [][]byte{
		[]byte(`{"type":"teleport","x":1}`),
		[]byte(`{"type":""}`),
		[]byte(`{}`),
	}

	for _, frame := range frames {
		if _, err := DecodeClientMessage(frame); err == nil {
			t.Errorf("client frame %s decoded without error", frame)
		} else {
			var unknown *ErrUnknownType
			if !errors.As(err, &unknown) {
				t.Errorf("client frame %s: error %v is not ErrUnknownType", frame, err)
			}
		}

		if _, err := DecodeServerMessage(frame); err == nil {
			t.Errorf("server frame %s decoded without error", frame)
		}
	}
}

func TestDecodeMalformedJSON(t *testing.T) {
	if _, err := DecodeClientMessage([]byte(`{"type":`)); err == nil {
		t.Error("malformed frame decoded without error")
	}
	var unknown *ErrUnknownType
	_, err := DecodeClientMessage([]byte(`not json`))
	if err == nil || errors.As(err, &unknown) {
		t.Errorf("malformed frame error = %v, want plain decode error", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		msg     Validator
		wantErr bool
	}{
		{"join ok", NewJoin("alice"), false},
		{"join empty name", NewJoin(""), true},
		{"room_change ok", NewRoomChange("tuin"), false},
		{"room_change empty", NewRoomChange(""), true},
		{"chat ok", NewChat("hi"), false},
		{"chat empty", NewChat(""), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.msg.Validate()
			if (err != nil) != c.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}
