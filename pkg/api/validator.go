package api

import "errors"

// Validator - интерфейс, который могут реализовать сообщения протокола.
// Сервер валидирует кадр сразу после декодирования.
type Validator interface {
	Validate() error
}

func (m Join) Validate() error {
	if m.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func (m RoomChange) Validate() error {
	if m.Room == "" {
		return errors.New("room is required")
	}
	return nil
}

func (m Chat) Validate() error {
	if m.Text == "" {
		return errors.New("text is required")
	}
	return nil
}
