package utils

import (
	"math/rand"

	"github.com/google/uuid"
)

// GenerateID создает уникальный строковый ID для игроков и сообщений чата.
func GenerateID() string {
	return uuid.NewString()
}

// palette — фиксированный набор цветов аватаров.
// Должен совпадать с палитрой, которую знает фронтенд.
var palette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4",
	"#FFEAA7", "#DDA0DD", "#98D8C8", "#F7DC6F",
	"#BB8FCE", "#85C1E9", "#F8B500", "#00CED1",
}

// RandomColor возвращает случайный цвет из палитры.
func RandomColor() string {
	return palette[rand.Intn(len(palette))]
}
