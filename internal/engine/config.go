package engine

// Config хранит параметры движка. Значения по умолчанию повторяют
// поведение, на которое рассчитан фронтенд.
type Config struct {
	// MaxChatHistory — емкость кольца чата на сервере.
	MaxChatHistory int
	// WelcomeChatTail — сколько последних сообщений уезжает в welcome.
	WelcomeChatTail int
	// MaxChatLen — максимум символов в одном сообщении чата.
	MaxChatLen int
	// MaxNameLen — максимум символов в имени игрока.
	MaxNameLen int
}

// NewConfig создает конфиг по умолчанию.
func NewConfig() Config {
	return Config{
		MaxChatHistory:  50,
		WelcomeChatTail: 20,
		MaxChatLen:      200,
		MaxNameLen:      20,
	}
}
