package server

import (
	"encoding/json"
	"net/http"

	"mansion-server/internal/engine"
	"mansion-server/pkg/logger"
)

// Server — HTTP-обертка движка: апгрейд WebSocket на /ws и проба
// живости. Контракт HTTP-поверхности жесткий: "/" и "/health" отвечают
// JSON-статусом, ЛЮБОЙ другой путь — 404 без тела.
type Server struct {
	Engine *engine.GameService
	Port   string
}

func New(engine *engine.GameService, port string) *Server {
	return &Server{
		Engine: engine,
		Port:   port,
	}
}

// Run запускает HTTP сервер.
func (s *Server) Run() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/", enableCORS(s.handleHealth))

	logger.Log.Infof("Mansion server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.Engine, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

// handleHealth — проба живости: статус и число игроков.
// Висит на "/", поэтому сам отфильтровывает все прочие пути.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/health" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"players": s.Engine.PlayerCount(),
	}); err != nil {
		logger.Log.WithError(err).Warn("failed to write health response")
	}
}
