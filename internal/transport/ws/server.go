package ws

import (
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/markkua/kubric/internal/scene"
)

// SceneSpawner — генератор объектов сцены, которым управляет сервер
type SceneSpawner interface {
	Populate(count int, rng *rand.Rand) ([]*scene.Object, error)
}

// MessageHandler — тип функции обработчика сообщений
type MessageHandler func(conn *SafeWriter, message interface{}) error

// Server представляет WebSocket сервер генерации сцен
type Server struct {
	upgrader websocket.Upgrader
	spawner  SceneSpawner
	handlers map[string]MessageHandler
	logger   *log.Logger
}

// NewServer создает новый экземпляр WebSocket сервера
func NewServer(spawner SceneSpawner, logger *log.Logger) *Server {
	server := &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		spawner:  spawner,
		handlers: make(map[string]MessageHandler),
		logger:   logger,
	}

	server.RegisterHandler(MessageTypeSpawn, server.handleSpawn)
	server.RegisterHandler(MessageTypePing, server.handlePing)

	return server
}

// RegisterHandler регистрирует обработчик для типа сообщения
func (s *Server) RegisterHandler(messageType string, handler MessageHandler) {
	s.handlers[messageType] = handler
}

// HandleWS обрабатывает входящее WebSocket соединение
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("[WSServer] Ошибка апгрейда соединения: %v", err)
		return
	}

	writer := NewSafeWriter(conn)
	defer writer.Close()

	if err := writer.WriteJSON(NewInfoMessage("connected")); err != nil {
		s.logger.Printf("[WSServer] Ошибка приветственного сообщения: %v", err)
		return
	}

	s.readLoop(writer)
}

// readLoop читает и диспетчеризует сообщения клиента до закрытия соединения
func (s *Server) readLoop(writer *SafeWriter) {
	for {
		_, data, err := writer.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Printf("[WSServer] Соединение закрыто с ошибкой: %v", err)
			}
			return
		}

		message, err := ParseMessage(data)
		if err != nil {
			s.logger.Printf("[WSServer] Ошибка разбора сообщения: %v", err)
			if writeErr := writer.WriteJSON(NewErrorMessage(err.Error())); writeErr != nil {
				return
			}
			continue
		}

		messageType, _ := getMessageType(message)
		handler, exists := s.handlers[messageType]
		if !exists {
			s.logger.Printf("[WSServer] Нет обработчика для типа %q", messageType)
			continue
		}

		if err := handler(writer, message); err != nil {
			s.logger.Printf("[WSServer] Ошибка обработчика %q: %v", messageType, err)
			if writeErr := writer.WriteJSON(NewErrorMessage(err.Error())); writeErr != nil {
				return
			}
		}
	}
}

// handleSpawn генерирует сцену и отправляет клиенту по одному сообщению
// на каждый размещенный объект
func (s *Server) handleSpawn(conn *SafeWriter, message interface{}) error {
	msg, ok := message.(*SpawnMessage)
	if !ok {
		return nil
	}

	seed := msg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s.logger.Printf("[WSServer] Запрос генерации: %d объектов, seed=%d", msg.Count, seed)

	placed, err := s.spawner.Populate(msg.Count, rng)

	// отправляем успешно размещенные объекты даже при частичном результате
	for _, obj := range placed {
		if writeErr := conn.WriteJSON(NewCreateMessage(obj)); writeErr != nil {
			return writeErr
		}
	}

	return err
}

// handlePing отвечает pong с серверным временем
func (s *Server) handlePing(conn *SafeWriter, message interface{}) error {
	msg, ok := message.(*PingMessage)
	if !ok {
		return nil
	}
	return conn.WriteJSON(&PongMessage{
		Type:       MessageTypePong,
		ClientTime: msg.ClientTime,
		ServerTime: GetCurrentServerTime(),
	})
}

// getMessageType возвращает тип разобранного сообщения
func getMessageType(message interface{}) (string, bool) {
	switch message.(type) {
	case *SpawnMessage:
		return MessageTypeSpawn, true
	case *PingMessage:
		return MessageTypePing, true
	default:
		return "", false
	}
}
