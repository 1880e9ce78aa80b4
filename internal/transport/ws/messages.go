package ws

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/markkua/kubric/internal/scene"
)

// Типы сообщений протокола
const (
	MessageTypeSpawn  = "spawn"
	MessageTypeCreate = "create"
	MessageTypeError  = "error"
	MessageTypeInfo   = "info"
	MessageTypePing   = "ping"
	MessageTypePong   = "pong"
)

// SpawnMessage — запрос клиента на генерацию сцены
type SpawnMessage struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	Seed  int64  `json:"seed,omitempty"`
}

// CreateMessage — уведомление о размещенном объекте
type CreateMessage struct {
	Type       string  `json:"type"`
	ID         string  `json:"id"`
	ObjectType string  `json:"object_type"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	QX         float64 `json:"qx"`
	QY         float64 `json:"qy"`
	QZ         float64 `json:"qz"`
	QW         float64 `json:"qw"`
	Radius     float64 `json:"radius,omitempty"`
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	Depth      float64 `json:"depth,omitempty"`
	Color      string  `json:"color"`
	ServerTime int64   `json:"server_time"`
}

// ErrorMessage — сообщение об ошибке обработки запроса
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// InfoMessage — информационное сообщение сервера
type InfoMessage struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	ServerTime int64  `json:"server_time"`
}

// PingMessage — запрос проверки соединения
type PingMessage struct {
	Type       string `json:"type"`
	ClientTime int64  `json:"client_time"`
}

// PongMessage — ответ на ping
type PongMessage struct {
	Type       string `json:"type"`
	ClientTime int64  `json:"client_time"`
	ServerTime int64  `json:"server_time"`
}

// GetCurrentServerTime возвращает текущее серверное время в миллисекундах
func GetCurrentServerTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// NewCreateMessage строит сообщение о размещенном объекте сцены
func NewCreateMessage(obj *scene.Object) *CreateMessage {
	msg := &CreateMessage{
		Type:       MessageTypeCreate,
		ID:         obj.ID,
		X:          obj.Position.X(),
		Y:          obj.Position.Y(),
		Z:          obj.Position.Z(),
		QX:         obj.Rotation.X(),
		QY:         obj.Rotation.Y(),
		QZ:         obj.Rotation.Z(),
		QW:         obj.Rotation.W,
		Color:      obj.Color,
		ServerTime: GetCurrentServerTime(),
	}

	switch obj.Shape.Type {
	case scene.SPHERE:
		msg.ObjectType = "sphere"
		msg.Radius = obj.Shape.Sphere.Radius
	case scene.BOX:
		msg.ObjectType = "box"
		msg.Width = obj.Shape.Box.Width
		msg.Height = obj.Shape.Box.Height
		msg.Depth = obj.Shape.Box.Depth
	}

	return msg
}

// NewErrorMessage создает сообщение об ошибке
func NewErrorMessage(message string) *ErrorMessage {
	return &ErrorMessage{
		Type:    MessageTypeError,
		Message: message,
	}
}

// NewInfoMessage создает информационное сообщение
func NewInfoMessage(message string) *InfoMessage {
	return &InfoMessage{
		Type:       MessageTypeInfo,
		Message:    message,
		ServerTime: GetCurrentServerTime(),
	}
}

// ParseMessage разбирает входящее сообщение в соответствующий тип
func ParseMessage(data []byte) (interface{}, error) {
	var baseMessage struct {
		Type string `json:"type"`
	}

	if err := json.Unmarshal(data, &baseMessage); err != nil {
		return nil, fmt.Errorf("error parsing message: %w", err)
	}

	switch baseMessage.Type {
	case MessageTypeSpawn:
		var msg SpawnMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("error parsing spawn message: %w", err)
		}
		return &msg, nil

	case MessageTypePing:
		var msg PingMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("error parsing ping message: %w", err)
		}
		return &msg, nil

	default:
		return nil, errors.New("unknown message type: " + baseMessage.Type)
	}
}
