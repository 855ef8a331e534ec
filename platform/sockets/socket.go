package socket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/saimerit/monopoly-game/app/models"
	"github.com/saimerit/monopoly-game/app/service"
	"github.com/saimerit/monopoly-game/pkg/utils"
	"github.com/saimerit/monopoly-game/platform/logging"
	"github.com/sirupsen/logrus"
)

const (
	namespace     = "/"
	actionTimeout = 5 * time.Second
)

var errNotJoined = errors.New("join a game first")

type session struct {
	UserId string
	Name   string
	GameId string
}

type joinRequest struct {
	GameId string `json:"game_id"`
	Token  string `json:"token"`
}

type actionRequest struct {
	Action  string                 `json:"action"`
	Payload map[string]interface{} `json:"payload"`
}

// Server is the realtime surface: clients send actions and receive every
// committed state of the games they joined.
type Server struct {
	io     *socketio.Server
	svc    *service.GameService
	secret string
	log    *logrus.Entry
}

func NewServer(svc *service.GameService, secret string) (*Server, error) {
	io, err := socketio.NewServer(nil)
	if err != nil {
		return nil, err
	}
	s := &Server{io: io, svc: svc, secret: secret, log: logging.For("socket")}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.io.OnConnect(namespace, func(c socketio.Conn) error {
		c.SetContext(session{})
		return nil
	})

	s.io.OnEvent(namespace, "join-game", func(c socketio.Conn, jsonStr string) {
		var req joinRequest
		if err := json.Unmarshal([]byte(jsonStr), &req); err != nil || req.GameId == "" {
			c.Emit("error-message", "Invalid game")
			return
		}
		userId, name, err := utils.ParseToken(s.secret, req.Token)
		if err != nil {
			c.Emit("error-message", "User not authenticated")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()
		g, err := s.svc.State(ctx, req.GameId)
		if err != nil {
			c.Emit("error-message", "Invalid game")
			return
		}
		c.SetContext(session{UserId: userId, Name: name, GameId: g.Id})
		c.Join(g.Id)
		s.log.WithFields(logrus.Fields{"game_id": g.Id, "player_id": userId}).Debug("socket joined game")
		c.Emit("joined-game", encode(g))
	})

	s.io.OnEvent(namespace, "action", func(c socketio.Conn, jsonStr string) {
		sess, _ := c.Context().(session)
		if sess.GameId == "" {
			c.Emit("error-message", errNotJoined.Error())
			return
		}
		req, err := decodeAction(jsonStr)
		if err != nil {
			c.Emit("error-message", err.Error())
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()
		if _, _, err := s.svc.Dispatch(ctx, sess.GameId, sess.UserId, req.Action, req.Payload); err != nil {
			c.Emit("error-message", err.Error())
		}
	})

	s.io.OnEvent(namespace, "leave-game", func(c socketio.Conn) {
		if sess, ok := c.Context().(session); ok && sess.GameId != "" {
			c.Leave(sess.GameId)
			c.SetContext(session{})
		}
	})

	s.io.OnError(namespace, func(c socketio.Conn, e error) {
		s.log.WithError(e).Warn("socket error")
	})

	s.io.OnDisconnect(namespace, func(c socketio.Conn, reason string) {
		c.LeaveAll()
	})
}

func decodeAction(jsonStr string) (actionRequest, error) {
	var req actionRequest
	if err := json.Unmarshal([]byte(jsonStr), &req); err != nil {
		return req, service.ErrBadPayload
	}
	if req.Action == "" {
		return req, service.ErrUnknownAction
	}
	return req, nil
}

func encode(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// Publish implements service.Broadcaster.
func (s *Server) Publish(gameId string, g *models.Game, events []models.Event) {
	s.io.BroadcastToRoom(namespace, gameId, "game-state", encode(g))
	if len(events) > 0 {
		s.io.BroadcastToRoom(namespace, gameId, "game-events", encode(events))
	}
}

// Serve blocks serving socket.io behind CORS on addr.
func (s *Server) Serve(addr string, origins []string) error {
	go func() {
		if err := s.io.Serve(); err != nil {
			s.log.WithError(err).Error("socket server stopped")
		}
	}()
	defer s.io.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
	})
	mux := http.NewServeMux()
	mux.Handle("/socket.io/", s.io)
	s.log.WithField("addr", addr).Info("socket server listening")
	return http.ListenAndServe(addr, c.Handler(mux))
}
