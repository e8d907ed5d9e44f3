package mux

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"showdown-server/internal/util"
	"showdown-server/pkg/room"
)

// wsTiming controls the keep-alive of a spectator connection
type wsTiming struct {
	write time.Duration
	pong  time.Duration
	close time.Duration
}

// ping is sent a little before the pong deadline expires
func (t wsTiming) ping() time.Duration {
	return t.pong * 9 / 10
}

var defaultWSTiming = wsTiming{
	write: 10 * time.Second,
	pong:  60 * time.Second,
	close: time.Second,
}

// wsSession is a single spectator connected to the dealer
type wsSession struct {
	client *room.Client
	timing wsTiming
	logger logrus.FieldLogger

	// closed once the read loop exits
	readDone chan struct{}
	sent     int
}

func (m *Mux) getMatchWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		client := room.NewClient(conn, util.GetRandomName(m.gen))
		s := &wsSession{
			client:   client,
			timing:   m.wsTiming,
			readDone: make(chan struct{}),
			logger: logrus.WithFields(logrus.Fields{
				"client": client.String(),
				"remote": remoteAddr(r),
			}),
		}

		s.logger.Debug("spectator connected")
		m.dealer.AddClient(client)

		defer func() {
			m.dealer.RemoveClient(client)
			_ = conn.Close()
			s.logger.WithField("sent", s.sent).Debug("spectator disconnected")
		}()

		writeDone := make(chan struct{})
		go func() {
			defer close(writeDone)
			s.writeLoop()
		}()

		s.readLoop()
		close(s.readDone)
		<-writeDone
	}
}

func (s *wsSession) extendReadDeadline() {
	_ = s.client.Conn.SetReadDeadline(time.Now().Add(s.timing.pong))
}

func (s *wsSession) write(messageType int, data []byte) error {
	_ = s.client.Conn.SetWriteDeadline(time.Now().Add(s.timing.write))
	return s.client.Conn.WriteMessage(messageType, data)
}

// writeLoop owns every write to the connection
func (s *wsSession) writeLoop() {
	ticker := time.NewTicker(s.timing.ping())
	defer func() {
		ticker.Stop()
		_ = s.client.Conn.Close()
	}()

	for {
		select {
		case <-s.readDone:
			return
		case <-ticker.C:
			if err := s.write(websocket.PingMessage, nil); err != nil {
				return
			}
		case reason := <-s.client.Close:
			_ = s.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason))

			// give the peer a chance to answer with its close frame
			select {
			case <-s.readDone:
			case <-time.After(s.timing.close):
			}
			return
		case msg := <-s.client.SendChan():
			data, err := json.Marshal(msg)
			if err != nil {
				s.logger.WithError(err).Error("could not encode message")
				continue
			}

			s.logger.WithField("message", string(data)).Trace("sending message")
			if err := s.write(websocket.TextMessage, data); err != nil {
				s.logger.WithError(err).Error("could not write message")
				return
			}

			s.sent++
		}
	}
}

// readLoop hands client actions to the dealer until the connection drops
func (s *wsSession) readLoop() {
	s.extendReadDeadline()
	s.client.Conn.SetPongHandler(func(string) error {
		s.extendReadDeadline()
		return nil
	})

	for {
		var msg room.PayloadIn
		if err := s.client.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.WithError(err).Error("could not read message")
			}

			s.client.CloseError = err
			return
		}

		s.client.ReceivedMessage(&msg)
	}
}
