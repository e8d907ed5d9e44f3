package room

import (
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client receives the dealer's broadcasts
// Conn is nil for clients that are not connected over a websocket.
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer *Dealer
	name   string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, name string) *Client {
	return &Client{
		send:  make(chan interface{}, 256),
		Close: make(chan string),
		Conn:  conn,
		name:  name,
	}
}

// Send send a message to the client
// The message is dropped if the client is not keeping up.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	if c.Conn != nil {
		return fmt.Sprintf("%s:%s", c.name, c.Conn.RemoteAddr())
	}

	return c.name
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	switch msg.Action {
	case "pause":
		c.dealer.Pause()
		c.Send(OK(msg.Context))
	case "resume":
		c.dealer.Resume()
		c.Send(OK(msg.Context))
	case "state":
		c.Send(&Response{
			Key:     "state",
			Data:    c.dealer.State(),
			Context: msg.Context,
		})
	default:
		c.Send(newErrorResponse(msg.Context, errors.New("unknown action")))
	}
}
