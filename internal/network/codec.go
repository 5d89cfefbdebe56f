package network

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Codec frames messages as newline-delimited JSON over a stream connection.
// It works on any io.ReadWriter so tests can run it over an in-memory pipe.
type Codec struct {
	rw     io.ReadWriter
	reader *bufio.Reader
}

// NewCodec creates a new codec for the given connection
func NewCodec(rw io.ReadWriter) *Codec {
	return &Codec{
		rw:     rw,
		reader: bufio.NewReader(rw),
	}
}

// Send encodes a Message and sends it over the connection
func (c *Codec) Send(msgType MessageType, payload interface{}) error {
	msg := Message{
		Type:    msgType,
		Payload: payload,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	// Newline is the message delimiter
	data = append(data, '\n')

	if _, err := c.rw.Write(data); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// Receive reads a Message from the connection and decodes it
func (c *Codec) Receive() (*Message, error) {
	data, err := c.reader.ReadBytes('\n')
	if err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read message: %w", err)
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}

	return &msg, nil
}

// ParsePayload parses the raw payload into the specified type
func ParsePayload(msg *Message, target interface{}) error {
	// The payload arrives as map[string]interface{}; round-trip through JSON
	// to decode into the concrete payload struct.
	data, err := json.Marshal(msg.Payload)
	if err != nil {
		return fmt.Errorf("failed to re-encode payload: %w", err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}

	return nil
}
