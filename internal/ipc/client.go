package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"

	"deskresolve/pkg/core"
)

// Client sends requests to a running daemon.
type Client struct {
	path string
	log  core.Logger
}

func NewClient(path string, log core.Logger) *Client {
	return &Client{path: path, log: log}
}

// Send performs one request. A response with status "error" is returned as
// an error carrying the daemon's message.
func (c *Client) Send(ctx context.Context, req Request) (Response, error) {
	c.log.Debug("Attempting to connect to socket server", "path", c.path)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", c.path)
	if err != nil {
		return Response{}, fmt.Errorf("failed to connect to %s: %w", c.path, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if err := json.NewEncoder(conn).Encode(req); err != nil {
		return Response{}, fmt.Errorf("failed to encode request: %w", err)
	}

	var resp Response
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return Response{}, fmt.Errorf("failed to decode response: %w", err)
	}
	c.log.Debug("Response received", "command", req.Command, "status", resp.Status)

	if !resp.OK() {
		return resp, errors.New(resp.Message)
	}
	return resp, nil
}
