package remote

import (
	"net/rpc"

	"escprint/pkg/bitmap"
	"escprint/pkg/proto"
)

func New(addr string) (proto.Control, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{rpc: client}, nil
}

type Client struct {
	rpc *rpc.Client
}

func (c *Client) Print(src *bitmap.Source) error {
	return c.rpc.Call("Service.Print", &PrintRequest{
		Pix:    src.Pix(),
		Width:  src.Width(),
		Height: src.Height(),
		Layout: int(src.Layout()),
	}, nil)
}

func (c *Client) Feed(lines uint8) error {
	return c.rpc.Call("Service.Feed", lines, nil)
}

func (c *Client) Cut() error {
	return c.rpc.Call("Service.Command", "cut", nil)
}

func (c *Client) Close() error {
	return c.rpc.Close()
}
