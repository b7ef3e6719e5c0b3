package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	llmv1 "github.com/sundialhq/maestro/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCClient implements Client by calling the LLM sidecar via gRPC.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

var _ Client = (*GRPCClient)(nil)

// NewGRPCClient creates a new gRPC LLM client.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
	}, nil
}

// Complete collects the full streamed response.
func (c *GRPCClient) Complete(ctx context.Context, req Request) (string, error) {
	ch, err := c.Stream(ctx, req)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for chunk := range ch {
		if chunk.Err != nil {
			return "", chunk.Err
		}
		b.WriteString(chunk.Content)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Stream opens the server-side stream and forwards deltas on a channel.
func (c *GRPCClient) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)

	stream, err := c.client.Complete(ctx, toProtoRequest(req))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("gRPC Complete call failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		defer cancel()
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				// Surface the caller's cancellation as ctx.Err rather than
				// a gRPC status string.
				if ctxErr := ctx.Err(); ctxErr != nil {
					err = ctxErr
				}
				select {
				case ch <- Chunk{Err: err}:
				default:
				}
				return
			}
			chunk, ok := fromProtoResponse(resp)
			if !ok {
				continue
			}
			select {
			case ch <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func toProtoRequest(req Request) *llmv1.CompleteRequest {
	out := &llmv1.CompleteRequest{
		RequestId:      req.RequestID,
		Temperature:    float32(req.Temperature),
		ResponseFormat: string(req.Format),
	}
	if out.ResponseFormat == "" {
		out.ResponseFormat = string(FormatText)
	}
	for _, m := range req.Messages {
		out.Messages = append(out.Messages, &llmv1.Message{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return out
}

func fromProtoResponse(resp *llmv1.CompleteResponse) (Chunk, bool) {
	switch c := resp.Content.(type) {
	case *llmv1.CompleteResponse_Delta:
		return Chunk{Content: c.Delta.Content}, true
	case *llmv1.CompleteResponse_Error:
		return Chunk{Err: errors.New(c.Error.Message)}, true
	default:
		// Usage chunks carry no text.
		return Chunk{}, false
	}
}
