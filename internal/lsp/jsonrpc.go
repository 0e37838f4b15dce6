package lsp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"strconv"
)

// maxFrameSize bounds a single message body; editors send whole documents
// on didOpen, so this is generous.
const maxFrameSize = 64 << 20

var errNoContentLength = errors.New("lsp: frame without Content-Length")

// readMessage reads one Content-Length framed JSON-RPC body. Header names
// are case-insensitive; headers other than Content-Length are ignored.
func readMessage(r *bufio.Reader) ([]byte, error) {
	header, err := textproto.NewReader(r).ReadMIMEHeader()
	if err != nil && !(errors.Is(err, io.EOF) && len(header) > 0) {
		return nil, err
	}
	raw := header.Get("Content-Length")
	if raw == "" {
		return nil, errNoContentLength
	}
	size, err := strconv.Atoi(raw)
	if err != nil || size < 0 {
		return nil, fmt.Errorf("lsp: bad Content-Length %q", raw)
	}
	if size > maxFrameSize {
		return nil, fmt.Errorf("lsp: frame of %d bytes exceeds %d", size, maxFrameSize)
	}
	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("lsp: short frame: %w", err)
	}
	return body, nil
}

// writeMessage emits header and body in one Write.
func writeMessage(w io.Writer, payload []byte) error {
	frame := make([]byte, 0, len(payload)+32)
	frame = append(frame, "Content-Length: "...)
	frame = strconv.AppendInt(frame, int64(len(payload)), 10)
	frame = append(frame, "\r\n\r\n"...)
	frame = append(frame, payload...)
	_, err := w.Write(frame)
	return err
}
