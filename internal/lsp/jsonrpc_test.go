package lsp

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestJSONRPCFramingMultipleMessages(t *testing.T) {
	var buf bytes.Buffer
	msg1 := []byte(`{"jsonrpc":"2.0","method":"one"}`)
	msg2 := []byte(`{"jsonrpc":"2.0","method":"two"}`)

	if err := writeMessage(&buf, msg1); err != nil {
		t.Fatalf("write message 1: %v", err)
	}
	if err := writeMessage(&buf, msg2); err != nil {
		t.Fatalf("write message 2: %v", err)
	}

	reader := bufio.NewReader(bytes.NewReader(buf.Bytes()))
	got1, err := readMessage(reader)
	if err != nil {
		t.Fatalf("read message 1: %v", err)
	}
	got2, err := readMessage(reader)
	if err != nil {
		t.Fatalf("read message 2: %v", err)
	}
	if string(got1) != string(msg1) || string(got2) != string(msg2) {
		t.Fatalf("unexpected messages: %s / %s", got1, got2)
	}
}

func TestReadMessageHeaders(t *testing.T) {
	raw := "content-length: 2\r\nContent-Type: application/vscode-jsonrpc\r\n\r\n{}"
	got, err := readMessage(bufio.NewReader(strings.NewReader(raw)))
	if err != nil || string(got) != "{}" {
		t.Fatalf("readMessage = %q, %v", got, err)
	}

	if _, err := readMessage(bufio.NewReader(strings.NewReader("X-Other: 1\r\n\r\n{}"))); !errors.Is(err, errNoContentLength) {
		t.Fatalf("frame without Content-Length: err = %v", err)
	}
	if _, err := readMessage(bufio.NewReader(strings.NewReader("Content-Length: abc\r\n\r\n"))); err == nil {
		t.Fatal("expected an error for a malformed Content-Length")
	}
}

func TestReadMessageLimits(t *testing.T) {
	if _, err := readMessage(bufio.NewReader(strings.NewReader(""))); !errors.Is(err, io.EOF) {
		t.Fatalf("empty input: err = %v, want io.EOF", err)
	}

	huge := fmt.Sprintf("Content-Length: %d\r\n\r\n", maxFrameSize+1)
	if _, err := readMessage(bufio.NewReader(strings.NewReader(huge))); err == nil {
		t.Fatal("expected an error for an oversized frame")
	}

	short := "Content-Length: 10\r\n\r\n{}"
	if _, err := readMessage(bufio.NewReader(strings.NewReader(short))); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("truncated body: err = %v", err)
	}
}
