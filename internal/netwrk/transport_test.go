package netwrk

import (
	"bufio"
	"bytes"
	"errors"
	"net"
	"testing"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestStreamWriteRejectsOversizedFrame(t *testing.T) {
	a, b := Pipe(8)
	defer a.Close()
	defer b.Close()

	if err := a.WriteFrame(make([]byte, 9)); !errors.Is(err, ErrFrameTooLarge) {
		t.Fatalf("write: err=%v want %v", err, ErrFrameTooLarge)
	}
}

func TestStreamReadRejectsOversizedFrame(t *testing.T) {
	raw, peer := net.Pipe()
	defer raw.Close()
	conn := NewStreamConn(peer, 8)
	defer conn.Close()

	go raw.Write(protowire.AppendVarint(nil, 100))

	if _, err := conn.ReadFrame(); !errors.Is(err, ErrFrameTooLarge) {
		t.Fatalf("read: err=%v want %v", err, ErrFrameTooLarge)
	}
}

func TestStreamFramesAreDelimitedBytes(t *testing.T) {
	raw, peer := net.Pipe()
	defer raw.Close()
	conn := NewStreamConn(peer, 0)
	defer conn.Close()

	go conn.WriteFrame([]byte("hello"))

	var got wrapperspb.BytesValue
	if err := protodelim.UnmarshalFrom(bufio.NewReader(raw), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(got.GetValue()) != "hello" {
		t.Fatalf("frame: got=%q", got.GetValue())
	}
}

func TestStreamPipeFrames(t *testing.T) {
	a, b := Pipe(0)
	defer a.Close()
	defer b.Close()

	frames := [][]byte{[]byte("one"), {}, bytes.Repeat([]byte{7}, 300)}
	go func() {
		for _, f := range frames {
			a.WriteFrame(f)
		}
	}()

	for i, want := range frames {
		got, err := b.ReadFrame()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("frame %d: got %d bytes, want %d", i, len(got), len(want))
		}
	}
}

func TestTransportsExchangeFrames(t *testing.T) {
	for _, transport := range []string{"tcp", "ws"} {
		t.Run(transport, func(t *testing.T) {
			ln, err := Listen(transport, "127.0.0.1:0", 0)
			if err != nil {
				t.Fatalf("listen: %v", err)
			}
			defer ln.Close()

			accepted := make(chan Conn, 1)
			go func() {
				c, err := ln.Accept()
				if err != nil {
					close(accepted)
					return
				}
				accepted <- c
			}()

			client, err := Dial(transport, ln.Addr(), 0)
			if err != nil {
				t.Fatalf("dial: %v", err)
			}
			defer client.Close()

			server, ok := <-accepted
			if !ok {
				t.Fatalf("accept failed")
			}
			defer server.Close()

			if err := client.WriteFrame([]byte("hello")); err != nil {
				t.Fatalf("client write: %v", err)
			}
			got, err := server.ReadFrame()
			if err != nil || string(got) != "hello" {
				t.Fatalf("server read: got=%q err=%v", got, err)
			}

			if err := server.WriteFrame([]byte("world")); err != nil {
				t.Fatalf("server write: %v", err)
			}
			got, err = client.ReadFrame()
			if err != nil || string(got) != "world" {
				t.Fatalf("client read: got=%q err=%v", got, err)
			}
		})
	}
}

func TestUnknownTransport(t *testing.T) {
	if _, err := Listen("udp", "127.0.0.1:0", 0); err == nil {
		t.Fatalf("expected error for unknown transport")
	}
	if _, err := Dial("udp", "127.0.0.1:1", 0); err == nil {
		t.Fatalf("expected error for unknown transport")
	}
}
