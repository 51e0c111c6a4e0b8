// varuint-dump decodes a stream of CompactSize varints and prints the
// result as a single JSON object on stdout. Input is a hex string argument,
// or raw bytes on stdin with -stdin. Diagnostic warnings for suspiciously
// large values go to stderr.
package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"blockparse.dev/blockparse/proto"
)

type Item struct {
	Value uint64 `json:"value"`
	Len   int    `json:"len"`
	Hex   string `json:"hex"`
}

type Response struct {
	Ok     bool   `json:"ok"`
	Err    string `json:"err,omitempty"`
	Count  int    `json:"count"`
	Values []Item `json:"values,omitempty"`
}

func writeResp(w io.Writer, resp Response) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}

// decodeStream reads consecutive VarUints until raw is exhausted.
func decodeStream(codec *proto.Codec, raw []byte) Response {
	r := bytes.NewReader(raw)
	var items []Item
	for r.Len() > 0 {
		v, err := codec.ReadFrom(r)
		if err != nil {
			var ce *proto.CodecError
			if errors.As(err, &ce) {
				return Response{Ok: false, Err: string(ce.Code), Count: len(items), Values: items}
			}
			return Response{Ok: false, Err: err.Error(), Count: len(items), Values: items}
		}
		items = append(items, Item{
			Value: v.Value,
			Len:   v.Len(),
			Hex:   hex.EncodeToString(v.ToBytes()),
		})
	}
	return Response{Ok: true, Count: len(items), Values: items}
}

func main() {
	stdin := flag.Bool("stdin", false, "read raw bytes from stdin instead of a hex argument")
	threshold := flag.Uint64("threshold", proto.DefaultDiagThreshold, "warn about decoded values above this")
	flag.Parse()

	codec := &proto.Codec{
		Threshold: *threshold,
		Logger:    slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	var raw []byte
	var err error
	switch {
	case *stdin:
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			writeResp(os.Stdout, Response{Ok: false, Err: fmt.Sprintf("read stdin: %v", err)})
			return
		}
	case flag.NArg() == 1:
		raw, err = hex.DecodeString(flag.Arg(0))
		if err != nil {
			writeResp(os.Stdout, Response{Ok: false, Err: "bad hex"})
			return
		}
	default:
		writeResp(os.Stdout, Response{Ok: false, Err: "usage: varuint-dump [-threshold N] <hex> | varuint-dump -stdin"})
		return
	}

	writeResp(os.Stdout, decodeStream(codec, raw))
}
