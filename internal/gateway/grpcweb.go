package gateway

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"blood-donation-api/internal/api"
)

const (
	dataFrame    byte = 0x00
	trailerFrame byte = 0x80
)

var errShortFrame = errors.New("grpc-web frame too short")

// unframe returns the first data frame's payload.
// frame: 1-byte flag + 4-byte big-endian length + message
func unframe(body []byte) ([]byte, error) {
	if len(body) == 0 {
		return nil, nil
	}
	if len(body) < 5 {
		return nil, errShortFrame
	}
	if body[0]&trailerFrame != 0 {
		return nil, errors.New("expected a data frame")
	}
	if body[0]&0x01 != 0 {
		return nil, errors.New("compressed grpc-web frames are not supported")
	}
	n := binary.BigEndian.Uint32(body[1:5])
	if uint64(n)+5 > uint64(len(body)) {
		return nil, errors.New("incomplete grpc-web frame")
	}
	return body[5 : 5+n], nil
}

func frame(flag byte, data []byte) []byte {
	out := make([]byte, 5+len(data))
	out[0] = flag
	binary.BigEndian.PutUint32(out[1:5], uint32(len(data)))
	copy(out[5:], data)
	return out
}

// writeWeb always answers 200; the outcome travels in the trailer frame.
func writeWeb(w http.ResponseWriter, data []byte, st *status.Status) {
	w.Header().Set("Content-Type", "application/grpc-web+json")
	w.WriteHeader(http.StatusOK)
	if st.Code() == codes.OK {
		_, _ = w.Write(frame(dataFrame, data))
	}
	_, _ = w.Write(frame(trailerFrame, []byte(trailer(st))))
}

func trailer(st *status.Status) string {
	var b strings.Builder
	fmt.Fprintf(&b, "grpc-status:%d\r\n", st.Code())
	if st.Code() == codes.OK {
		return b.String()
	}
	fmt.Fprintf(&b, "grpc-message:%s\r\n", url.PathEscape(st.Message()))
	if len(st.Details()) > 0 {
		if bin, err := proto.Marshal(st.Proto()); err == nil {
			fmt.Fprintf(&b, "grpc-status-details-bin:%s\r\n", base64.RawStdEncoding.EncodeToString(bin))
		}
	}
	return b.String()
}

// rawMsg carries already-encoded JSON through the client connection.
type rawMsg struct{ data []byte }

// rawCodec passes bytes through untouched. Its name selects the server's
// JSON codec via the content subtype.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) {
	m, ok := v.(*rawMsg)
	if !ok {
		return nil, fmt.Errorf("raw codec: unexpected %T", v)
	}
	return m.data, nil
}

func (rawCodec) Unmarshal(data []byte, v any) error {
	m, ok := v.(*rawMsg)
	if !ok {
		return fmt.Errorf("raw codec: unexpected %T", v)
	}
	m.data = append([]byte(nil), data...)
	return nil
}

func (rawCodec) Name() string { return api.CodecName }
