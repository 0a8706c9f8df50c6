package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

var errNoPayload = errors.New("request carries no payload")

// payloadBytes accepts either a JSON array of byte values or a base64 string.
type payloadBytes []byte

func (p *payloadBytes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		decoded, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return fmt.Errorf("decode base64 payload: %w", err)
		}
		*p = decoded
		return nil
	}
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	out := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 0xFF {
			return fmt.Errorf("payload byte %d out of range: %d", i, v)
		}
		out[i] = byte(v)
	}
	*p = out
	return nil
}

// uplinkRequest accepts the payload formatter input shape ({"bytes": [...]}),
// a flat {"frm_payload": "..."} body, and the network server webhook shape
// with an uplink_message object.
type uplinkRequest struct {
	Bytes         payloadBytes   `json:"bytes"`
	FrmPayload    payloadBytes   `json:"frm_payload"`
	FPort         int            `json:"f_port"`
	UplinkMessage *uplinkMessage `json:"uplink_message"`
}

type uplinkMessage struct {
	FrmPayload payloadBytes `json:"frm_payload"`
	FPort      int          `json:"f_port"`
}

func (r uplinkRequest) payload() ([]byte, int, error) {
	switch {
	case len(r.Bytes) > 0:
		return r.Bytes, r.FPort, nil
	case len(r.FrmPayload) > 0:
		return r.FrmPayload, r.FPort, nil
	case r.UplinkMessage != nil && len(r.UplinkMessage.FrmPayload) > 0:
		return r.UplinkMessage.FrmPayload, r.UplinkMessage.FPort, nil
	default:
		return nil, 0, errNoPayload
	}
}
