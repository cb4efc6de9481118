package host

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrIncompleteRequest = errors.New("host: incomplete request")
	ErrPayloadTooLarge   = errors.New("host: payload too large")
)

// Request is a draft hardware request. It is populated field by field and
// must be sealed before anything may execute it.
type Request struct {
	channel   Channel
	iface     Interface
	operation Operation
	size      uint8
	payload   Payload
}

// NewRequest returns an empty draft.
func NewRequest() *Request {
	return &Request{}
}

// SetChannel records where the request arrived from.
func (r *Request) SetChannel(c Channel) {
	r.channel = c
}

// SetInterface selects the target bus.
func (r *Request) SetInterface(i Interface) {
	r.iface = i
}

// SetOperation selects the bus operation.
func (r *Request) SetOperation(o Operation) {
	r.operation = o
}

// SetPayload copies words into the payload and sets size to len(words).
func (r *Request) SetPayload(words []uint32) error {
	if len(words) > PayloadWords {
		return fmt.Errorf("%w: %d words", ErrPayloadTooLarge, len(words))
	}
	var p Payload
	copy(p[:], words)
	r.payload = p
	r.size = uint8(len(words))
	return nil
}

// Draft accessors.
func (r *Request) Channel() Channel     { return r.channel }
func (r *Request) Interface() Interface { return r.iface }
func (r *Request) Operation() Operation { return r.operation }
func (r *Request) Size() uint8          { return r.size }
func (r *Request) Payload() Payload     { return r.payload }

// Seal checks the draft is complete and returns its validated form. It is
// the only way to construct a Valid request.
func (r *Request) Seal() (Valid, error) {
	if r == nil {
		return Valid{}, wrapIncomplete("nil request")
	}
	if r.channel == ChannelUnset {
		return Valid{}, wrapIncomplete("missing channel")
	}
	if !r.iface.valid() {
		return Valid{}, wrapIncomplete("missing interface")
	}
	if !r.operation.valid() {
		return Valid{}, wrapIncomplete("missing operation")
	}
	if r.size > PayloadWords {
		return Valid{}, wrapIncomplete(fmt.Sprintf("size %d exceeds payload capacity", r.size))
	}
	for i := int(r.size); i < PayloadWords; i++ {
		if r.payload[i] != 0 {
			return Valid{}, wrapIncomplete(fmt.Sprintf("payload slot %d set beyond size %d", i, r.size))
		}
	}
	return Valid{
		channel:   r.channel,
		iface:     r.iface,
		operation: r.operation,
		size:      r.size,
		payload:   r.payload,
	}, nil
}

func wrapIncomplete(reason string) error {
	return fmt.Errorf("%w: %s", ErrIncompleteRequest, reason)
}

// Valid is a sealed request. Its zero value is not a usable request; only
// Request.Seal produces one.
type Valid struct {
	channel   Channel
	iface     Interface
	operation Operation
	size      uint8
	payload   Payload
}

func (v Valid) Channel() Channel     { return v.channel }
func (v Valid) Interface() Interface { return v.iface }
func (v Valid) Operation() Operation { return v.operation }
func (v Valid) Size() uint8          { return v.size }
func (v Valid) Payload() Payload     { return v.payload }

// Words returns a copy of the meaningful payload prefix.
func (v Valid) Words() []uint32 {
	out := make([]uint32, v.size)
	copy(out, v.payload[:v.size])
	return out
}

func (v Valid) String() string {
	return fmt.Sprintf("%s %s %v", v.iface, v.operation, v.Words())
}

type validJSON struct {
	Channel   string   `json:"channel"`
	Interface string   `json:"interface"`
	Operation string   `json:"operation"`
	Size      uint8    `json:"size"`
	Payload   []uint32 `json:"payload"`
}

func (v Valid) MarshalJSON() ([]byte, error) {
	return json.Marshal(validJSON{
		Channel:   v.channel.String(),
		Interface: v.iface.String(),
		Operation: v.operation.String(),
		Size:      v.size,
		Payload:   v.Words(),
	})
}
