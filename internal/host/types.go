package host

// Channel tags the host-facing source a request arrived on.
type Channel uint8

const (
	ChannelUnset Channel = iota
	ChannelSerial
)

func (c Channel) String() string {
	switch c {
	case ChannelSerial:
		return "serial"
	default:
		return "unset"
	}
}

// Interface is the on-chip bus or subsystem a request targets.
type Interface uint8

const (
	InterfaceUnset Interface = iota
	InterfaceSMI
	InterfaceConfig
	InterfaceGPIO
	InterfaceJTAG
	InterfaceSPI
)

func (i Interface) String() string {
	switch i {
	case InterfaceSMI:
		return "smi"
	case InterfaceConfig:
		return "cfg"
	case InterfaceGPIO:
		return "gpio"
	case InterfaceJTAG:
		return "jtag"
	case InterfaceSPI:
		return "spi"
	default:
		return "unset"
	}
}

func (i Interface) valid() bool {
	return i >= InterfaceSMI && i <= InterfaceSPI
}

// Operation is the action requested on an Interface.
type Operation uint8

const (
	OperationUnset Operation = iota
	OperationRead
	OperationWrite
	// OperationSMISet is the register-bus "set" operation (bus clock and similar).
	OperationSMISet
)

func (o Operation) String() string {
	switch o {
	case OperationRead:
		return "r"
	case OperationWrite:
		return "w"
	case OperationSMISet:
		return "smiset"
	default:
		return "unset"
	}
}

func (o Operation) valid() bool {
	return o >= OperationRead && o <= OperationSMISet
}

// PayloadWords is the fixed payload capacity of a request.
const PayloadWords = 4

// Payload holds up to PayloadWords argument words. Slots at or beyond the
// request size are zero and carry no meaning.
type Payload [PayloadWords]uint32
