// Package rawframe provides fixed-size byte-array payload types for
// endpoints whose concrete Go type isn't known until a config file is
// read. A topic advertised from a YAML node definition carries raw bytes,
// not a named struct, so the bootstrap wiring picks one of these types by
// size rather than generating code per topic.
package rawframe

// Raw8, Raw16, Raw32, and Raw64 are the payload widths the bootstrap
// wiring can instantiate endpoint.LocalPublisher, endpoint.LocalSubscriber,
// remote.Publisher, and remote.Subscriber against. A topic's size is fixed
// at creation, so the width chosen at config time must match every
// endpoint ever bound to that topic name.
type (
	Raw8  [8]byte
	Raw16 [16]byte
	Raw32 [32]byte
	Raw64 [64]byte
)

// SizeOf reports the byte width of size, or 0 if size names none of the
// raw frame types.
func SizeOf(size int) int {
	switch size {
	case 8, 16, 32, 64:
		return size
	default:
		return 0
	}
}
