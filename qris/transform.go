package qris

import (
	// Go Internal Packages
	"fmt"
	"strings"

	// Local Packages
	errors "qris-stream/errors"
)

// crcHeader is the CRC record's tag and declared length. The checksum
// covers the whole payload up to and including this header, so it is
// appended before the CRC is computed.
const crcHeader = TagCRC + "04"

// Transform converts a static QRIS payload into a dynamic one committed to
// amount. Tag 01 is forced to "12" regardless of its prior value and tag 54
// is set to amount verbatim: the caller supplies a plain digit string, the
// transformer only enforces the record length limit. The payload is rebuilt
// in canonical tag order with a freshly computed CRC trailer.
func Transform(payload, amount string) (string, error) {
	m, err := Parse(strings.TrimSpace(payload))
	if err != nil {
		return "", err
	}

	m.Set(TagInitiationMethod, InitiationDynamic)
	m.Set(TagAmount, amount)

	base, err := m.Serialize(TagCRC)
	if err != nil {
		return "", err
	}
	base += crcHeader
	return base + Checksum(base), nil
}

// TransformOrOriginal applies Transform and degrades to the unmodified
// input when it fails. The second return reports whether the payload was
// actually transformed; a caller that ignores it can hand an untouched
// static payload downstream.
func TransformOrOriginal(payload, amount string) (string, bool) {
	out, err := Transform(payload, amount)
	if err != nil {
		return payload, false
	}
	return out, true
}

// VerifyChecksum recomputes the CRC over everything preceding the trailing
// four checksum characters and compares the two. The prefix must end with
// the "6304" CRC record header.
func VerifyChecksum(payload string) error {
	if len(payload) < len(crcHeader)+4 {
		return errors.MalformedPayloadErr(fmt.Errorf("payload too short for a CRC trailer"))
	}
	prefix, want := payload[:len(payload)-4], payload[len(payload)-4:]
	if !strings.HasSuffix(prefix, crcHeader) {
		return errors.MalformedPayloadErr(fmt.Errorf("payload does not end with a %s CRC record", crcHeader))
	}
	if got := Checksum(prefix); got != want {
		return errors.ChecksumMismatchErr(want, got)
	}
	return nil
}

// IsDynamic reports whether the payload parses and carries the dynamic
// initiation method in tag 01.
func IsDynamic(payload string) bool {
	m, err := Parse(strings.TrimSpace(payload))
	if err != nil {
		return false
	}
	method, ok := m.Get(TagInitiationMethod)
	return ok && method == InitiationDynamic
}
