package qris

import (
	// Go Internal Packages
	"fmt"
	"sort"
	"strconv"
	"strings"

	// Local Packages
	errors "qris-stream/errors"
)

// Well-known EMVCo QR tags. The codec treats every tag as opaque; only the
// CRC tag gets special handling, and only inside Transform.
const (
	TagPayloadFormat    = "00"
	TagInitiationMethod = "01"
	TagAmount           = "54"
	TagCountryCode      = "58"
	TagCRC              = "63"
)

// Initiation-method values for tag 01.
const (
	InitiationStatic  = "11"
	InitiationDynamic = "12"
)

// maxValueLen is the longest value a single record can carry. The EMVCo
// length field is fixed at two decimal digits, so 99 is a limit of the
// format itself.
const maxValueLen = 99

// TagMap associates 2-character tags with their values. Setting a tag that
// is already present overwrites it. A TagMap is scratch state for a single
// transformation and is never shared between calls.
type TagMap map[string]string

func (m TagMap) Set(tag, value string) {
	m[tag] = value
}

func (m TagMap) Get(tag string) (string, bool) {
	value, ok := m[tag]
	return value, ok
}

// SortedTags returns the map's tags ascending by numeric value. This is
// the canonical EMVCo field order and the only ordering Serialize emits.
func (m TagMap) SortedTags() []string {
	tags := make([]string, 0, len(m))
	for tag := range m {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		a, _ := strconv.Atoi(tags[i])
		b, _ := strconv.Atoi(tags[j])
		return a < b
	})
	return tags
}

// Parse scans an EMVCo TLV payload into a TagMap. Each record is a 2-char
// tag, a 2-digit decimal length and exactly that many value characters,
// with no separators. A later record for an already-seen tag overwrites
// the earlier one.
//
// Any error means the payload could not be interpreted; partial records
// are never returned.
func Parse(payload string) (TagMap, error) {
	m := make(TagMap)
	pos := 0
	for pos < len(payload) {
		if pos+4 > len(payload) {
			return nil, errors.MalformedPayloadErr(fmt.Errorf("truncated record header at offset %d", pos))
		}
		tag := payload[pos : pos+2]
		length, err := strconv.Atoi(payload[pos+2 : pos+4])
		if err != nil || length < 0 {
			return nil, errors.MalformedPayloadErr(fmt.Errorf("tag %s: length %q is not a 2-digit decimal", tag, payload[pos+2:pos+4]))
		}
		pos += 4
		if pos+length > len(payload) {
			return nil, errors.MalformedPayloadErr(fmt.Errorf("tag %s: declared length %d exceeds remaining input", tag, length))
		}
		m[tag] = payload[pos : pos+length]
		pos += length
	}
	return m, nil
}

// Serialize renders the map as a TLV payload in canonical tag order,
// skipping any tags listed in exclude. Values longer than maxValueLen do
// not fit the fixed-width length field and are rejected rather than
// emitting a corrupt length.
//
// Round-trip holds for every map within the length limit:
// Parse(Serialize(m)) == m.
func (m TagMap) Serialize(exclude ...string) (string, error) {
	skip := make(map[string]bool, len(exclude))
	for _, tag := range exclude {
		skip[tag] = true
	}

	var sb strings.Builder
	for _, tag := range m.SortedTags() {
		if skip[tag] {
			continue
		}
		value := m[tag]
		if len(value) > maxValueLen {
			return "", errors.OversizedFieldErr(tag, len(value))
		}
		fmt.Fprintf(&sb, "%s%02d%s", tag, len(value), value)
	}
	return sb.String(), nil
}
