package qris

import (
	// Go Internal Packages
	"fmt"
)

// Checksum computes the CRC16-CCITT checksum of s and renders it as four
// uppercase zero-padded hex digits, the form carried by the EMVCo CRC
// record (tag 63). The register starts at 0xFFFF and the polynomial is
// 0x1021, so an empty input yields "FFFF".
//
// EMVCo payloads are ASCII. Other input is accepted and the result is
// deterministic, but it is outside the EMVCo compliance contract.
func Checksum(s string) string {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}
