package errors

import "fmt"

func InvalidParamsErr(err error) error {
	return E(Invalid, "invalid params", err)
}

func InvalidBodyErr(err error) error {
	return E(Invalid, "invalid request body", err)
}

func ValidationFailedErr(err error) error {
	return E(Invalid, "validation failed", err)
}

func EmptyParamErr(field string) error {
	ve := ValidationErrs()
	ve.Add(field, "cannot be empty")
	return E(Invalid, "validation failed", ve.Err())
}

// MalformedPayloadErr wraps a TLV parsing failure. Callers must treat it as
// "could not interpret payload" and never accept partial records.
func MalformedPayloadErr(err error) error {
	return E(Invalid, "malformed payload", err)
}

// OversizedFieldErr reports a record value that cannot be rendered through
// the fixed two-digit EMVCo length field.
func OversizedFieldErr(tag string, length int) error {
	return E(Invalid, "oversized field", fmt.Errorf("tag %s value is %d characters, limit is 99", tag, length))
}

// ChecksumMismatchErr reports a payload whose CRC trailer does not match
// its own content.
func ChecksumMismatchErr(want, got string) error {
	return E(Invalid, "checksum mismatch", fmt.Errorf("payload declares %s, computed %s", want, got))
}
